package infra

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// marcadoresMaterial are the unit/keyword markers that flag a line as a
// material quantity line.
var marcadoresMaterial = []string{"m²", "m2", "kg", "sacos", "unid", "total"}

// Extracao is the result of reading an attached document.
type Extracao struct {
	Texto  string   `json:"texto"`
	Linhas []string `json:"linhas"`
}

// ExtratorPDF turns PDF bytes into plain text.
type ExtratorPDF interface {
	Extrair(dados []byte) (*Extracao, error)
}

type extratorPDF struct{}

func NewExtratorPDF() ExtratorPDF { return &extratorPDF{} }

// Extrair joins the text of every page with a newline and filters the
// material lines out of it.
func (x *extratorPDF) Extrair(dados []byte) (res *Extracao, err error) {
	// The reader panics on some malformed inputs instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("pdftext: documento ilegível: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(dados), int64(len(dados)))
	if err != nil {
		return nil, fmt.Errorf("pdftext: abrir documento: %w", err)
	}

	paginas := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("pdftext: página %d: %w", i, err)
		}
		if txt != "" {
			paginas = append(paginas, txt)
		}
	}

	texto := strings.Join(paginas, "\n")
	return &Extracao{Texto: texto, Linhas: FiltrarLinhasMateriais(texto)}, nil
}

// FiltrarLinhasMateriais returns the lines whose lowercase form contains any
// material marker, in document order.
func FiltrarLinhasMateriais(texto string) []string {
	linhas := []string{}
	for _, l := range strings.Split(texto, "\n") {
		baixa := strings.ToLower(l)
		for _, m := range marcadoresMaterial {
			if strings.Contains(baixa, m) {
				linhas = append(linhas, l)
				break
			}
		}
	}
	return linhas
}
