package infra

// pdf.go: project report generation using go-pdf/fpdf.
// A4 portrait page with:
//   - Obra header (name, status, area, start date)
//   - Schedule summary (global progress, overdue stages, status label)
//   - Stage table in chronological order
//   - Cost ledger with grand total
//
// The document is rendered to memory; callers stream the bytes.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/pedrodiniz00/sistema-obras/internal/model"
)

// RelatorioObra is everything the report prints. Aggregates are computed by
// the caller so the PDF never diverges from the dashboard.
type RelatorioObra struct {
	Obra       model.Obra
	Etapas     []model.Etapa
	Custos     []model.Custo
	TotalGasto decimal.Decimal
	Progresso  float64
	Atrasadas  int
	Status     string
	GeradoEm   time.Time
}

// GerarRelatorioPDF renders the project report and returns the PDF bytes.
func GerarRelatorioPDF(r *RelatorioObra) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accents render.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr("Relatório da Obra"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, tr(r.Obra.Nome), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Status: %s   Área: %.2f m²   Início: %s",
		r.Obra.Status, r.Obra.AreaM2, formatarData(r.Obra.DataInicio))), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, tr("Gerado em "+r.GeradoEm.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Summary ──────────────────────────────────────────────────────────────
	situacao := r.Status
	if r.Atrasadas > 0 {
		situacao = fmt.Sprintf("%s (%d etapas)", r.Status, r.Atrasadas)
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/3, 6, fmt.Sprintf("Progresso: %d%%", int(r.Progresso)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(contentW/3, 6, tr("Situação: "+situacao), "1", 0, "C", false, 0, "")
	pdf.CellFormat(contentW/3, 6, "Total gasto: R$ "+r.TotalGasto.StringFixed(2), "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	// ── Schedule ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Cronograma", "", 1, "L", false, 0, "")

	e1, e2, e3, e4, e5 := contentW*0.40, contentW*0.15, contentW*0.15, contentW*0.15, contentW*0.15
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(e1, 6, "Etapa", "B", 0, "L", false, 0, "")
	pdf.CellFormat(e2, 6, tr("Início"), "B", 0, "C", false, 0, "")
	pdf.CellFormat(e3, 6, "Fim", "B", 0, "C", false, 0, "")
	pdf.CellFormat(e4, 6, "Dias", "B", 0, "C", false, 0, "")
	pdf.CellFormat(e5, 6, "%", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	if len(r.Etapas) == 0 {
		pdf.CellFormat(contentW, 5, "Nenhuma etapa cadastrada.", "", 1, "L", false, 0, "")
	}
	for _, e := range r.Etapas {
		pdf.CellFormat(e1, 5, tr(truncar(e.Nome, 40)), "", 0, "L", false, 0, "")
		pdf.CellFormat(e2, 5, formatarData(e.DataInicio), "", 0, "C", false, 0, "")
		pdf.CellFormat(e3, 5, formatarData(e.DataFim), "", 0, "C", false, 0, "")
		pdf.CellFormat(e4, 5, fmt.Sprintf("%d", e.DiasEstimados), "", 0, "C", false, 0, "")
		pdf.CellFormat(e5, 5, fmt.Sprintf("%d", e.Porcentagem), "", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// ── Costs ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Custos", "", 1, "L", false, 0, "")

	c1, c2, c3, c4, c5 := contentW*0.14, contentW*0.38, contentW*0.16, contentW*0.16, contentW*0.16
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(c1, 6, "Data", "B", 0, "L", false, 0, "")
	pdf.CellFormat(c2, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(c3, 6, "Qtd", "B", 0, "R", false, 0, "")
	pdf.CellFormat(c4, 6, tr("Valor un."), "B", 0, "R", false, 0, "")
	pdf.CellFormat(c5, 6, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, c := range r.Custos {
		pdf.CellFormat(c1, 5, formatarData(c.Data), "", 0, "L", false, 0, "")
		pdf.CellFormat(c2, 5, tr(truncar(c.Item, 38)), "", 0, "L", false, 0, "")
		pdf.CellFormat(c3, 5, tr(c.Quantidade.String()+" "+c.Unidade), "", 0, "R", false, 0, "")
		pdf.CellFormat(c4, 5, c.ValorUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(c5, 5, c.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(c1+c2+c3+c4, 6, "TOTAL:", "T", 0, "R", false, 0, "")
	pdf.CellFormat(c5, 6, "R$ "+r.TotalGasto.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render relatorio: %w", err)
	}
	return buf.Bytes(), nil
}

func formatarData(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format("02/01/2006")
}

func truncar(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "..."
}
