package handler

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pedrodiniz00/sistema-obras/internal/apierror"
	"github.com/pedrodiniz00/sistema-obras/internal/middleware"
	"github.com/pedrodiniz00/sistema-obras/internal/service"
)

var pdfMagic = []byte("%PDF-")

type DocumentosHandler struct {
	svc      service.DocumentoService
	maxBytes int64
}

func NewDocumentosHandler(svc service.DocumentoService, maxBytes int64) *DocumentosHandler {
	return &DocumentosHandler{svc: svc, maxBytes: maxBytes}
}

// Enviar godoc
// @Summary Anexar (ou substituir) o PDF do projeto
// @Tags documentos
// @Accept multipart/form-data
// @Produce json
// @Param nome path string true "Nome da obra"
// @Param arquivo formData file true "PDF"
// @Success 200 {object} dto.DocumentoResponse
// @Router /v1/obras/{nome}/documento [put]
func (h *DocumentosHandler) Enviar(c *gin.Context) {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("campo 'arquivo' obrigatório"))
		return
	}
	if fh.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("arquivo excede o tamanho máximo"))
		return
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		c.JSON(http.StatusUnsupportedMediaType, apierror.New("apenas arquivos PDF são aceitos"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer f.Close()

	dados, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if int64(len(dados)) > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("arquivo excede o tamanho máximo"))
		return
	}
	if !bytes.HasPrefix(dados, pdfMagic) {
		c.JSON(http.StatusUnsupportedMediaType, apierror.New("apenas arquivos PDF são aceitos"))
		return
	}

	resp, err := h.svc.Salvar(c.Request.Context(), c.Param("nome"), filepath.Base(fh.Filename), dados)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Baixar GET /v1/obras/:nome/documento
func (h *DocumentosHandler) Baixar(c *gin.Context) {
	arquivo, dados, err := h.svc.Obter(c.Request.Context(), c.Param("nome"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": arquivo}))
	c.Data(http.StatusOK, "application/pdf", dados)
}

// Ler POST /v1/obras/:nome/documento/leitura
func (h *DocumentosHandler) Ler(c *gin.Context) {
	resp, err := h.svc.Ler(c.Request.Context(), middleware.SessaoID(c), c.Param("nome"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
