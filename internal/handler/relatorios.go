package handler

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedrodiniz00/sistema-obras/internal/service"
)

type RelatoriosHandler struct{ svc service.PainelService }

func NewRelatoriosHandler(svc service.PainelService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// Obra GET /v1/obras/:nome/relatorio
func (h *RelatoriosHandler) Obra(c *gin.Context) {
	nome := c.Param("nome")
	pdf, err := h.svc.Relatorio(c.Request.Context(), nome)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.Header("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": "relatorio-" + nome + ".pdf"}))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
