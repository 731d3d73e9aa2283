package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/service"
)

type CronogramaHandler struct{ svc service.CronogramaService }

func NewCronogramaHandler(svc service.CronogramaService) *CronogramaHandler {
	return &CronogramaHandler{svc: svc}
}

// Listar GET /v1/obras/:nome/cronograma
func (h *CronogramaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Param("nome"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Gerar godoc
// @Summary Regerar todo o cronograma a partir da área e da equipe
// @Description Substitui todas as etapas da obra numa única transação.
// @Description Uma equipe sem capacidade não altera nada (gerado=false).
// @Tags cronograma
// @Accept json
// @Produce json
// @Param nome path string true "Nome da obra"
// @Param body body dto.GerarCronogramaRequest true "Equipe"
// @Success 200 {object} dto.GerarCronogramaResponse
// @Router /v1/obras/{nome}/cronograma/gerar [post]
func (h *CronogramaHandler) Gerar(c *gin.Context) {
	var req dto.GerarCronogramaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Gerar(c.Request.Context(), c.Param("nome"), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// InserirEtapa POST /v1/obras/:nome/cronograma/etapas
func (h *CronogramaHandler) InserirEtapa(c *gin.Context) {
	var req dto.InserirEtapaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.InserirManual(c.Request.Context(), c.Param("nome"), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AtualizarDatas PUT /v1/etapas/:id/datas
func (h *CronogramaHandler) AtualizarDatas(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarDatasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarDatas(c.Request.Context(), id, req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarProgresso PATCH /v1/etapas/:id/progresso
func (h *CronogramaHandler) AtualizarProgresso(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarProgressoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarProgresso(c.Request.Context(), id, req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExcluirEtapa DELETE /v1/etapas/:id
func (h *CronogramaHandler) ExcluirEtapa(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		responderErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Grafico GET /v1/obras/:nome/cronograma/grafico
func (h *CronogramaHandler) Grafico(c *gin.Context) {
	html, err := h.svc.Grafico(c.Request.Context(), c.Param("nome"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
