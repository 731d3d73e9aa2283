package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/middleware"
	"github.com/pedrodiniz00/sistema-obras/internal/service"
)

type ObrasHandler struct {
	svc    service.ObraService
	painel service.PainelService
}

func NewObrasHandler(svc service.ObraService, painel service.PainelService) *ObrasHandler {
	return &ObrasHandler{svc: svc, painel: painel}
}

// Criar godoc
// @Summary Cadastrar obra
// @Tags obras
// @Accept json
// @Produce json
// @Param body body dto.CriarObraRequest true "Obra"
// @Success 201 {object} dto.ObraResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/obras [post]
func (h *ObrasHandler) Criar(c *gin.Context) {
	var req dto.CriarObraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/obras
func (h *ObrasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter GET /v1/obras/:nome
func (h *ObrasHandler) Obter(c *gin.Context) {
	resp, err := h.svc.Obter(c.Request.Context(), c.Param("nome"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AtualizarStatus PATCH /v1/obras/:nome/status
func (h *ObrasHandler) AtualizarStatus(c *gin.Context) {
	var req dto.AtualizarStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarStatus(c.Request.Context(), c.Param("nome"), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Painel GET /v1/obras/:nome/painel
func (h *ObrasHandler) Painel(c *gin.Context) {
	resp, err := h.painel.Painel(c.Request.Context(), middleware.SessaoID(c), c.Param("nome"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SolicitarExclusao POST /v1/obras/:nome/exclusao
func (h *ObrasHandler) SolicitarExclusao(c *gin.Context) {
	resp, err := h.svc.SolicitarExclusao(c.Request.Context(), middleware.SessaoID(c), c.Param("nome"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelarExclusao DELETE /v1/obras/:nome/exclusao
func (h *ObrasHandler) CancelarExclusao(c *gin.Context) {
	resp, err := h.svc.CancelarExclusao(c.Request.Context(), middleware.SessaoID(c), c.Param("nome"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary Excluir obra com etapas e custos (exige confirmação prévia)
// @Tags obras
// @Produce json
// @Param nome path string true "Nome da obra"
// @Success 200 {object} dto.ExclusaoResponse
// @Failure 409 {object} apierror.APIError
// @Failure 500 {object} dto.ExclusaoResponse
// @Router /v1/obras/{nome} [delete]
func (h *ObrasHandler) Excluir(c *gin.Context) {
	nome := c.Param("nome")
	err := h.svc.Excluir(c.Request.Context(), middleware.SessaoID(c), nome)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.ExclusaoResponse{Excluida: true})
	case isErroDeDominio(err):
		responderErro(c, err)
	default:
		// Storage failure: report a plain flag, keep the cause in the logs.
		log.Error().Err(err).Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("obra", nome).Msg("falha ao excluir obra")
		c.JSON(http.StatusInternalServerError, dto.ExclusaoResponse{Excluida: false})
	}
}
