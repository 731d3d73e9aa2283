package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/middleware"
	"github.com/pedrodiniz00/sistema-obras/internal/service"
)

type CustosHandler struct{ svc service.CustoService }

func NewCustosHandler(svc service.CustoService) *CustosHandler { return &CustosHandler{svc: svc} }

// Registrar godoc
// @Summary Lançar custo (o ledger é somente inclusão)
// @Tags custos
// @Accept json
// @Produce json
// @Param nome path string true "Nome da obra"
// @Param body body dto.RegistrarCustoRequest true "Custo"
// @Success 201 {object} dto.CustoResponse
// @Router /v1/obras/{nome}/custos [post]
func (h *CustosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCustoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), middleware.SessaoID(c), c.Param("nome"), req)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/obras/:nome/custos
func (h *CustosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.SessaoID(c), c.Param("nome"))
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
