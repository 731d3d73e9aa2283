package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedrodiniz00/sistema-obras/internal/calculadora"
	"github.com/pedrodiniz00/sistema-obras/internal/dto"
)

// Concreto POST /v1/calculadora/concreto
func Concreto(c *gin.Context) {
	var req dto.ConcretoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sacos, err := calculadora.Concreto(req.Traco, req.VolumeM3)
	if err != nil {
		responderErro(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CalculoResponse{Sacos: sacos})
}

// Reboco POST /v1/calculadora/reboco
func Reboco(c *gin.Context) {
	var req dto.RebocoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, dto.CalculoResponse{Sacos: calculadora.Reboco(req.AreaM2, req.EspessuraCm)})
}
