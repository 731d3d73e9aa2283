package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type RegistrarCustoRequest struct {
	Data          string          `json:"data"           validate:"required,datetime=2006-01-02"`
	Item          string          `json:"item"           validate:"required,min=1,max=200"`
	Quantidade    decimal.Decimal `json:"quantidade"     validate:"gt=0"`
	Unidade       string          `json:"unidade"        validate:"required,oneof=unid kg m²"`
	ValorUnitario decimal.Decimal `json:"valor_unitario" validate:"gte=0"`
	Classe        string          `json:"classe"         validate:"required,oneof=Materiais 'Mão de Obra' Equipamentos"`
	Etapa         string          `json:"etapa"          validate:"omitempty,max=120"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type CustoResponse struct {
	ID            uuid.UUID       `json:"id"`
	Data          string          `json:"data"`
	Item          string          `json:"item"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Unidade       string          `json:"unidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Total         decimal.Decimal `json:"total"`
	Classe        string          `json:"classe"`
	Etapa         string          `json:"etapa"`
}

// FormularioCustoResponse carries the session's last cost-form choices.
type FormularioCustoResponse struct {
	Classe  string `json:"classe"`
	Etapa   string `json:"etapa"`
	Unidade string `json:"unidade"`
}

type ListaCustosResponse struct {
	Obra       string                   `json:"obra"`
	Custos     []CustoResponse          `json:"custos"`
	Total      decimal.Decimal          `json:"total"`
	Formulario *FormularioCustoResponse `json:"formulario,omitempty"`
}
