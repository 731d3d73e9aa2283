package dto

import "github.com/google/uuid"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// GerarCronogramaRequest accepts zero crews; a crew with no capacity leaves
// the current schedule untouched.
type GerarCronogramaRequest struct {
	Pedreiros int `json:"pedreiros" validate:"gte=0,lte=200"`
	Ajudantes int `json:"ajudantes" validate:"gte=0,lte=200"`
}

type InserirEtapaRequest struct {
	Nome       string `json:"nome"        validate:"required,min=1,max=120"`
	DataInicio string `json:"data_inicio" validate:"required,datetime=2006-01-02"`
	DataFim    string `json:"data_fim"    validate:"required,datetime=2006-01-02"`
}

type AtualizarDatasRequest struct {
	DataInicio string `json:"data_inicio" validate:"required,datetime=2006-01-02"`
	DataFim    string `json:"data_fim"    validate:"required,datetime=2006-01-02"`
}

type AtualizarProgressoRequest struct {
	Porcentagem *int `json:"porcentagem" validate:"required,gte=0,lte=100"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type EtapaResponse struct {
	ID            uuid.UUID `json:"id"`
	Nome          string    `json:"nome"`
	DiasEstimados int       `json:"dias_estimados"`
	DataInicio    string    `json:"data_inicio"`
	DataFim       string    `json:"data_fim"`
	Porcentagem   int       `json:"porcentagem"`
	Faixa         string    `json:"faixa"`
	Atrasada      bool      `json:"atrasada"`
}

type CronogramaResponse struct {
	Obra      string          `json:"obra"`
	Etapas    []EtapaResponse `json:"etapas"`
	Progresso float64         `json:"progresso"`
	Atrasadas int             `json:"atrasadas"`
	Status    string          `json:"status"`
}

type GerarCronogramaResponse struct {
	Gerado     bool               `json:"gerado"`
	Cronograma CronogramaResponse `json:"cronograma"`
}
