package dto

import "github.com/google/uuid"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CriarObraRequest struct {
	Nome       string  `json:"nome"        validate:"required,min=1,max=120"`
	AreaM2     float64 `json:"area_m2"     validate:"gte=0,lte=100000"`
	DataInicio string  `json:"data_inicio" validate:"required,datetime=2006-01-02"`
}

type AtualizarStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ATIVA PAUSADA CONCLUIDA"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ObraResponse struct {
	ID         uuid.UUID `json:"id"`
	Nome       string    `json:"nome"`
	Status     string    `json:"status"`
	AreaM2     float64   `json:"area_m2"`
	DataInicio string    `json:"data_inicio"`
	Documento  *string   `json:"documento,omitempty"`
}

// ExclusaoResponse reports the outcome of a cascading delete as a plain flag.
type ExclusaoResponse struct {
	Excluida bool `json:"excluida"`
}

type ConfirmacaoExclusaoResponse struct {
	Obra     string `json:"obra"`
	Pendente bool   `json:"pendente"`
}

type DocumentoResponse struct {
	Obra    string `json:"obra"`
	Arquivo string `json:"arquivo"`
	Tamanho int    `json:"tamanho"`
}

type LeituraDocumentoResponse struct {
	Texto  string   `json:"texto"`
	Linhas []string `json:"linhas"`
}
