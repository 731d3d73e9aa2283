package dto

import "github.com/shopspring/decimal"

// PainelResponse is the dashboard view model of one obra.
type PainelResponse struct {
	Obra             ObraResponse    `json:"obra"`
	Progresso        float64         `json:"progresso"`
	Atrasadas        int             `json:"atrasadas"`
	Status           string          `json:"status"`
	EtapasPorFaixa   map[string]int  `json:"etapas_por_faixa"`
	TotalEtapas      int             `json:"total_etapas"`
	TotalGasto       decimal.Decimal `json:"total_gasto"`
	QtdCustos        int             `json:"qtd_custos"`
	ItensExtraidos   []string        `json:"itens_extraidos"`
	ExclusaoPendente bool            `json:"exclusao_pendente"`
}
