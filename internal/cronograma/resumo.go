package cronograma

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pedrodiniz00/sistema-obras/internal/model"
)

// Display bands derived from an etapa's percentage.
const (
	FaixaPendente     = "PENDENTE"
	FaixaEmAndamento  = "EM ANDAMENTO"
	FaixaConcluida    = "CONCLUIDA"
	StatusNoPrazo     = "NO PRAZO"
	StatusAtrasada    = "ATRASADA"
	porcentagemMaxima = 100
)

// Ordenar sorts etapas in place by start date, then end date. The sort is
// stable so etapas with identical ranges keep their relative order.
func Ordenar(etapas []model.Etapa) {
	sort.SliceStable(etapas, func(i, j int) bool {
		a, b := etapas[i], etapas[j]
		if !a.DataInicio.Equal(b.DataInicio) {
			return a.DataInicio.Before(b.DataInicio)
		}
		return a.DataFim.Before(b.DataFim)
	})
}

// ProgressoGlobal is sum(pct) / (100 * n) as a percentage, i.e. the mean
// of the percentages; 0 with no etapas.
func ProgressoGlobal(etapas []model.Etapa) float64 {
	if len(etapas) == 0 {
		return 0
	}
	pcts := make([]float64, len(etapas))
	for i, e := range etapas {
		pcts[i] = float64(e.Porcentagem)
	}
	return stat.Mean(pcts, nil)
}

// Atrasada reports whether an unfinished etapa ended before hoje.
func Atrasada(e model.Etapa, hoje model.Date) bool {
	return e.Porcentagem < porcentagemMaxima && e.DataFim.Before(hoje)
}

// ContarAtrasadas counts the etapas that are overdue on hoje.
func ContarAtrasadas(etapas []model.Etapa, hoje model.Date) int {
	n := 0
	for _, e := range etapas {
		if Atrasada(e, hoje) {
			n++
		}
	}
	return n
}

// StatusObra maps the overdue count to the project label.
func StatusObra(atrasadas int) string {
	if atrasadas == 0 {
		return StatusNoPrazo
	}
	return StatusAtrasada
}

// Faixa returns the display band for a completion percentage.
func Faixa(porcentagem int) string {
	switch {
	case porcentagem >= porcentagemMaxima:
		return FaixaConcluida
	case porcentagem <= 0:
		return FaixaPendente
	default:
		return FaixaEmAndamento
	}
}
