// Package cronograma holds the schedule arithmetic: the automatic stage
// generator and the read-time ordering and aggregates computed over a list
// of etapas. It has no storage dependencies.
package cronograma

import (
	"errors"
	"math"

	"github.com/pedrodiniz00/sistema-obras/internal/model"
)

const (
	horasPorDia = 8.0
	// Uniform derating applied to the crew's nominal hours.
	eficiencia = 0.80
	// No generated stage is shorter than this.
	diasMinimos = 2
	// Longest span the calendar can hold (0001-01-01..9999-12-31).
	diasMaximos = 3652058
)

// ErrForaDoCalendario is returned when the plan would end after model.UltimoDia.
var ErrForaDoCalendario = errors.New("cronograma termina depois de 31/12/9999")

// EtapaModelo is one entry of the fixed stage template.
type EtapaModelo struct {
	Nome       string
	HorasPorM2 float64
}

// Modelo is the ordered stage template used by Gerar.
var Modelo = []EtapaModelo{
	{Nome: "Serviços Preliminares", HorasPorM2: 2.0},
	{Nome: "Fundação", HorasPorM2: 6.0},
	{Nome: "Estrutura/Alvenaria", HorasPorM2: 12.0},
	{Nome: "Telhado", HorasPorM2: 5.0},
	{Nome: "Instalações", HorasPorM2: 4.0},
	{Nome: "Reboco", HorasPorM2: 8.0},
	{Nome: "Pisos", HorasPorM2: 6.0},
	{Nome: "Pintura", HorasPorM2: 5.0},
}

// EtapaPlanejada is a generated stage before it is persisted.
type EtapaPlanejada struct {
	Nome          string
	DiasEstimados int
	DataInicio    model.Date
	DataFim       model.Date
}

// CapacidadeDiaria returns the derated labor-hours per day of a crew.
func CapacidadeDiaria(pedreiros, ajudantes int) float64 {
	return (float64(pedreiros)*horasPorDia + float64(ajudantes)*horasPorDia) * eficiencia
}

// Gerar chains the template stages one after another starting at inicio.
// It returns nil when the crew has no capacity; callers must treat that as
// "leave the current schedule alone". A plan that would run past
// model.UltimoDia is rejected with ErrForaDoCalendario.
func Gerar(area float64, pedreiros, ajudantes int, inicio model.Date) ([]EtapaPlanejada, error) {
	capacidade := CapacidadeDiaria(pedreiros, ajudantes)
	if capacidade <= 0 {
		return nil, nil
	}

	etapas := make([]EtapaPlanejada, 0, len(Modelo))
	atual := inicio
	for _, m := range Modelo {
		dias := DiasNecessarios(area*m.HorasPorM2, capacidade)
		if dias > atual.DaysUntil(model.UltimoDia) {
			return nil, ErrForaDoCalendario
		}
		fim := atual.AddDays(dias)
		etapas = append(etapas, EtapaPlanejada{
			Nome:          m.Nome,
			DiasEstimados: dias,
			DataInicio:    atual,
			DataFim:       fim,
		})
		atual = fim
	}
	return etapas, nil
}

// DiasNecessarios is floor(horas/capacidade), never below diasMinimos.
// Results beyond the calendar span saturate at diasMaximos.
func DiasNecessarios(horas, capacidade float64) int {
	q := math.Floor(horas / capacidade)
	if q >= diasMaximos {
		return diasMaximos
	}
	dias := int(q)
	if dias < diasMinimos {
		return diasMinimos
	}
	return dias
}
