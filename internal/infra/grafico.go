package infra

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pedrodiniz00/sistema-obras/internal/model"
)

// GerarGraficoCronograma renders the stages as a horizontal Gantt chart in a
// standalone HTML page. Stages must already be in chronological order.
//
// Each stage is two stacked bars: a transparent offset (days from the first
// start) and the visible duration.
func GerarGraficoCronograma(obra string, etapas []model.Etapa) ([]byte, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Cronograma - " + obra}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cronograma",
			Subtitle: obra,
		}),
	)

	nomes := make([]string, 0, len(etapas))
	deslocamentos := make([]opts.BarData, 0, len(etapas))
	duracoes := make([]opts.BarData, 0, len(etapas))

	var origem model.Date
	if len(etapas) > 0 {
		origem = etapas[0].DataInicio
	}
	for _, e := range etapas {
		nomes = append(nomes, fmt.Sprintf("%s (%d%%)", e.Nome, e.Porcentagem))
		deslocamentos = append(deslocamentos, opts.BarData{Value: origem.DaysUntil(e.DataInicio)})
		duracoes = append(duracoes, opts.BarData{
			Name:  fmt.Sprintf("%s → %s", e.DataInicio, e.DataFim),
			Value: e.DataInicio.DaysUntil(e.DataFim),
		})
	}

	bar.SetXAxis(nomes).
		AddSeries("início", deslocamentos,
			charts.WithBarChartOpts(opts.BarChart{Stack: "etapa"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "transparent"}),
		).
		AddSeries("dias", duracoes,
			charts.WithBarChartOpts(opts.BarChart{Stack: "etapa"}),
		)
	bar.XYReversal()

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, fmt.Errorf("grafico: render cronograma: %w", err)
	}
	return buf.Bytes(), nil
}
