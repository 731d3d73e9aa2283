package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiltrarLinhasMateriais(t *testing.T) {
	texto := "Memorial descritivo\n" +
		"Piso cerâmico 45 M²\n" +
		"Área útil 120 m2\n" +
		"Aço CA-50 300 kg\n" +
		"Cimento 40 sacos\n" +
		"Portas 6 unid\n" +
		"Responsável técnico\n" +
		"TOTAL GERAL 12.500,00"

	linhas := FiltrarLinhasMateriais(texto)

	assert.Equal(t, []string{
		"Piso cerâmico 45 M²",
		"Área útil 120 m2",
		"Aço CA-50 300 kg",
		"Cimento 40 sacos",
		"Portas 6 unid",
		"TOTAL GERAL 12.500,00",
	}, linhas)
}

func TestFiltrarLinhasMateriais_SemMarcadores(t *testing.T) {
	linhas := FiltrarLinhasMateriais("planta baixa\nfachada")
	assert.NotNil(t, linhas)
	assert.Empty(t, linhas)
}

func TestExtratorPDF_DocumentoInvalido(t *testing.T) {
	_, err := NewExtratorPDF().Extrair([]byte("isto não é um pdf"))
	require.Error(t, err)
}
