package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrodiniz00/sistema-obras/internal/model"
)

func TestCustoRepo_ListByObraMaisRecentePrimeiro(t *testing.T) {
	repo := NewCustoRepository(novoBanco(t))
	ctx := context.Background()

	add := func(obra, item string, data model.Date, total string) {
		require.NoError(t, repo.Create(ctx, &model.Custo{
			ObraNome: obra, Data: data, Item: item,
			Quantidade: decimal.NewFromInt(1), Unidade: "unid",
			ValorUnitario: decimal.RequireFromString(total), Total: decimal.RequireFromString(total),
			Classe: model.ClasseMateriais, Etapa: "Geral",
		}))
	}
	add("A", "Tijolos", model.NewDate(2024, 1, 5), "500.00")
	add("A", "Cimento", model.NewDate(2024, 2, 1), "38.90")
	add("B", "Telha", model.NewDate(2024, 3, 1), "10.00")

	list, err := repo.ListByObra(ctx, "A")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Cimento", list[0].Item)
	assert.Equal(t, "Tijolos", list[1].Item)
	assert.True(t, list[0].Total.Equal(decimal.RequireFromString("38.90")), list[0].Total.String())
	assert.Equal(t, model.ClasseMateriais, list[0].Classe)
}
