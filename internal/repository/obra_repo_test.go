package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pedrodiniz00/sistema-obras/internal/model"
)

func TestObraRepo_CreateFind(t *testing.T) {
	repo := NewObraRepository(novoBanco(t))
	ctx := context.Background()

	o := criarObra(t, repo, "Casa Azul")
	assert.NotEqual(t, "", o.ID.String())

	got, err := repo.FindByNome(ctx, "Casa Azul")
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, model.ObraAtiva, got.Status)
	assert.Equal(t, "2024-01-01", got.DataInicio.String())

	_, err = repo.FindByNome(ctx, "Inexistente")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestObraRepo_NomeUnico(t *testing.T) {
	repo := NewObraRepository(novoBanco(t))
	criarObra(t, repo, "Casa Azul")

	err := repo.Create(context.Background(), &model.Obra{Nome: "Casa Azul", Status: model.ObraAtiva})
	assert.Error(t, err)
}

func TestObraRepo_ListOrdenadaSemBlob(t *testing.T) {
	repo := NewObraRepository(novoBanco(t))
	ctx := context.Background()
	criarObra(t, repo, "Galpão")
	criarObra(t, repo, "Apartamento")
	require.NoError(t, repo.SalvarDocumento(ctx, "Galpão", "projeto.pdf", []byte("%PDF-1.4")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Apartamento", list[0].Nome)
	assert.Equal(t, "Galpão", list[1].Nome)
	require.NotNil(t, list[1].PDFNome)
	assert.Equal(t, "projeto.pdf", *list[1].PDFNome)
	assert.Nil(t, list[1].PDFBlob)
}

func TestObraRepo_UpdateStatus(t *testing.T) {
	repo := NewObraRepository(novoBanco(t))
	ctx := context.Background()
	criarObra(t, repo, "Casa Azul")

	require.NoError(t, repo.UpdateStatus(ctx, "Casa Azul", model.ObraPausada))
	got, err := repo.FindByNome(ctx, "Casa Azul")
	require.NoError(t, err)
	assert.Equal(t, model.ObraPausada, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "Outra", model.ObraPausada), gorm.ErrRecordNotFound)
}

func TestObraRepo_Documento(t *testing.T) {
	repo := NewObraRepository(novoBanco(t))
	ctx := context.Background()
	criarObra(t, repo, "Casa Azul")

	nome, dados, err := repo.ObterDocumento(ctx, "Casa Azul")
	require.NoError(t, err)
	assert.Empty(t, nome)
	assert.Nil(t, dados)

	require.NoError(t, repo.SalvarDocumento(ctx, "Casa Azul", "v1.pdf", []byte("primeiro")))
	require.NoError(t, repo.SalvarDocumento(ctx, "Casa Azul", "v2.pdf", []byte("segundo")))

	nome, dados, err = repo.ObterDocumento(ctx, "Casa Azul")
	require.NoError(t, err)
	assert.Equal(t, "v2.pdf", nome)
	assert.Equal(t, []byte("segundo"), dados)

	assert.ErrorIs(t, repo.SalvarDocumento(ctx, "Outra", "x.pdf", nil), gorm.ErrRecordNotFound)
}

func TestObraRepo_ExcluirCascata(t *testing.T) {
	db := novoBanco(t)
	obras := NewObraRepository(db)
	etapas := NewEtapaRepository(db)
	custos := NewCustoRepository(db)
	ctx := context.Background()

	criarObra(t, obras, "Casa Azul")
	criarObra(t, obras, "Vizinha")
	for _, nome := range []string{"Casa Azul", "Vizinha"} {
		require.NoError(t, etapas.Create(ctx, &model.Etapa{
			ObraNome: nome, Nome: "Fundação",
			DataInicio: model.NewDate(2024, 1, 1), DataFim: model.NewDate(2024, 1, 10), DiasEstimados: 9,
		}))
		require.NoError(t, custos.Create(ctx, &model.Custo{
			ObraNome: nome, Data: model.NewDate(2024, 1, 2), Item: "Areia",
			Quantidade: decimal.NewFromInt(2), Unidade: "m²", ValorUnitario: decimal.NewFromInt(100),
			Total: decimal.NewFromInt(200), Classe: model.ClasseMateriais, Etapa: "Geral",
		}))
	}

	require.NoError(t, obras.ExcluirCascata(ctx, "Casa Azul"))

	_, err := obras.FindByNome(ctx, "Casa Azul")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	e, err := etapas.ListByObra(ctx, "Casa Azul")
	require.NoError(t, err)
	assert.Empty(t, e)
	c, err := custos.ListByObra(ctx, "Casa Azul")
	require.NoError(t, err)
	assert.Empty(t, c)

	// The other obra keeps its rows.
	e, err = etapas.ListByObra(ctx, "Vizinha")
	require.NoError(t, err)
	assert.Len(t, e, 1)
	c, err = custos.ListByObra(ctx, "Vizinha")
	require.NoError(t, err)
	assert.Len(t, c, 1)

	assert.ErrorIs(t, obras.ExcluirCascata(ctx, "Casa Azul"), gorm.ErrRecordNotFound)
}

func TestObraRepo_ExcluirCascataDesfazEmFalha(t *testing.T) {
	db := novoBanco(t)
	obras := NewObraRepository(db)
	etapas := NewEtapaRepository(db)
	custos := NewCustoRepository(db)
	ctx := context.Background()

	criarObra(t, obras, "Casa Azul")
	require.NoError(t, etapas.Create(ctx, &model.Etapa{
		ObraNome: "Casa Azul", Nome: "Fundação",
		DataInicio: model.NewDate(2024, 1, 1), DataFim: model.NewDate(2024, 1, 10), DiasEstimados: 9,
	}))
	require.NoError(t, custos.Create(ctx, &model.Custo{
		ObraNome: "Casa Azul", Data: model.NewDate(2024, 1, 2), Item: "Areia",
		Quantidade: decimal.NewFromInt(2), Unidade: "m²", ValorUnitario: decimal.NewFromInt(100),
		Total: decimal.NewFromInt(200), Classe: model.ClasseMateriais, Etapa: "Geral",
	}))

	// Fail the second step (costs) after the stages were already deleted.
	errCustos := errors.New("disco cheio")
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("teste:falha_custos", func(tx *gorm.DB) {
		if tx.Statement.Table == "custos" {
			_ = tx.AddError(errCustos)
		}
	}))

	assert.ErrorIs(t, obras.ExcluirCascata(ctx, "Casa Azul"), errCustos)

	_, err := obras.FindByNome(ctx, "Casa Azul")
	require.NoError(t, err)
	e, err := etapas.ListByObra(ctx, "Casa Azul")
	require.NoError(t, err)
	assert.Len(t, e, 1, "stage delete must be rolled back")
	c, err := custos.ListByObra(ctx, "Casa Azul")
	require.NoError(t, err)
	assert.Len(t, c, 1)
}
