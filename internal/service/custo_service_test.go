package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/model"
	"github.com/pedrodiniz00/sistema-obras/internal/service"
	"github.com/pedrodiniz00/sistema-obras/internal/sessao"
)

func custoReq(data, item, qtd, valor string) dto.RegistrarCustoRequest {
	return dto.RegistrarCustoRequest{
		Data:          data,
		Item:          item,
		Quantidade:    decimal.RequireFromString(qtd),
		Unidade:       "unid",
		ValorUnitario: decimal.RequireFromString(valor),
		Classe:        model.ClasseMateriais,
	}
}

func TestCusto_RegistrarCalculaTotal(t *testing.T) {
	obras := newStubObraRepo()
	require.NoError(t, obras.Create(context.Background(), &model.Obra{Nome: "Casa Azul"}))
	custos := &stubCustoRepo{}
	svc := service.NewCustoService(custos, obras, sessao.NewMemoryStore(time.Hour))

	c, err := svc.Registrar(context.Background(), "", "Casa Azul", custoReq("2024-01-05", "Cimento", "12", "38.90"))
	require.NoError(t, err)

	assert.True(t, c.Total.Equal(decimal.RequireFromString("466.80")), c.Total.String())
	assert.Equal(t, "Geral", c.Etapa)
	require.Len(t, custos.custos, 1)
	assert.Equal(t, "2024-01-05", custos.custos[0].Data.String())
}

func TestCusto_ListarTotalEFormularioLembrado(t *testing.T) {
	obras := newStubObraRepo()
	require.NoError(t, obras.Create(context.Background(), &model.Obra{Nome: "Casa Azul"}))
	custos := &stubCustoRepo{}
	svc := service.NewCustoService(custos, obras, sessao.NewMemoryStore(time.Hour))
	ctx := context.Background()

	_, err := svc.Registrar(ctx, "s1", "Casa Azul", custoReq("2024-01-05", "Tijolos", "1000", "0.85"))
	require.NoError(t, err)

	req := custoReq("2024-01-06", "Pedreiro diária", "2", "250")
	req.Classe = model.ClasseMaoDeObra
	req.Etapa = "Alvenaria"
	_, err = svc.Registrar(ctx, "s1", "Casa Azul", req)
	require.NoError(t, err)

	list, err := svc.Listar(ctx, "s1", "Casa Azul")
	require.NoError(t, err)
	require.Len(t, list.Custos, 2)
	assert.Equal(t, "Pedreiro diária", list.Custos[0].Item)
	assert.True(t, list.Total.Equal(decimal.RequireFromString("1350")), list.Total.String())
	require.NotNil(t, list.Formulario)
	assert.Equal(t, model.ClasseMaoDeObra, list.Formulario.Classe)
	assert.Equal(t, "Alvenaria", list.Formulario.Etapa)

	outra, err := svc.Listar(ctx, "s2", "Casa Azul")
	require.NoError(t, err)
	assert.Nil(t, outra.Formulario)
}

func TestCusto_Erros(t *testing.T) {
	obras := newStubObraRepo()
	require.NoError(t, obras.Create(context.Background(), &model.Obra{Nome: "Casa Azul"}))
	svc := service.NewCustoService(&stubCustoRepo{}, obras, sessao.NewMemoryStore(time.Hour))
	ctx := context.Background()

	_, err := svc.Registrar(ctx, "", "Nada", custoReq("2024-01-05", "Cimento", "1", "1"))
	assert.ErrorIs(t, err, service.ErrObraNaoEncontrada)

	_, err = svc.Registrar(ctx, "", "Casa Azul", custoReq("2024-13-05", "Cimento", "1", "1"))
	assert.ErrorIs(t, err, service.ErrDataInvalida)

	_, err = svc.Listar(ctx, "", "Nada")
	assert.ErrorIs(t, err, service.ErrObraNaoEncontrada)
}
