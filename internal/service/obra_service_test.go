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

func TestObra_CriarEDuplicada(t *testing.T) {
	repo := newStubObraRepo()
	svc := service.NewObraService(repo, sessao.NewMemoryStore(time.Hour))
	ctx := context.Background()

	o, err := svc.Criar(ctx, dto.CriarObraRequest{Nome: "Casa Azul", AreaM2: 120.5, DataInicio: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, model.ObraAtiva, o.Status)
	assert.Equal(t, "2024-01-01", o.DataInicio)

	_, err = svc.Criar(ctx, dto.CriarObraRequest{Nome: "Casa Azul", AreaM2: 50, DataInicio: "2024-06-01"})
	assert.ErrorIs(t, err, service.ErrObraDuplicada)

	// The first obra is untouched.
	got, err := svc.Obter(ctx, "Casa Azul")
	require.NoError(t, err)
	assert.Equal(t, 120.5, got.AreaM2)
}

func TestObra_CriarDataInvalida(t *testing.T) {
	svc := service.NewObraService(newStubObraRepo(), sessao.NewMemoryStore(time.Hour))
	_, err := svc.Criar(context.Background(), dto.CriarObraRequest{Nome: "X", DataInicio: "01/02/2024"})
	assert.ErrorIs(t, err, service.ErrDataInvalida)
}

func TestObra_AtualizarStatus(t *testing.T) {
	repo := newStubObraRepo()
	svc := service.NewObraService(repo, sessao.NewMemoryStore(time.Hour))
	ctx := context.Background()
	_, err := svc.Criar(ctx, dto.CriarObraRequest{Nome: "Casa Azul", DataInicio: "2024-01-01"})
	require.NoError(t, err)

	o, err := svc.AtualizarStatus(ctx, "Casa Azul", dto.AtualizarStatusRequest{Status: model.ObraConcluida})
	require.NoError(t, err)
	assert.Equal(t, model.ObraConcluida, o.Status)

	_, err = svc.AtualizarStatus(ctx, "Nada", dto.AtualizarStatusRequest{Status: model.ObraPausada})
	assert.ErrorIs(t, err, service.ErrObraNaoEncontrada)
}

func TestObra_ExclusaoEmDuasEtapas(t *testing.T) {
	etapas := &stubEtapaRepo{}
	custos := &stubCustoRepo{}
	repo := newStubObraRepo()
	repo.etapas, repo.custos = etapas, custos
	sessoes := sessao.NewMemoryStore(time.Hour)
	svc := service.NewObraService(repo, sessoes)
	ctx := context.Background()

	_, err := svc.Criar(ctx, dto.CriarObraRequest{Nome: "Casa Azul", AreaM2: 100, DataInicio: "2024-01-01"})
	require.NoError(t, err)
	require.NoError(t, etapas.Create(ctx, &model.Etapa{ObraNome: "Casa Azul", Nome: "Fundação"}))
	require.NoError(t, custos.Create(ctx, &model.Custo{ObraNome: "Casa Azul", Item: "Areia", Total: decimal.NewFromInt(10)}))

	// Without asking first nothing happens.
	err = svc.Excluir(ctx, "sessao-1", "Casa Azul")
	assert.ErrorIs(t, err, service.ErrExclusaoNaoConfirmada)
	assert.Empty(t, repo.excluidas)

	resp, err := svc.SolicitarExclusao(ctx, "sessao-1", "Casa Azul")
	require.NoError(t, err)
	assert.True(t, resp.Pendente)

	// Another session's confirmation does not count.
	assert.ErrorIs(t, svc.Excluir(ctx, "sessao-2", "Casa Azul"), service.ErrExclusaoNaoConfirmada)

	require.NoError(t, svc.Excluir(ctx, "sessao-1", "Casa Azul"))
	assert.Equal(t, []string{"Casa Azul"}, repo.excluidas)

	restantes, _ := etapas.ListByObra(ctx, "Casa Azul")
	assert.Empty(t, restantes)
	gastos, _ := custos.ListByObra(ctx, "Casa Azul")
	assert.Empty(t, gastos)

	estado, err := sessoes.Obter(ctx, "sessao-1")
	require.NoError(t, err)
	assert.Empty(t, estado.ExclusaoPendente)

	_, err = svc.Obter(ctx, "Casa Azul")
	assert.ErrorIs(t, err, service.ErrObraNaoEncontrada)
}

func TestObra_CancelarExclusao(t *testing.T) {
	repo := newStubObraRepo()
	svc := service.NewObraService(repo, sessao.NewMemoryStore(time.Hour))
	ctx := context.Background()
	_, err := svc.Criar(ctx, dto.CriarObraRequest{Nome: "Casa Azul", DataInicio: "2024-01-01"})
	require.NoError(t, err)

	_, err = svc.SolicitarExclusao(ctx, "s", "Casa Azul")
	require.NoError(t, err)
	resp, err := svc.CancelarExclusao(ctx, "s", "Casa Azul")
	require.NoError(t, err)
	assert.False(t, resp.Pendente)

	assert.ErrorIs(t, svc.Excluir(ctx, "s", "Casa Azul"), service.ErrExclusaoNaoConfirmada)
}

func TestObra_ExclusaoFalhaNoBanco(t *testing.T) {
	repo := newStubObraRepo()
	repo.excluirErr = errBanco
	svc := service.NewObraService(repo, sessao.NewMemoryStore(time.Hour))
	ctx := context.Background()
	_, err := svc.Criar(ctx, dto.CriarObraRequest{Nome: "Casa Azul", DataInicio: "2024-01-01"})
	require.NoError(t, err)
	_, err = svc.SolicitarExclusao(ctx, "s", "Casa Azul")
	require.NoError(t, err)

	err = svc.Excluir(ctx, "s", "Casa Azul")
	assert.ErrorIs(t, err, errBanco)

	_, err = svc.Obter(ctx, "Casa Azul")
	assert.NoError(t, err)
}

func TestObra_SolicitarExclusaoExigeSessao(t *testing.T) {
	repo := newStubObraRepo()
	svc := service.NewObraService(repo, sessao.NewMemoryStore(time.Hour))
	ctx := context.Background()
	_, err := svc.Criar(ctx, dto.CriarObraRequest{Nome: "Casa Azul", DataInicio: "2024-01-01"})
	require.NoError(t, err)

	_, err = svc.SolicitarExclusao(ctx, "", "Casa Azul")
	assert.ErrorIs(t, err, sessao.ErrSemSessao)
	_, err = svc.SolicitarExclusao(ctx, "s", "Nada")
	assert.ErrorIs(t, err, service.ErrObraNaoEncontrada)
}
