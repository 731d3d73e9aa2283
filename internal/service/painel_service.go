package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pedrodiniz00/sistema-obras/internal/cronograma"
	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/infra"
	"github.com/pedrodiniz00/sistema-obras/internal/model"
	"github.com/pedrodiniz00/sistema-obras/internal/repository"
	"github.com/pedrodiniz00/sistema-obras/internal/sessao"
)

// PainelService builds the read-only views of an obra: the dashboard and the
// PDF report. Both derive their aggregates from the same ordered schedule.
type PainelService interface {
	Painel(ctx context.Context, sessaoID, nome string) (dto.PainelResponse, error)
	Relatorio(ctx context.Context, nome string) ([]byte, error)
}

type painelService struct {
	obras   repository.ObraRepository
	etapas  repository.EtapaRepository
	custos  repository.CustoRepository
	sessoes sessao.Store
	hoje    Relogio
	agora   func() time.Time
}

func NewPainelService(
	obras repository.ObraRepository,
	etapas repository.EtapaRepository,
	custos repository.CustoRepository,
	sessoes sessao.Store,
	hoje Relogio,
) PainelService {
	if hoje == nil {
		hoje = model.Today
	}
	return &painelService{obras: obras, etapas: etapas, custos: custos, sessoes: sessoes, hoje: hoje, agora: time.Now}
}

func (s *painelService) Painel(ctx context.Context, sessaoID, nome string) (dto.PainelResponse, error) {
	o, err := buscarObra(ctx, s.obras, nome)
	if err != nil {
		return dto.PainelResponse{}, err
	}
	etapas, err := s.etapas.ListByObra(ctx, nome)
	if err != nil {
		return dto.PainelResponse{}, err
	}
	cronograma.Ordenar(etapas)
	custos, err := s.custos.ListByObra(ctx, nome)
	if err != nil {
		return dto.PainelResponse{}, err
	}

	hoje := s.hoje()
	atrasadas := cronograma.ContarAtrasadas(etapas, hoje)
	resp := dto.PainelResponse{
		Obra:      mapObra(*o),
		Progresso: cronograma.ProgressoGlobal(etapas),
		Atrasadas: atrasadas,
		Status:    cronograma.StatusObra(atrasadas),
		EtapasPorFaixa: map[string]int{
			cronograma.FaixaPendente:    0,
			cronograma.FaixaEmAndamento: 0,
			cronograma.FaixaConcluida:   0,
		},
		TotalEtapas:    len(etapas),
		TotalGasto:     somarTotal(custos),
		QtdCustos:      len(custos),
		ItensExtraidos: []string{},
	}
	for _, e := range etapas {
		resp.EtapasPorFaixa[cronograma.Faixa(e.Porcentagem)]++
	}

	if sessaoID != "" {
		estado, err := s.sessoes.Obter(ctx, sessaoID)
		if err != nil {
			log.Warn().Err(err).Msg("estado da sessão indisponível")
		} else {
			if itens, ok := estado.ItensExtraidos[nome]; ok && itens != nil {
				resp.ItensExtraidos = itens
			}
			resp.ExclusaoPendente = estado.ExclusaoPendente == nome
		}
	}
	return resp, nil
}

// Relatorio renders the obra report as a PDF.
func (s *painelService) Relatorio(ctx context.Context, nome string) ([]byte, error) {
	o, err := buscarObra(ctx, s.obras, nome)
	if err != nil {
		return nil, err
	}
	etapas, err := s.etapas.ListByObra(ctx, nome)
	if err != nil {
		return nil, err
	}
	cronograma.Ordenar(etapas)
	custos, err := s.custos.ListByObra(ctx, nome)
	if err != nil {
		return nil, err
	}

	atrasadas := cronograma.ContarAtrasadas(etapas, s.hoje())
	return infra.GerarRelatorioPDF(&infra.RelatorioObra{
		Obra:       *o,
		Etapas:     etapas,
		Custos:     custos,
		TotalGasto: somarTotal(custos),
		Progresso:  cronograma.ProgressoGlobal(etapas),
		Atrasadas:  atrasadas,
		Status:     cronograma.StatusObra(atrasadas),
		GeradoEm:   s.agora(),
	})
}
