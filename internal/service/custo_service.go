package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/metrics"
	"github.com/pedrodiniz00/sistema-obras/internal/model"
	"github.com/pedrodiniz00/sistema-obras/internal/repository"
	"github.com/pedrodiniz00/sistema-obras/internal/sessao"
)

// etapaGeral tags costs that are not tied to a specific stage.
const etapaGeral = "Geral"

// CustoService appends to and reads an obra's cost ledger.
type CustoService interface {
	Registrar(ctx context.Context, sessaoID, nome string, req dto.RegistrarCustoRequest) (dto.CustoResponse, error)
	Listar(ctx context.Context, sessaoID, nome string) (dto.ListaCustosResponse, error)
}

type custoService struct {
	custos  repository.CustoRepository
	obras   repository.ObraRepository
	sessoes sessao.Store
}

func NewCustoService(custos repository.CustoRepository, obras repository.ObraRepository, sessoes sessao.Store) CustoService {
	return &custoService{custos: custos, obras: obras, sessoes: sessoes}
}

func mapCusto(c model.Custo) dto.CustoResponse {
	return dto.CustoResponse{
		ID:            c.ID,
		Data:          c.Data.String(),
		Item:          c.Item,
		Quantidade:    c.Quantidade,
		Unidade:       c.Unidade,
		ValorUnitario: c.ValorUnitario,
		Total:         c.Total,
		Classe:        c.Classe,
		Etapa:         c.Etapa,
	}
}

// somarTotal adds up the ledger totals.
func somarTotal(custos []model.Custo) decimal.Decimal {
	total := decimal.Zero
	for _, c := range custos {
		total = total.Add(c.Total)
	}
	return total
}

// Registrar appends one entry. Total is quantity × unit price, fixed here.
func (s *custoService) Registrar(ctx context.Context, sessaoID, nome string, req dto.RegistrarCustoRequest) (dto.CustoResponse, error) {
	if _, err := buscarObra(ctx, s.obras, nome); err != nil {
		return dto.CustoResponse{}, err
	}
	data, err := parseData(req.Data)
	if err != nil {
		return dto.CustoResponse{}, err
	}

	etapa := strings.TrimSpace(req.Etapa)
	if etapa == "" {
		etapa = etapaGeral
	}

	c := &model.Custo{
		ObraNome:      nome,
		Data:          data,
		Item:          req.Item,
		Quantidade:    req.Quantidade,
		Unidade:       req.Unidade,
		ValorUnitario: req.ValorUnitario,
		Total:         req.Quantidade.Mul(req.ValorUnitario).Round(2),
		Classe:        req.Classe,
		Etapa:         etapa,
	}
	if err := s.custos.Create(ctx, c); err != nil {
		return dto.CustoResponse{}, err
	}
	metrics.RecordCusto(c.Classe)

	if sessaoID != "" {
		err := sessao.Atualizar(ctx, s.sessoes, sessaoID, func(e *sessao.Estado) {
			e.FormularioCusto = &sessao.FormularioCusto{Classe: c.Classe, Etapa: c.Etapa, Unidade: c.Unidade}
		})
		if err != nil {
			log.Warn().Err(err).Msg("formulário de custo não lembrado")
		}
	}
	return mapCusto(*c), nil
}

// Listar returns the ledger newest first with its grand total and the
// session's remembered form choices.
func (s *custoService) Listar(ctx context.Context, sessaoID, nome string) (dto.ListaCustosResponse, error) {
	if _, err := buscarObra(ctx, s.obras, nome); err != nil {
		return dto.ListaCustosResponse{}, err
	}
	list, err := s.custos.ListByObra(ctx, nome)
	if err != nil {
		return dto.ListaCustosResponse{}, err
	}

	resp := dto.ListaCustosResponse{
		Obra:   nome,
		Custos: make([]dto.CustoResponse, 0, len(list)),
		Total:  somarTotal(list),
	}
	for _, c := range list {
		resp.Custos = append(resp.Custos, mapCusto(c))
	}

	if sessaoID != "" {
		estado, err := s.sessoes.Obter(ctx, sessaoID)
		if err != nil {
			log.Warn().Err(err).Msg("estado da sessão indisponível")
		} else if f := estado.FormularioCusto; f != nil {
			resp.Formulario = &dto.FormularioCustoResponse{Classe: f.Classe, Etapa: f.Etapa, Unidade: f.Unidade}
		}
	}
	return resp, nil
}
