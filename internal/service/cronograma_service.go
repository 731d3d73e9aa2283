package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pedrodiniz00/sistema-obras/internal/cronograma"
	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/infra"
	"github.com/pedrodiniz00/sistema-obras/internal/metrics"
	"github.com/pedrodiniz00/sistema-obras/internal/model"
	"github.com/pedrodiniz00/sistema-obras/internal/repository"
)

// Relogio returns the current calendar day. Injected so "overdue" is testable.
type Relogio func() model.Date

// CronogramaService is the schedule store of an obra. Every read returns the
// stages in (data_inicio, data_fim) order.
type CronogramaService interface {
	Gerar(ctx context.Context, nome string, req dto.GerarCronogramaRequest) (dto.GerarCronogramaResponse, error)
	InserirManual(ctx context.Context, nome string, req dto.InserirEtapaRequest) (dto.EtapaResponse, error)
	AtualizarDatas(ctx context.Context, id uuid.UUID, req dto.AtualizarDatasRequest) (dto.EtapaResponse, error)
	AtualizarProgresso(ctx context.Context, id uuid.UUID, req dto.AtualizarProgressoRequest) (dto.EtapaResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
	Listar(ctx context.Context, nome string) (dto.CronogramaResponse, error)
	Grafico(ctx context.Context, nome string) ([]byte, error)
}

type cronogramaService struct {
	etapas repository.EtapaRepository
	obras  repository.ObraRepository
	hoje   Relogio
}

func NewCronogramaService(etapas repository.EtapaRepository, obras repository.ObraRepository, hoje Relogio) CronogramaService {
	if hoje == nil {
		hoje = model.Today
	}
	return &cronogramaService{etapas: etapas, obras: obras, hoje: hoje}
}

func mapEtapa(e model.Etapa, hoje model.Date) dto.EtapaResponse {
	return dto.EtapaResponse{
		ID:            e.ID,
		Nome:          e.Nome,
		DiasEstimados: e.DiasEstimados,
		DataInicio:    e.DataInicio.String(),
		DataFim:       e.DataFim.String(),
		Porcentagem:   e.Porcentagem,
		Faixa:         cronograma.Faixa(e.Porcentagem),
		Atrasada:      cronograma.Atrasada(e, hoje),
	}
}

func montarCronograma(nome string, etapas []model.Etapa, hoje model.Date) dto.CronogramaResponse {
	atrasadas := cronograma.ContarAtrasadas(etapas, hoje)
	resp := dto.CronogramaResponse{
		Obra:      nome,
		Etapas:    make([]dto.EtapaResponse, 0, len(etapas)),
		Progresso: cronograma.ProgressoGlobal(etapas),
		Atrasadas: atrasadas,
		Status:    cronograma.StatusObra(atrasadas),
	}
	for _, e := range etapas {
		resp.Etapas = append(resp.Etapas, mapEtapa(e, hoje))
	}
	return resp
}

// parseIntervalo parses both dates and rejects an end before the start.
// Equal dates are a valid zero-day stage.
func parseIntervalo(inicioStr, fimStr string) (model.Date, model.Date, error) {
	inicio, err := parseData(inicioStr)
	if err != nil {
		return model.Date{}, model.Date{}, err
	}
	fim, err := parseData(fimStr)
	if err != nil {
		return model.Date{}, model.Date{}, err
	}
	if fim.Before(inicio) {
		return model.Date{}, model.Date{}, ErrIntervaloInvalido
	}
	return inicio, fim, nil
}

// listarOrdenado reads the stages and sorts them again; the SQL ORDER BY is
// not the only guarantee of chronological order.
func (s *cronogramaService) listarOrdenado(ctx context.Context, nome string) ([]model.Etapa, error) {
	etapas, err := s.etapas.ListByObra(ctx, nome)
	if err != nil {
		return nil, err
	}
	cronograma.Ordenar(etapas)
	return etapas, nil
}

// Gerar replaces the whole schedule with the generated plan. A crew without
// capacity generates nothing and the existing stages stay as they are.
func (s *cronogramaService) Gerar(ctx context.Context, nome string, req dto.GerarCronogramaRequest) (dto.GerarCronogramaResponse, error) {
	o, err := buscarObra(ctx, s.obras, nome)
	if err != nil {
		return dto.GerarCronogramaResponse{}, err
	}

	plano, err := cronograma.Gerar(o.AreaM2, req.Pedreiros, req.Ajudantes, o.DataInicio)
	if err != nil {
		// Nothing was written; the current schedule stays readable.
		return dto.GerarCronogramaResponse{}, err
	}
	gerado := len(plano) > 0
	if gerado {
		etapas := make([]model.Etapa, 0, len(plano))
		for _, p := range plano {
			etapas = append(etapas, model.Etapa{
				ObraNome:      nome,
				Nome:          p.Nome,
				DiasEstimados: p.DiasEstimados,
				DataInicio:    p.DataInicio,
				DataFim:       p.DataFim,
			})
		}
		if err := s.etapas.SubstituirCronograma(ctx, nome, etapas); err != nil {
			return dto.GerarCronogramaResponse{}, err
		}
		log.Info().Str("obra", nome).Int("pedreiros", req.Pedreiros).Int("ajudantes", req.Ajudantes).
			Msg("cronograma regenerado")
	} else {
		log.Warn().Str("obra", nome).Msg("equipe sem capacidade; cronograma mantido")
	}
	metrics.RecordCronograma(gerado)

	resp, err := s.Listar(ctx, nome)
	if err != nil {
		return dto.GerarCronogramaResponse{}, err
	}
	return dto.GerarCronogramaResponse{Gerado: gerado, Cronograma: resp}, nil
}

func (s *cronogramaService) InserirManual(ctx context.Context, nome string, req dto.InserirEtapaRequest) (dto.EtapaResponse, error) {
	if _, err := buscarObra(ctx, s.obras, nome); err != nil {
		return dto.EtapaResponse{}, err
	}
	inicio, fim, err := parseIntervalo(req.DataInicio, req.DataFim)
	if err != nil {
		return dto.EtapaResponse{}, err
	}

	e := &model.Etapa{
		ObraNome:      nome,
		Nome:          req.Nome,
		DiasEstimados: inicio.DaysUntil(fim),
		DataInicio:    inicio,
		DataFim:       fim,
	}
	if err := s.etapas.Create(ctx, e); err != nil {
		return dto.EtapaResponse{}, err
	}
	return mapEtapa(*e, s.hoje()), nil
}

func (s *cronogramaService) AtualizarDatas(ctx context.Context, id uuid.UUID, req dto.AtualizarDatasRequest) (dto.EtapaResponse, error) {
	inicio, fim, err := parseIntervalo(req.DataInicio, req.DataFim)
	if err != nil {
		return dto.EtapaResponse{}, err
	}
	if err := s.etapas.UpdateDatas(ctx, id, inicio, fim, inicio.DaysUntil(fim)); err != nil {
		return dto.EtapaResponse{}, mapEtapaErr(err)
	}
	return s.obter(ctx, id)
}

// AtualizarProgresso stores the percentage as given; range checks belong to
// the caller.
func (s *cronogramaService) AtualizarProgresso(ctx context.Context, id uuid.UUID, req dto.AtualizarProgressoRequest) (dto.EtapaResponse, error) {
	pct := 0
	if req.Porcentagem != nil {
		pct = *req.Porcentagem
	}
	if err := s.etapas.UpdatePorcentagem(ctx, id, pct); err != nil {
		return dto.EtapaResponse{}, mapEtapaErr(err)
	}
	return s.obter(ctx, id)
}

func (s *cronogramaService) Excluir(ctx context.Context, id uuid.UUID) error {
	return mapEtapaErr(s.etapas.Delete(ctx, id))
}

func (s *cronogramaService) Listar(ctx context.Context, nome string) (dto.CronogramaResponse, error) {
	if _, err := buscarObra(ctx, s.obras, nome); err != nil {
		return dto.CronogramaResponse{}, err
	}
	etapas, err := s.listarOrdenado(ctx, nome)
	if err != nil {
		return dto.CronogramaResponse{}, err
	}
	return montarCronograma(nome, etapas, s.hoje()), nil
}

// Grafico renders the schedule as an HTML Gantt chart.
func (s *cronogramaService) Grafico(ctx context.Context, nome string) ([]byte, error) {
	if _, err := buscarObra(ctx, s.obras, nome); err != nil {
		return nil, err
	}
	etapas, err := s.listarOrdenado(ctx, nome)
	if err != nil {
		return nil, err
	}
	return infra.GerarGraficoCronograma(nome, etapas)
}

func (s *cronogramaService) obter(ctx context.Context, id uuid.UUID) (dto.EtapaResponse, error) {
	e, err := s.etapas.FindByID(ctx, id)
	if err != nil {
		return dto.EtapaResponse{}, mapEtapaErr(err)
	}
	return mapEtapa(*e, s.hoje()), nil
}

func mapEtapaErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEtapaNaoEncontrada
	}
	return err
}
