package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/metrics"
	"github.com/pedrodiniz00/sistema-obras/internal/model"
	"github.com/pedrodiniz00/sistema-obras/internal/repository"
	"github.com/pedrodiniz00/sistema-obras/internal/sessao"
)

// ObraService manages the obra lifecycle. Deletion is two-step: the session
// must first ask for it, then confirm it.
type ObraService interface {
	Criar(ctx context.Context, req dto.CriarObraRequest) (dto.ObraResponse, error)
	Listar(ctx context.Context) ([]dto.ObraResponse, error)
	Obter(ctx context.Context, nome string) (dto.ObraResponse, error)
	AtualizarStatus(ctx context.Context, nome string, req dto.AtualizarStatusRequest) (dto.ObraResponse, error)
	SolicitarExclusao(ctx context.Context, sessaoID, nome string) (dto.ConfirmacaoExclusaoResponse, error)
	CancelarExclusao(ctx context.Context, sessaoID, nome string) (dto.ConfirmacaoExclusaoResponse, error)
	Excluir(ctx context.Context, sessaoID, nome string) error
}

type obraService struct {
	repo    repository.ObraRepository
	sessoes sessao.Store
}

func NewObraService(repo repository.ObraRepository, sessoes sessao.Store) ObraService {
	return &obraService{repo: repo, sessoes: sessoes}
}

func mapObra(o model.Obra) dto.ObraResponse {
	return dto.ObraResponse{
		ID:         o.ID,
		Nome:       o.Nome,
		Status:     o.Status,
		AreaM2:     o.AreaM2,
		DataInicio: o.DataInicio.String(),
		Documento:  o.PDFNome,
	}
}

// buscarObra loads an obra and maps "not found" to ErrObraNaoEncontrada.
func buscarObra(ctx context.Context, repo repository.ObraRepository, nome string) (*model.Obra, error) {
	o, err := repo.FindByNome(ctx, nome)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrObraNaoEncontrada
		}
		return nil, err
	}
	return o, nil
}

func parseData(s string) (model.Date, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, fmt.Errorf("%w: %q", ErrDataInvalida, s)
	}
	return d, nil
}

func (s *obraService) Criar(ctx context.Context, req dto.CriarObraRequest) (dto.ObraResponse, error) {
	inicio, err := parseData(req.DataInicio)
	if err != nil {
		return dto.ObraResponse{}, err
	}

	existing, err := s.repo.FindByNome(ctx, req.Nome)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.ObraResponse{}, err
	}
	if existing != nil {
		return dto.ObraResponse{}, ErrObraDuplicada
	}

	o := &model.Obra{
		Nome:       req.Nome,
		Status:     model.ObraAtiva,
		AreaM2:     req.AreaM2,
		DataInicio: inicio,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		// Lost a race against a concurrent create with the same name.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ObraResponse{}, ErrObraDuplicada
		}
		return dto.ObraResponse{}, err
	}
	log.Info().Str("obra", o.Nome).Msg("obra criada")
	return mapObra(*o), nil
}

func (s *obraService) Listar(ctx context.Context) ([]dto.ObraResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ObraResponse, 0, len(list))
	for _, o := range list {
		result = append(result, mapObra(o))
	}
	return result, nil
}

func (s *obraService) Obter(ctx context.Context, nome string) (dto.ObraResponse, error) {
	o, err := buscarObra(ctx, s.repo, nome)
	if err != nil {
		return dto.ObraResponse{}, err
	}
	return mapObra(*o), nil
}

func (s *obraService) AtualizarStatus(ctx context.Context, nome string, req dto.AtualizarStatusRequest) (dto.ObraResponse, error) {
	if err := s.repo.UpdateStatus(ctx, nome, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ObraResponse{}, ErrObraNaoEncontrada
		}
		return dto.ObraResponse{}, err
	}
	return s.Obter(ctx, nome)
}

func (s *obraService) SolicitarExclusao(ctx context.Context, sessaoID, nome string) (dto.ConfirmacaoExclusaoResponse, error) {
	if _, err := buscarObra(ctx, s.repo, nome); err != nil {
		return dto.ConfirmacaoExclusaoResponse{}, err
	}
	err := sessao.Atualizar(ctx, s.sessoes, sessaoID, func(e *sessao.Estado) {
		e.ExclusaoPendente = nome
	})
	if err != nil {
		return dto.ConfirmacaoExclusaoResponse{}, err
	}
	return dto.ConfirmacaoExclusaoResponse{Obra: nome, Pendente: true}, nil
}

func (s *obraService) CancelarExclusao(ctx context.Context, sessaoID, nome string) (dto.ConfirmacaoExclusaoResponse, error) {
	err := sessao.Atualizar(ctx, s.sessoes, sessaoID, func(e *sessao.Estado) {
		if e.ExclusaoPendente == nome {
			e.ExclusaoPendente = ""
		}
	})
	if err != nil {
		return dto.ConfirmacaoExclusaoResponse{}, err
	}
	return dto.ConfirmacaoExclusaoResponse{Obra: nome, Pendente: false}, nil
}

// Excluir removes the obra with all its etapas and custos. It only runs when
// this session previously asked to delete the same obra.
func (s *obraService) Excluir(ctx context.Context, sessaoID, nome string) error {
	if sessaoID == "" {
		return sessao.ErrSemSessao
	}
	estado, err := s.sessoes.Obter(ctx, sessaoID)
	if err != nil {
		return err
	}
	if estado.ExclusaoPendente != nome {
		return ErrExclusaoNaoConfirmada
	}

	if err := s.repo.ExcluirCascata(ctx, nome); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrObraNaoEncontrada
		}
		return fmt.Errorf("excluir obra %q: %w", nome, err)
	}
	metrics.RecordObraExcluida()
	log.Info().Str("obra", nome).Msg("obra excluída com etapas e custos")

	err = sessao.Atualizar(ctx, s.sessoes, sessaoID, func(e *sessao.Estado) {
		e.ExclusaoPendente = ""
		delete(e.ItensExtraidos, nome)
	})
	if err != nil {
		log.Warn().Err(err).Str("obra", nome).Msg("falha ao limpar estado da sessão")
	}
	return nil
}
