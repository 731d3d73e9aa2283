package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/infra"
	"github.com/pedrodiniz00/sistema-obras/internal/repository"
	"github.com/pedrodiniz00/sistema-obras/internal/sessao"
)

// DocumentoService stores the obra's project PDF and reads material lines
// out of it. Extracted lines live only in the caller's session.
type DocumentoService interface {
	Salvar(ctx context.Context, nome, arquivo string, dados []byte) (dto.DocumentoResponse, error)
	Obter(ctx context.Context, nome string) (string, []byte, error)
	Ler(ctx context.Context, sessaoID, nome string) (dto.LeituraDocumentoResponse, error)
}

type documentoService struct {
	repo     repository.ObraRepository
	extrator infra.ExtratorPDF
	sessoes  sessao.Store
}

func NewDocumentoService(repo repository.ObraRepository, extrator infra.ExtratorPDF, sessoes sessao.Store) DocumentoService {
	return &documentoService{repo: repo, extrator: extrator, sessoes: sessoes}
}

func (s *documentoService) Salvar(ctx context.Context, nome, arquivo string, dados []byte) (dto.DocumentoResponse, error) {
	if err := s.repo.SalvarDocumento(ctx, nome, arquivo, dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DocumentoResponse{}, ErrObraNaoEncontrada
		}
		return dto.DocumentoResponse{}, err
	}
	log.Info().Str("obra", nome).Str("arquivo", arquivo).Int("bytes", len(dados)).Msg("documento salvo")
	return dto.DocumentoResponse{Obra: nome, Arquivo: arquivo, Tamanho: len(dados)}, nil
}

func (s *documentoService) Obter(ctx context.Context, nome string) (string, []byte, error) {
	arquivo, dados, err := s.repo.ObterDocumento(ctx, nome)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrObraNaoEncontrada
		}
		return "", nil, err
	}
	if arquivo == "" {
		return "", nil, ErrDocumentoAusente
	}
	return arquivo, dados, nil
}

func (s *documentoService) Ler(ctx context.Context, sessaoID, nome string) (dto.LeituraDocumentoResponse, error) {
	_, dados, err := s.Obter(ctx, nome)
	if err != nil {
		return dto.LeituraDocumentoResponse{}, err
	}

	ext, err := s.extrator.Extrair(dados)
	if err != nil {
		return dto.LeituraDocumentoResponse{}, fmt.Errorf("%w: %v", ErrDocumentoIlegivel, err)
	}

	err = sessao.Atualizar(ctx, s.sessoes, sessaoID, func(e *sessao.Estado) {
		if e.ItensExtraidos == nil {
			e.ItensExtraidos = make(map[string][]string)
		}
		e.ItensExtraidos[nome] = ext.Linhas
	})
	if err != nil {
		log.Warn().Err(err).Str("obra", nome).Msg("itens extraídos não guardados na sessão")
	}
	return dto.LeituraDocumentoResponse{Texto: ext.Texto, Linhas: ext.Linhas}, nil
}
