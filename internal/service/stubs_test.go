package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedrodiniz00/sistema-obras/internal/infra"
	"github.com/pedrodiniz00/sistema-obras/internal/model"
	"github.com/pedrodiniz00/sistema-obras/internal/repository"
)

// ── In-memory ObraRepository ─────────────────────────────────────────────────

type stubObraRepo struct {
	obras      map[string]*model.Obra
	excluirErr error
	excluidas  []string
	custos     *stubCustoRepo
	etapas     *stubEtapaRepo
}

var _ repository.ObraRepository = (*stubObraRepo)(nil)

func newStubObraRepo() *stubObraRepo {
	return &stubObraRepo{obras: make(map[string]*model.Obra)}
}

func (r *stubObraRepo) Create(_ context.Context, o *model.Obra) error {
	if _, ok := r.obras[o.Nome]; ok {
		return gorm.ErrDuplicatedKey
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cp := *o
	r.obras[o.Nome] = &cp
	return nil
}

func (r *stubObraRepo) List(_ context.Context) ([]model.Obra, error) {
	list := make([]model.Obra, 0, len(r.obras))
	for _, o := range r.obras {
		list = append(list, *o)
	}
	return list, nil
}

func (r *stubObraRepo) FindByNome(_ context.Context, nome string) (*model.Obra, error) {
	o, ok := r.obras[nome]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubObraRepo) UpdateStatus(_ context.Context, nome, status string) error {
	o, ok := r.obras[nome]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (r *stubObraRepo) ExcluirCascata(_ context.Context, nome string) error {
	if r.excluirErr != nil {
		return r.excluirErr
	}
	if _, ok := r.obras[nome]; !ok {
		return gorm.ErrRecordNotFound
	}
	if r.etapas != nil {
		r.etapas.removerObra(nome)
	}
	if r.custos != nil {
		r.custos.removerObra(nome)
	}
	delete(r.obras, nome)
	r.excluidas = append(r.excluidas, nome)
	return nil
}

func (r *stubObraRepo) SalvarDocumento(_ context.Context, nome, arquivo string, dados []byte) error {
	o, ok := r.obras[nome]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.PDFNome = &arquivo
	o.PDFBlob = dados
	return nil
}

func (r *stubObraRepo) ObterDocumento(_ context.Context, nome string) (string, []byte, error) {
	o, ok := r.obras[nome]
	if !ok {
		return "", nil, gorm.ErrRecordNotFound
	}
	if o.PDFNome == nil {
		return "", nil, nil
	}
	return *o.PDFNome, o.PDFBlob, nil
}

// ── In-memory EtapaRepository ────────────────────────────────────────────────
// ListByObra deliberately returns insertion order so tests prove the service
// sorts on its own.

type stubEtapaRepo struct {
	etapas        []model.Etapa
	substituirErr error
}

var _ repository.EtapaRepository = (*stubEtapaRepo)(nil)

func (r *stubEtapaRepo) Create(_ context.Context, e *model.Etapa) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.etapas = append(r.etapas, *e)
	return nil
}

func (r *stubEtapaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Etapa, error) {
	for i := range r.etapas {
		if r.etapas[i].ID == id {
			cp := r.etapas[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEtapaRepo) ListByObra(_ context.Context, obra string) ([]model.Etapa, error) {
	var list []model.Etapa
	for _, e := range r.etapas {
		if e.ObraNome == obra {
			list = append(list, e)
		}
	}
	return list, nil
}

func (r *stubEtapaRepo) SubstituirCronograma(_ context.Context, obra string, etapas []model.Etapa) error {
	if r.substituirErr != nil {
		return r.substituirErr
	}
	r.removerObra(obra)
	for _, e := range etapas {
		e.ObraNome = obra
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		r.etapas = append(r.etapas, e)
	}
	return nil
}

func (r *stubEtapaRepo) UpdateDatas(_ context.Context, id uuid.UUID, inicio, fim model.Date, dias int) error {
	for i := range r.etapas {
		if r.etapas[i].ID == id {
			r.etapas[i].DataInicio, r.etapas[i].DataFim, r.etapas[i].DiasEstimados = inicio, fim, dias
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubEtapaRepo) UpdatePorcentagem(_ context.Context, id uuid.UUID, pct int) error {
	for i := range r.etapas {
		if r.etapas[i].ID == id {
			r.etapas[i].Porcentagem = pct
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubEtapaRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.etapas {
		if r.etapas[i].ID == id {
			r.etapas = append(r.etapas[:i], r.etapas[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubEtapaRepo) removerObra(obra string) {
	kept := r.etapas[:0]
	for _, e := range r.etapas {
		if e.ObraNome != obra {
			kept = append(kept, e)
		}
	}
	r.etapas = kept
}

// ── In-memory CustoRepository ────────────────────────────────────────────────

type stubCustoRepo struct {
	custos []model.Custo
}

var _ repository.CustoRepository = (*stubCustoRepo)(nil)

func (r *stubCustoRepo) Create(_ context.Context, c *model.Custo) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.custos = append(r.custos, *c)
	return nil
}

func (r *stubCustoRepo) ListByObra(_ context.Context, obra string) ([]model.Custo, error) {
	var list []model.Custo
	for i := len(r.custos) - 1; i >= 0; i-- {
		if r.custos[i].ObraNome == obra {
			list = append(list, r.custos[i])
		}
	}
	return list, nil
}

func (r *stubCustoRepo) removerObra(obra string) {
	kept := r.custos[:0]
	for _, c := range r.custos {
		if c.ObraNome != obra {
			kept = append(kept, c)
		}
	}
	r.custos = kept
}

// ── Fake text extractor ──────────────────────────────────────────────────────

type stubExtrator struct {
	texto string
	err   error
}

func (x *stubExtrator) Extrair(_ []byte) (*infra.Extracao, error) {
	if x.err != nil {
		return nil, x.err
	}
	return &infra.Extracao{Texto: x.texto, Linhas: infra.FiltrarLinhasMateriais(x.texto)}, nil
}

var errBanco = errors.New("database is locked")
