package repository

import (
	"context"

	"github.com/pedrodiniz00/sistema-obras/internal/model"

	"gorm.io/gorm"
)

// ObraRepository persists obras and their attached document.
// Read methods never load the document blob; use ObterDocumento for that.
type ObraRepository interface {
	Create(ctx context.Context, o *model.Obra) error
	List(ctx context.Context) ([]model.Obra, error)
	FindByNome(ctx context.Context, nome string) (*model.Obra, error)
	UpdateStatus(ctx context.Context, nome, status string) error
	ExcluirCascata(ctx context.Context, nome string) error
	SalvarDocumento(ctx context.Context, nome, arquivo string, dados []byte) error
	ObterDocumento(ctx context.Context, nome string) (string, []byte, error)
}

type obraRepo struct{ db *gorm.DB }

func NewObraRepository(db *gorm.DB) ObraRepository { return &obraRepo{db: db} }

func (r *obraRepo) Create(ctx context.Context, o *model.Obra) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *obraRepo) List(ctx context.Context) ([]model.Obra, error) {
	var list []model.Obra
	err := r.db.WithContext(ctx).Omit("pdf_blob").Order("nome asc").Find(&list).Error
	return list, err
}

func (r *obraRepo) FindByNome(ctx context.Context, nome string) (*model.Obra, error) {
	var o model.Obra
	err := r.db.WithContext(ctx).Omit("pdf_blob").Where("nome = ?", nome).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *obraRepo) UpdateStatus(ctx context.Context, nome, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Obra{}).Where("nome = ?", nome).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExcluirCascata deletes the obra's stages, then its costs, then the obra
// row, all in one transaction. Nothing is removed if any step fails.
func (r *obraRepo) ExcluirCascata(ctx context.Context, nome string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("obra_nome = ?", nome).Delete(&model.Etapa{}).Error; err != nil {
			return err
		}
		if err := tx.Where("obra_nome = ?", nome).Delete(&model.Custo{}).Error; err != nil {
			return err
		}
		res := tx.Where("nome = ?", nome).Delete(&model.Obra{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SalvarDocumento overwrites the obra's document name and bytes.
func (r *obraRepo) SalvarDocumento(ctx context.Context, nome, arquivo string, dados []byte) error {
	res := r.db.WithContext(ctx).Model(&model.Obra{}).Where("nome = ?", nome).
		Updates(map[string]interface{}{"pdf_nome": arquivo, "pdf_blob": dados})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ObterDocumento returns the stored document. An obra without a document
// yields an empty name and nil bytes.
func (r *obraRepo) ObterDocumento(ctx context.Context, nome string) (string, []byte, error) {
	var o model.Obra
	err := r.db.WithContext(ctx).Select("pdf_nome", "pdf_blob").Where("nome = ?", nome).First(&o).Error
	if err != nil {
		return "", nil, err
	}
	if o.PDFNome == nil {
		return "", nil, nil
	}
	return *o.PDFNome, o.PDFBlob, nil
}
