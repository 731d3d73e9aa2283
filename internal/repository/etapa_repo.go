package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pedrodiniz00/sistema-obras/internal/model"
)

// EtapaRepository stores schedule stages. ListByObra returns them ordered by
// (data_inicio, data_fim); ISO text dates make that order chronological.
type EtapaRepository interface {
	Create(ctx context.Context, e *model.Etapa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Etapa, error)
	ListByObra(ctx context.Context, obra string) ([]model.Etapa, error)
	SubstituirCronograma(ctx context.Context, obra string, etapas []model.Etapa) error
	UpdateDatas(ctx context.Context, id uuid.UUID, inicio, fim model.Date, dias int) error
	UpdatePorcentagem(ctx context.Context, id uuid.UUID, pct int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type etapaRepo struct{ db *gorm.DB }

func NewEtapaRepository(db *gorm.DB) EtapaRepository { return &etapaRepo{db: db} }

func (r *etapaRepo) Create(ctx context.Context, e *model.Etapa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *etapaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Etapa, error) {
	var e model.Etapa
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *etapaRepo) ListByObra(ctx context.Context, obra string) ([]model.Etapa, error) {
	var list []model.Etapa
	err := r.db.WithContext(ctx).
		Where("obra_nome = ?", obra).
		Order("data_inicio asc, data_fim asc").
		Find(&list).Error
	return list, err
}

// SubstituirCronograma deletes every stage of the obra and inserts etapas in
// a single transaction: the obra ends up with either the old plan or the new.
func (r *etapaRepo) SubstituirCronograma(ctx context.Context, obra string, etapas []model.Etapa) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("obra_nome = ?", obra).Delete(&model.Etapa{}).Error; err != nil {
			return err
		}
		if len(etapas) == 0 {
			return nil
		}
		for i := range etapas {
			etapas[i].ObraNome = obra
		}
		return tx.Create(&etapas).Error
	})
}

// UpdateDatas writes start, end and duration in one statement.
func (r *etapaRepo) UpdateDatas(ctx context.Context, id uuid.UUID, inicio, fim model.Date, dias int) error {
	res := r.db.WithContext(ctx).Model(&model.Etapa{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"data_inicio":    inicio,
			"data_fim":       fim,
			"dias_estimados": dias,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *etapaRepo) UpdatePorcentagem(ctx context.Context, id uuid.UUID, pct int) error {
	res := r.db.WithContext(ctx).Model(&model.Etapa{}).Where("id = ?", id).Update("porcentagem", pct)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *etapaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Etapa{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
