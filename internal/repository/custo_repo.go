package repository

import (
	"context"

	"github.com/pedrodiniz00/sistema-obras/internal/model"

	"gorm.io/gorm"
)

// CustoRepository is append-only: the ledger has no update or delete path.
type CustoRepository interface {
	Create(ctx context.Context, c *model.Custo) error
	ListByObra(ctx context.Context, obra string) ([]model.Custo, error)
}

type custoRepo struct{ db *gorm.DB }

func NewCustoRepository(db *gorm.DB) CustoRepository { return &custoRepo{db: db} }

func (r *custoRepo) Create(ctx context.Context, c *model.Custo) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// ListByObra returns the ledger newest first.
func (r *custoRepo) ListByObra(ctx context.Context, obra string) ([]model.Custo, error) {
	var list []model.Custo
	err := r.db.WithContext(ctx).
		Where("obra_nome = ?", obra).
		Order("data desc, created_at desc").
		Find(&list).Error
	return list, err
}
