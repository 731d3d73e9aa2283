package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cost classes.
const (
	ClasseMateriais    = "Materiais"
	ClasseMaoDeObra    = "Mão de Obra"
	ClasseEquipamentos = "Equipamentos"
)

// Custo is one line of an obra's cost ledger. Entries are append-only:
// Total is fixed at insert time and never re-derived.
type Custo struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ObraNome      string          `gorm:"not null;index"`
	Data          Date            `gorm:"type:varchar(10);not null"`
	Item          string          `gorm:"not null"`
	Quantidade    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unidade       string          `gorm:"type:varchar(10);not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Classe        string          `gorm:"type:varchar(20);not null"`
	Etapa         string          `gorm:"not null;default:'Geral'"`
	CreatedAt     time.Time
}

func (Custo) TableName() string { return "custos" }

func (c *Custo) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
