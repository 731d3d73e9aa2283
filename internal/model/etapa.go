package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Etapa is one scheduled phase of an obra.
// DiasEstimados is derived: always DataFim - DataInicio in days.
type Etapa struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ObraNome      string    `gorm:"not null;index"`
	Nome          string    `gorm:"not null"`
	DiasEstimados int       `gorm:"not null;default:0"`
	DataInicio    Date      `gorm:"type:varchar(10);not null;index"`
	DataFim       Date      `gorm:"type:varchar(10);not null"`
	Porcentagem   int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Etapa) TableName() string { return "cronograma" }

func (e *Etapa) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
