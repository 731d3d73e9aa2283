package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Obra status values. ATIVA is the default on creation.
const (
	ObraAtiva     = "ATIVA"
	ObraPausada   = "PAUSADA"
	ObraConcluida = "CONCLUIDA"
)

// Obra is a tracked construction job. Nome is its business key: etapas and
// custos point at it by name, not by ID.
type Obra struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nome       string    `gorm:"uniqueIndex;not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'ATIVA'"`
	AreaM2     float64   `gorm:"not null;default:0"`
	DataInicio Date      `gorm:"type:varchar(10)"`
	// Attached project document; a new upload overwrites the previous one.
	PDFNome   *string
	PDFBlob   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Obra) TableName() string { return "obras" }

// BeforeCreate assigns the ID client-side so the schema works on SQLite too.
func (o *Obra) BeforeCreate(_ *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
