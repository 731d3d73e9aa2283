package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pedrodiniz00/sistema-obras/internal/infra"
	"github.com/pedrodiniz00/sistema-obras/internal/model"
)

// novoBanco opens a private in-memory SQLite database with the schema applied.
func novoBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func criarObra(t *testing.T, repo ObraRepository, nome string) *model.Obra {
	t.Helper()
	o := &model.Obra{Nome: nome, Status: model.ObraAtiva, AreaM2: 100, DataInicio: model.NewDate(2024, 1, 1)}
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}
