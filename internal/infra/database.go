package infra

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pedrodiniz00/sistema-obras/internal/model"
)

// NewDatabase opens the relational store. A postgres:// (or postgresql://)
// DSN selects PostgreSQL; anything else is treated as a SQLite file path.
// The schema is migrated before returning.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isPostgres(dsn) {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
	} else {
		// SQLite allows a single writer; serialize through one connection.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func dialector(dsn string) gorm.Dialector {
	if isPostgres(dsn) {
		return postgres.Open(dsn)
	}
	return sqlite.Open(sqliteDSN(dsn))
}

// sqliteDSN enables foreign-key enforcement and a busy timeout on file DSNs.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn
	}
	return dsn + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// RunMigrations creates / updates the tables and then applies the idempotent
// index patches AutoMigrate does not express.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Obra{},
		&model.Etapa{},
		&model.Custo{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs DDL that is valid on both SQLite and PostgreSQL and
// safe to re-run.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// read path of the schedule: WHERE obra_nome = ? ORDER BY data_inicio, data_fim
		`CREATE INDEX IF NOT EXISTS idx_cronograma_obra_datas ON cronograma (obra_nome, data_inicio, data_fim)`,
		// ledger listing: WHERE obra_nome = ? ORDER BY data DESC
		`CREATE INDEX IF NOT EXISTS idx_custos_obra_data ON custos (obra_nome, data)`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
