package infra

import (
	"fmt"

	"github.com/jbenteu/lance-pro-control/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies any idempotent SQL patches that GORM
// cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
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
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates all tables and applies the patches
// AutoMigrate cannot express. Also used by integration tests.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Licitacao{},
		&model.Item{},
		&model.Cotacao{},
		&model.Fornecedor{},
		&model.Orgao{},
		&model.Usuario{},
		&model.Anexo{},
		&model.Relatorio{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL statements that GORM AutoMigrate cannot
// fully handle on its own.  Each statement uses IF NOT EXISTS semantics so
// re-running on an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// partial index used by the report worker to find pending rows
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'relatorios')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_relatorios_pendentes') THEN
		    CREATE INDEX idx_relatorios_pendentes
		        ON relatorios (created_at)
		        WHERE estado = 'pendente';
		  END IF;
		END $$`,
		// listing is ordered by updated_at DESC; keep it indexed
		`DO $$ BEGIN
		  IF EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'licitacoes')
		    AND NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_licitacoes_updated_at') THEN
		    CREATE INDEX idx_licitacoes_updated_at ON licitacoes (updated_at DESC);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
