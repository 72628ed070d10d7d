package repository

import (
	"context"

	"github.com/jbenteu/lance-pro-control/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelatorioRepository tracks generated quote-comparison reports.
type RelatorioRepository interface {
	Create(ctx context.Context, rel *model.Relatorio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Relatorio, error)
	// FindLatestByLicitacao returns the most recently requested report.
	FindLatestByLicitacao(ctx context.Context, licitacaoID uuid.UUID) (*model.Relatorio, error)
	Update(ctx context.Context, rel *model.Relatorio) error
}

type relatorioRepo struct{ db *gorm.DB }

func NewRelatorioRepository(db *gorm.DB) RelatorioRepository { return &relatorioRepo{db: db} }

func (r *relatorioRepo) Create(ctx context.Context, rel *model.Relatorio) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *relatorioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Relatorio, error) {
	var rel model.Relatorio
	err := r.db.WithContext(ctx).First(&rel, "id = ?", id).Error
	return &rel, err
}

func (r *relatorioRepo) FindLatestByLicitacao(ctx context.Context, licitacaoID uuid.UUID) (*model.Relatorio, error) {
	var rel model.Relatorio
	err := r.db.WithContext(ctx).
		Where("licitacao_id = ?", licitacaoID).
		Order("created_at DESC").
		First(&rel).Error
	return &rel, err
}

func (r *relatorioRepo) Update(ctx context.Context, rel *model.Relatorio) error {
	return r.db.WithContext(ctx).Save(rel).Error
}
