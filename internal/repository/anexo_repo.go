package repository

import (
	"context"

	"github.com/jbenteu/lance-pro-control/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnexoRepository is the data access contract for attachment metadata.
type AnexoRepository interface {
	Create(ctx context.Context, a *model.Anexo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Anexo, error)
	// ListByLicitacao returns attachments newest-first.
	ListByLicitacao(ctx context.Context, licitacaoID uuid.UUID) ([]model.Anexo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type anexoRepo struct{ db *gorm.DB }

func NewAnexoRepository(db *gorm.DB) AnexoRepository { return &anexoRepo{db: db} }

func (r *anexoRepo) Create(ctx context.Context, a *model.Anexo) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *anexoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Anexo, error) {
	var a model.Anexo
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *anexoRepo) ListByLicitacao(ctx context.Context, licitacaoID uuid.UUID) ([]model.Anexo, error) {
	var anexos []model.Anexo
	err := r.db.WithContext(ctx).
		Where("licitacao_id = ?", licitacaoID).
		Order("created_at DESC").
		Find(&anexos).Error
	return anexos, err
}

func (r *anexoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Anexo{}, "id = ?", id).Error
}
