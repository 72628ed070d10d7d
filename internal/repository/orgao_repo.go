package repository

import (
	"context"

	"github.com/jbenteu/lance-pro-control/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgaoRepository is the data access contract for the government body directory.
type OrgaoRepository interface {
	Create(ctx context.Context, o *model.Orgao) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Orgao, error)
	List(ctx context.Context) ([]model.Orgao, error)
	Update(ctx context.Context, o *model.Orgao) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type orgaoRepo struct{ db *gorm.DB }

func NewOrgaoRepository(db *gorm.DB) OrgaoRepository { return &orgaoRepo{db: db} }

func (r *orgaoRepo) Create(ctx context.Context, o *model.Orgao) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orgaoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Orgao, error) {
	var o model.Orgao
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	return &o, err
}

func (r *orgaoRepo) List(ctx context.Context) ([]model.Orgao, error) {
	var orgaos []model.Orgao
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&orgaos).Error
	return orgaos, err
}

func (r *orgaoRepo) Update(ctx context.Context, o *model.Orgao) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *orgaoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Orgao{}, "id = ?", id).Error
}

func (r *orgaoRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Orgao{}).Count(&total).Error
	return total, err
}
