package repository

import (
	"context"

	"github.com/jbenteu/lance-pro-control/internal/dto"
	"github.com/jbenteu/lance-pro-control/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LicitacaoRepository is the data access contract for the licitação aggregate.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type LicitacaoRepository interface {
	Create(ctx context.Context, l *model.Licitacao) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Licitacao, error)
	List(ctx context.Context, filter dto.LicitacaoFilter) ([]model.Licitacao, int64, error)
	// Save persists the whole aggregate, itens and cotações included.
	Save(ctx context.Context, l *model.Licitacao) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Child-row removal cannot be expressed by Save (GORM upserts
	// associations, it does not prune orphans), so the delete and the
	// aggregate save run inside one transaction: either both land or
	// neither does.
	RemoveItem(ctx context.Context, l *model.Licitacao, itemID uuid.UUID) error
	RemoveCotacao(ctx context.Context, l *model.Licitacao, cotacaoID uuid.UUID) error

	CountByStatus(ctx context.Context) (map[string]int64, error)
	Count(ctx context.Context) (int64, error)
}

type licitacaoRepo struct{ db *gorm.DB }

func NewLicitacaoRepository(db *gorm.DB) LicitacaoRepository { return &licitacaoRepo{db: db} }

func (r *licitacaoRepo) Create(ctx context.Context, l *model.Licitacao) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *licitacaoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Licitacao, error) {
	var l model.Licitacao
	err := r.db.WithContext(ctx).
		Preload("Itens.Cotacoes").
		Preload("Itens").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *licitacaoRepo) List(ctx context.Context, filter dto.LicitacaoFilter) ([]model.Licitacao, int64, error) {
	var licitacoes []model.Licitacao
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Licitacao{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Modalidade != "" {
		q = q.Where("modalidade = ?", filter.Modalidade)
	}
	if filter.OrgaoID != "" {
		q = q.Where("orgao_orgao_id = ?", filter.OrgaoID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Itens.Cotacoes").Preload("Itens").
		Order("updated_at DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&licitacoes).Error
	return licitacoes, total, err
}

func (r *licitacaoRepo) Save(ctx context.Context, l *model.Licitacao) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(l).Error
}

func (r *licitacaoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Itens/cotações fall with the parent via ON DELETE CASCADE; Select
	// makes GORM issue the association deletes even without the FK in place.
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.Licitacao{ID: id}).Error
}

func (r *licitacaoRepo) RemoveItem(ctx context.Context, l *model.Licitacao, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select(clause.Associations).Delete(&model.Item{ID: itemID}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(l).Error
	})
}

func (r *licitacaoRepo) RemoveCotacao(ctx context.Context, l *model.Licitacao, cotacaoID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Cotacao{ID: cotacaoID}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(l).Error
	})
}

func (r *licitacaoRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Licitacao{}).
		Select("status, count(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Total
	}
	return counts, nil
}

func (r *licitacaoRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Licitacao{}).Count(&total).Error
	return total, err
}
