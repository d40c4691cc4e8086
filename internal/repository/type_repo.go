package repository

import (
	"context"

	"stockbook/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TypeRepository defines CRUD and name-matching operations for product types.
type TypeRepository interface {
	Create(ctx context.Context, t *model.Type) error
	List(ctx context.Context) ([]model.Type, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Type, error)
	FindByName(ctx context.Context, name string) (*model.Type, error)
	IDsMatchingName(ctx context.Context, search string) ([]uuid.UUID, error)
	Update(ctx context.Context, t *model.Type) error
}

type typeRepository struct{ db *gorm.DB }

func NewTypeRepository(db *gorm.DB) TypeRepository {
	return &typeRepository{db: db}
}

func (r *typeRepository) Create(ctx context.Context, t *model.Type) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *typeRepository) List(ctx context.Context) ([]model.Type, error) {
	var list []model.Type
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *typeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Type, error) {
	var t model.Type
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *typeRepository) FindByName(ctx context.Context, name string) (*model.Type, error) {
	var t model.Type
	err := r.db.WithContext(ctx).
		Where("lower(name) = lower(trim(?))", name).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *typeRepository) IDsMatchingName(ctx context.Context, search string) ([]uuid.UUID, error) {
	pred := Contains("name", search)
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Type{}).
		Where(pred.Expr(), pred.Args()...).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *typeRepository) Update(ctx context.Context, t *model.Type) error {
	return r.db.WithContext(ctx).Save(t).Error
}
