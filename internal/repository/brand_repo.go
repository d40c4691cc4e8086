package repository

import (
	"context"

	"stockbook/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrandRepository defines CRUD and name-matching operations for brands.
type BrandRepository interface {
	Create(ctx context.Context, b *model.Brand) error
	List(ctx context.Context) ([]model.Brand, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Brand, error)
	FindByName(ctx context.Context, name string) (*model.Brand, error)
	// IDsMatchingName returns ids of brands whose name contains search as a
	// case-insensitive substring. Feeds the cross-collection product filter.
	IDsMatchingName(ctx context.Context, search string) ([]uuid.UUID, error)
	Update(ctx context.Context, b *model.Brand) error
}

type brandRepository struct{ db *gorm.DB }

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, b *model.Brand) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *brandRepository) List(ctx context.Context) ([]model.Brand, error) {
	var list []model.Brand
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Brand, error) {
	var b model.Brand
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *brandRepository) FindByName(ctx context.Context, name string) (*model.Brand, error) {
	var b model.Brand
	err := r.db.WithContext(ctx).
		Where("lower(name) = lower(trim(?))", name).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *brandRepository) IDsMatchingName(ctx context.Context, search string) ([]uuid.UUID, error) {
	pred := Contains("name", search)
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Brand{}).
		Where(pred.Expr(), pred.Args()...).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *brandRepository) Update(ctx context.Context, b *model.Brand) error {
	return r.db.WithContext(ctx).Save(b).Error
}
