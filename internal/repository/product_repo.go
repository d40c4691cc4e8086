package repository

import (
	"context"

	"stockbook/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	// FindPopulatedByID loads the product with its Type and Brand projections
	// resolved, same shape the search endpoint returns.
	FindPopulatedByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	// Search applies the predicate, orders by the resolved clause, and
	// truncates to limit when limit > 0. Type/Brand are populated with the
	// known-safe projections.
	Search(ctx context.Context, pred Predicate, order string, limit int) ([]model.Product, error)
	// Update writes the full row back by primary key and reports how many
	// rows were affected, so a race with a concurrent delete surfaces as 0.
	Update(ctx context.Context, p *model.Product) (int64, error)
	// Delete removes the row and reports how many rows were affected so the
	// caller can distinguish "gone" from "was never there".
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

// typeProjection and brandProjection restrict populated references to the
// fields the API exposes. The id column must ride along for gorm to join the
// association back onto the parent rows.
func typeProjection(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "color") }

func brandProjection(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "original") }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindPopulatedByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Type", typeProjection).
		Preload("Brand", brandProjection).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("lower(product_name) = lower(trim(?))", name).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Search(ctx context.Context, pred Predicate, order string, limit int) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{})
	if !pred.IsEmpty() {
		q = q.Where(pred.Expr(), pred.Args()...)
	}
	q = q.Preload("Type", typeProjection).
		Preload("Brand", brandProjection).
		Order(order)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var products []model.Product
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) (int64, error) {
	// Save is a full replace-by-id; associations are never written through it.
	res := r.db.WithContext(ctx).Omit("Type", "Brand").Save(p)
	return res.RowsAffected, res.Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
