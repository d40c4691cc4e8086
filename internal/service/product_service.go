package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"stockbook/internal/dto"
	"stockbook/internal/infra"
	"stockbook/internal/model"
	"stockbook/internal/repository"
	"stockbook/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProductService defines the business logic contract for the product catalog.
type ProductService interface {
	// List resolves the free-text search across product fields and the
	// type/brand name collections, applies the sort mode and optional limit,
	// and returns populated products.
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	products   repository.ProductRepository
	brands     repository.BrandRepository
	types      repository.TypeRepository
	rdb        *redis.Client
	dispatcher *worker.Dispatcher
}

func NewProductService(
	products repository.ProductRepository,
	brands repository.BrandRepository,
	types repository.TypeRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
) ProductService {
	return &productService{
		products:   products,
		brands:     brands,
		types:      types,
		rdb:        rdb,
		dispatcher: dispatcher,
	}
}

// mapProduct converts a model to a DTO response.
func mapProduct(p model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:          p.ID.String(),
		ProductName: p.ProductName,
		Amount:      p.Amount,
		OldMRP:      p.OldMRP,
		Code:        p.Code,
		Description: p.Description,
		Discont:     p.Discont,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Type != nil {
		resp.Type = &dto.TypeRef{Name: p.Type.Name, Color: p.Type.Color}
	}
	if p.Brand != nil {
		resp.Brand = &dto.BrandRef{Name: p.Brand.Name, Original: p.Brand.Original}
	}
	return resp
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	// A search that trims to empty behaves exactly like no search: match all.
	search := strings.TrimSpace(filter.Search)

	pred := repository.MatchAll()
	if search != "" {
		typeIDs, err := s.types.IDsMatchingName(ctx, search)
		if err != nil {
			return nil, err
		}
		brandIDs, err := s.brands.IDsMatchingName(ctx, search)
		if err != nil {
			return nil, err
		}
		// A product matches on any of the four branches — a type or brand
		// name hit includes it even with no textual match of its own.
		pred = repository.AnyOf(
			repository.Contains("product_name", search),
			repository.Contains("description", search),
			repository.IDIn("type_id", typeIDs),
			repository.IDIn("brand_id", brandIDs),
		)
	}

	products, err := s.products.Search(ctx, pred, repository.ResolveSort(filter.Sort), filter.ParsedLimit())
	if err != nil {
		return nil, err
	}

	result := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := s.products.FindByName(ctx, req.ProductName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateProduct
	}

	typeID, err := s.resolveTypeID(ctx, req.TypeID)
	if err != nil {
		return nil, err
	}
	brandID, err := s.resolveBrandID(ctx, req.BrandID)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		ProductName: strings.TrimSpace(req.ProductName),
		Amount:      req.Amount,
		TypeID:      typeID,
		BrandID:     brandID,
		Code:        req.Code,
		Description: req.Description,
		Discont:     req.Discont,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}

	created, err := s.products.FindPopulatedByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := mapProduct(*created)
	return &resp, nil
}

// Update merges the patch onto the stored record and writes it back as a full
// replace-by-id. When the patch changes amount, the pre-update amount is
// preserved in oldMRP — the only path that ever writes that field.
//
// Load-compare-save is not atomic against concurrent updates of the same
// product; two racing amount changes can compute oldMRP from a stale read.
// The row write itself is atomic, so no torn record can result.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	current, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	priceChanged := false
	oldAmount := current.Amount
	if req.Amount != nil && !req.Amount.Equal(current.Amount) {
		current.OldMRP = current.Amount
		current.Amount = *req.Amount
		priceChanged = true
	}

	if req.ProductName != nil {
		current.ProductName = strings.TrimSpace(*req.ProductName)
	}
	if req.TypeID != nil {
		typeID, err := s.resolveTypeID(ctx, *req.TypeID)
		if err != nil {
			return nil, err
		}
		current.TypeID = typeID
	}
	if req.BrandID != nil {
		brandID, err := s.resolveBrandID(ctx, *req.BrandID)
		if err != nil {
			return nil, err
		}
		current.BrandID = brandID
	}
	if req.Code != nil {
		current.Code = *req.Code
	}
	if req.Description != nil {
		current.Description = req.Description
	}
	if req.Discont != nil {
		current.Discont = *req.Discont
	}

	rows, err := s.products.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Row vanished between load and write (concurrent delete).
		return nil, ErrProductNotFound
	}

	s.invalidatePriceCache(ctx, id)
	if priceChanged && s.dispatcher != nil {
		change := dto.PriceChange{
			ProductID:   id.String(),
			ProductName: current.ProductName,
			OldAmount:   oldAmount,
			NewAmount:   current.Amount,
			ChangedAt:   time.Now().UTC(),
		}
		if err := s.dispatcher.EnqueuePriceChange(ctx, change); err != nil {
			log.Warn().Err(err).Str("product_id", id.String()).Msg("failed to enqueue price change event")
		}
	}

	updated, err := s.products.FindPopulatedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	resp := mapProduct(*updated)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	s.invalidatePriceCache(ctx, id)
	return nil
}

// invalidatePriceCache drops the cached price projection. Best effort — a
// cache miss on the next lookup repopulates it.
func (s *productService) invalidatePriceCache(ctx context.Context, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, infra.PriceCacheKey(id.String())).Err(); err != nil {
		log.Warn().Err(err).Str("product_id", id.String()).Msg("price cache invalidation failed")
	}
}

func (s *productService) resolveTypeID(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrTypeNotFound
	}
	if _, err := s.types.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrTypeNotFound
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (s *productService) resolveBrandID(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrBrandNotFound
	}
	if _, err := s.brands.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrBrandNotFound
		}
		return uuid.Nil, err
	}
	return id, nil
}
