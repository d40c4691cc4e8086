package service

import (
	"context"
	"errors"
	"strings"

	"stockbook/internal/dto"
	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrandService defines business operations for brands.
type BrandService interface {
	Create(ctx context.Context, req dto.CreateBrandRequest) (dto.BrandResponse, error)
	List(ctx context.Context) ([]dto.BrandResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBrandRequest) (dto.BrandResponse, error)
}

type brandService struct {
	repo repository.BrandRepository
}

func NewBrandService(repo repository.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

func mapBrand(b model.Brand) dto.BrandResponse {
	return dto.BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Logo:      dto.LogoRef{Name: b.LogoName, URL: b.LogoURL},
		Original:  b.Original,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (s *brandService) Create(ctx context.Context, req dto.CreateBrandRequest) (dto.BrandResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.BrandResponse{}, err
	}
	if existing != nil {
		return dto.BrandResponse{}, ErrDuplicateBrand
	}

	b := &model.Brand{
		Name:     strings.TrimSpace(req.Name),
		LogoName: req.Logo.Name,
		LogoURL:  req.Logo.URL,
		Original: req.Original,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return dto.BrandResponse{}, err
	}
	return mapBrand(*b), nil
}

func (s *brandService) List(ctx context.Context) ([]dto.BrandResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		result = append(result, mapBrand(b))
	}
	return result, nil
}

func (s *brandService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBrandRequest) (dto.BrandResponse, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BrandResponse{}, ErrBrandNotFound
		}
		return dto.BrandResponse{}, err
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		// Check uniqueness if the name is changing
		if !strings.EqualFold(trimmed, b.Name) {
			existing, err := s.repo.FindByName(ctx, trimmed)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.BrandResponse{}, err
			}
			if existing != nil && existing.ID != id {
				return dto.BrandResponse{}, ErrDuplicateBrand
			}
		}
		b.Name = trimmed
	}
	if req.Logo != nil {
		b.LogoName = req.Logo.Name
		b.LogoURL = req.Logo.URL
	}
	if req.Original != nil {
		b.Original = *req.Original
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return dto.BrandResponse{}, err
	}
	return mapBrand(*b), nil
}
