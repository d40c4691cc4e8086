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

// TypeService defines business operations for product types.
type TypeService interface {
	Create(ctx context.Context, req dto.CreateTypeRequest) (dto.TypeResponse, error)
	List(ctx context.Context) ([]dto.TypeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTypeRequest) (dto.TypeResponse, error)
}

type typeService struct {
	repo repository.TypeRepository
}

func NewTypeService(repo repository.TypeRepository) TypeService {
	return &typeService{repo: repo}
}

func mapType(t model.Type) dto.TypeResponse {
	return dto.TypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (s *typeService) Create(ctx context.Context, req dto.CreateTypeRequest) (dto.TypeResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.TypeResponse{}, err
	}
	if existing != nil {
		return dto.TypeResponse{}, ErrDuplicateType
	}

	t := &model.Type{
		Name:  strings.TrimSpace(req.Name),
		Color: req.Color,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return dto.TypeResponse{}, err
	}
	return mapType(*t), nil
}

func (s *typeService) List(ctx context.Context) ([]dto.TypeResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TypeResponse, 0, len(list))
	for _, t := range list {
		result = append(result, mapType(t))
	}
	return result, nil
}

func (s *typeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTypeRequest) (dto.TypeResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TypeResponse{}, ErrTypeNotFound
		}
		return dto.TypeResponse{}, err
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if !strings.EqualFold(trimmed, t.Name) {
			existing, err := s.repo.FindByName(ctx, trimmed)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.TypeResponse{}, err
			}
			if existing != nil && existing.ID != id {
				return dto.TypeResponse{}, ErrDuplicateType
			}
		}
		t.Name = trimmed
	}
	if req.Color != nil {
		t.Color = *req.Color
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return dto.TypeResponse{}, err
	}
	return mapType(*t), nil
}
