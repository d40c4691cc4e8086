package service

import (
	"context"
	"testing"

	"stockbook/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBrand(t *testing.T) {
	repo := newStubBrandRepo()
	svc := NewBrandService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateBrandRequest{
		Name:     "Sonalika",
		Logo:     dto.LogoRef{Name: "sonalika.png", URL: "https://cdn.example.com/sonalika.png"},
		Original: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sonalika", resp.Name)
	assert.Equal(t, "sonalika.png", resp.Logo.Name)
	assert.True(t, resp.Original)
}

func TestCreateBrandDuplicateIsSoft(t *testing.T) {
	repo := newStubBrandRepo()
	svc := NewBrandService(repo)

	_, err := svc.Create(context.Background(), dto.CreateBrandRequest{Name: "Sonalika"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateBrandRequest{Name: " sonalika "})
	assert.ErrorIs(t, err, ErrDuplicateBrand)
	assert.Len(t, repo.brands, 1)
}

func TestUpdateBrandKeepsUnsuppliedFields(t *testing.T) {
	repo := newStubBrandRepo()
	svc := NewBrandService(repo)

	created, err := svc.Create(context.Background(), dto.CreateBrandRequest{
		Name:     "Sonalika",
		Logo:     dto.LogoRef{Name: "sonalika.png", URL: "https://cdn.example.com/sonalika.png"},
		Original: true,
	})
	require.NoError(t, err)

	original := false
	resp, err := svc.Update(context.Background(), created.ID, dto.UpdateBrandRequest{Original: &original})
	require.NoError(t, err)
	assert.Equal(t, "Sonalika", resp.Name)
	assert.Equal(t, "sonalika.png", resp.Logo.Name)
	assert.False(t, resp.Original)
}

func TestUpdateBrandCaseOnlyRenameAllowed(t *testing.T) {
	repo := newStubBrandRepo()
	svc := NewBrandService(repo)

	created, err := svc.Create(context.Background(), dto.CreateBrandRequest{Name: "Sonalika"})
	require.NoError(t, err)

	// Renaming a brand to a different casing of itself is not a duplicate.
	name := "SONALIKA"
	resp, err := svc.Update(context.Background(), created.ID, dto.UpdateBrandRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "SONALIKA", resp.Name)
}
