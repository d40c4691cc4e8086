package dto

import (
	"time"

	"github.com/google/uuid"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type LogoRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type CreateBrandRequest struct {
	Name     string  `json:"name"     validate:"required,min=1,max=100"`
	Logo     LogoRef `json:"logo"`
	Original bool    `json:"original"`
}

type UpdateBrandRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,min=1,max=100"`
	Logo     *LogoRef `json:"logo"`
	Original *bool    `json:"original"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type BrandResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Logo      LogoRef   `json:"logo"`
	Original  bool      `json:"original"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
