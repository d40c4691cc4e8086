package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	ProductName string          `json:"productName" validate:"required,min=2,max=120"`
	Amount      decimal.Decimal `json:"amount"      validate:"required"`
	TypeID      string          `json:"type"        validate:"required,uuid"`
	BrandID     string          `json:"brand"       validate:"required,uuid"`
	Code        string          `json:"code"`
	Description *string         `json:"description"`
	Discont     bool            `json:"discont"`
}

// UpdateProductRequest is an explicit patch: nil means "field not supplied,
// leave it alone". Only supplied fields are merged into the stored record.
type UpdateProductRequest struct {
	ProductName *string          `json:"productName" validate:"omitempty,min=2,max=120"`
	Amount      *decimal.Decimal `json:"amount"`
	TypeID      *string          `json:"type"        validate:"omitempty,uuid"`
	BrandID     *string          `json:"brand"       validate:"omitempty,uuid"`
	Code        *string          `json:"code"`
	Description *string          `json:"description"`
	Discont     *bool            `json:"discont"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ProductFilter carries the catalog query parameters. Limit is bound as a raw
// string so that junk values degrade to "no limit" instead of a bind error.
type ProductFilter struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Limit  string `form:"limit"`
}

// ParsedLimit returns the positive limit, or 0 when the parameter is absent,
// non-numeric, or non-positive (all of which mean "return everything").
func (f ProductFilter) ParsedLimit() int {
	n, err := strconv.Atoi(f.Limit)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// TypeRef is the populated type projection: only name and color are exposed.
type TypeRef struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// BrandRef is the populated brand projection: only name and the original flag.
type BrandRef struct {
	Name     string `json:"name"`
	Original bool   `json:"original"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"productName"`
	Amount      decimal.Decimal `json:"amount"`
	OldMRP      decimal.Decimal `json:"oldMRP"`
	Type        *TypeRef        `json:"type"`
	Brand       *BrandRef       `json:"brand"`
	Code        string          `json:"code"`
	Description *string         `json:"description"`
	Discont     bool            `json:"discont"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PriceResponse is the cached projection served by the price lookup endpoint.
type PriceResponse struct {
	ProductName string          `json:"productName"`
	Amount      decimal.Decimal `json:"amount"`
	OldMRP      decimal.Decimal `json:"oldMRP"`
	Discont     bool            `json:"discont"`
}

// PriceChange is one entry of the recent price change feed.
type PriceChange struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	OldAmount   decimal.Decimal `json:"oldAmount"`
	NewAmount   decimal.Decimal `json:"newAmount"`
	ChangedAt   time.Time       `json:"changedAt"`
}
