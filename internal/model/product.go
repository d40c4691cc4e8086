package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Every product references exactly one Type and
// one Brand; the references are non-owning — deleting a product never touches
// the referenced records.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductName string    `gorm:"index;not null"`
	// Amount is the current price. OldMRP holds the price as it was
	// immediately before the last amount change — a one-step history,
	// only ever written by the update path.
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	OldMRP      decimal.Decimal `gorm:"type:decimal(10,2)"`
	TypeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	BrandID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Code        string
	Description *string
	Discont     bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Type  *Type  `gorm:"foreignKey:TypeID"`
	Brand *Brand `gorm:"foreignKey:BrandID"`
}
