package model

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies products (tractor model, spare part family, …).
// Color is a display hint for the UI chips.
type Type struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name — GORM would otherwise pluralize to "types",
// which is what we want, but being explicit avoids surprises with reserved words.
func (Type) TableName() string { return "types" }
