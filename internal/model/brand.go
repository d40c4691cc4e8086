package model

import (
	"time"

	"github.com/google/uuid"
)

// Brand represents a product manufacturer. Name is unique with
// case-insensitive-trim semantics (enforced by a lower(name) index, see
// infra.NewDatabase). The logo is a plain name/url reference — upload
// mechanics live outside this service.
type Brand struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	LogoName  string
	LogoURL   string
	Original  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
