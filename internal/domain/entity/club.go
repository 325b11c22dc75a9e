package entity

import (
	"time"
)

type Club struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
	Name        string    `gorm:"not null;unique" json:"name"`
	Description string    `json:"description"`
	Category    string    `gorm:"index" json:"category"`
	// MemberCount is a cached counter kept consistent with the number of
	// approved memberships. Mutated only inside the same transaction as the
	// membership state change; reconciled periodically against the source rows.
	MemberCount int    `gorm:"not null;default:0" json:"memberCount"`
	LogoURL     string `json:"logoUrl,omitempty"`
	CoverURL    string `json:"coverUrl,omitempty"`
}
