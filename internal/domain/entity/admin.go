package entity

import (
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Admin is either a university admin (ClubID nil) or a club admin owning
// exactly one club. The two kinds use separate login entry points.
type Admin struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string         `gorm:"not null;uniqueIndex" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
	ClubID       *string        `gorm:"type:uuid;index" json:"clubId,omitempty"`
	Role         string         `json:"role"`
	Permissions  pq.StringArray `gorm:"type:text[]" json:"permissions"`
	LastLogin    *time.Time     `json:"lastLogin,omitempty"`
	LastActive   *time.Time     `json:"lastActive,omitempty"`
}

// IsUniversityAdmin reports whether this account is university scoped.
func (a *Admin) IsUniversityAdmin() bool {
	return a.ClubID == nil
}

// OwnsClub reports whether this account is the club admin of the given club.
func (a *Admin) OwnsClub(clubID string) bool {
	return a.ClubID != nil && *a.ClubID == clubID
}

func (a *Admin) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

func (a *Admin) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plain)) == nil
}
