package entity

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Certificate is an admin-issued record embedded on the student profile,
// ordered by issue date.
type Certificate struct {
	Title      string    `json:"title"`
	Issuer     string    `json:"issuer"`
	IssuedDate time.Time `json:"issuedDate"`
	URL        string    `json:"url"`
}

type Student struct {
	ID                string `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Name              string                           `gorm:"not null" json:"name"`
	Email             string                           `gorm:"not null;uniqueIndex" json:"email"`
	EnrollmentNumber  string                           `gorm:"not null;uniqueIndex" json:"enrollmentNumber"`
	Branch            string                           `json:"branch"`
	PasswordHash      string                           `gorm:"not null" json:"-"`
	IsDisabled        bool                             `gorm:"not null;default:false" json:"isDisabled"`
	LastLogin         *time.Time                       `json:"lastLogin,omitempty"`
	ProfilePictureURL string                           `json:"profilePictureUrl,omitempty"`
	Certificates      datatypes.JSONSlice[Certificate] `json:"certificates"`
}

// SetPassword hashes and stores the given plaintext password.
func (s *Student) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (s *Student) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(plain)) == nil
}
