package entity

import (
	"time"
)

// Achievement is club-scoped showcase content with no workflow coupling.
type Achievement struct {
	ID              string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
	ClubID          string    `gorm:"not null;type:uuid;index" json:"clubId"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	AchievementDate time.Time `json:"achievementDate"`
	Category        string    `json:"category"`
}

// ClubLeadership is a club-scoped role assignment shown on the club page.
type ClubLeadership struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	ClubID    string    `gorm:"not null;type:uuid;index" json:"clubId"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `gorm:"not null" json:"role"`
}
