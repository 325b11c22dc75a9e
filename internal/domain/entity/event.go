package entity

import (
	"time"
)

// Event is owned by exactly one club; ClubName is a denormalized display
// copy taken at creation time.
type Event struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Category    string    `gorm:"index" json:"category"`
	ClubID      string    `gorm:"not null;type:uuid;index" json:"clubId"`
	ClubName    string    `json:"clubName"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// StartsAt combines Date with the optional "15:04" Time field.
func (e *Event) StartsAt() time.Time {
	if t, err := time.Parse("15:04", e.Time); err == nil {
		return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), t.Hour(), t.Minute(), 0, 0, e.Date.Location())
	}
	return e.Date
}

// IsUpcoming reports whether the event starts after the given instant.
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.StartsAt().After(now)
}
