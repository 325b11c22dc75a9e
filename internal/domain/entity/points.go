package entity

import (
	"time"

	"github.com/lib/pq"
)

// Badge thresholds. Badges are a monotonic union: once earned they are kept
// even if a future API ever allowed points to drop below the threshold.
const (
	BadgeRegularAttendee = "Regular Attendee"
	BadgeActiveMember    = "Active Member"
	BadgeClubChampion    = "Club Champion"

	AttendanceAwardPoints = 10
)

var badgeThresholds = []struct {
	points int
	badge  string
}{
	{50, BadgeRegularAttendee},
	{100, BadgeActiveMember},
	{200, BadgeClubChampion},
}

// BadgesFor returns the badges earned at the given cumulative point total.
func BadgesFor(points int) []string {
	var badges []string
	for _, t := range badgeThresholds {
		if points >= t.points {
			badges = append(badges, t.badge)
		}
	}
	return badges
}

// MergeBadges unions earned badges into held ones, preserving held order.
func MergeBadges(held []string, earned []string) []string {
	seen := make(map[string]struct{}, len(held))
	merged := make([]string, 0, len(held)+len(earned))
	for _, b := range held {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		merged = append(merged, b)
	}
	for _, b := range earned {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		merged = append(merged, b)
	}
	return merged
}

// StudentPoints is the per-club point ledger: one row per (student, club)
// pair. Points only accumulate through the workflow; a student's global total
// is the sum across their rows.
type StudentPoints struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	StudentID string `gorm:"not null;type:uuid;uniqueIndex:idx_ledger_pair,priority:1" json:"studentId"`
	ClubID    string `gorm:"not null;type:uuid;uniqueIndex:idx_ledger_pair,priority:2" json:"clubId"`

	Points          int            `gorm:"not null;default:0" json:"points"`
	Badges          pq.StringArray `gorm:"type:text[]" json:"badges"`
	Skills          pq.StringArray `gorm:"type:text[]" json:"skills"`
	LastAwardReason string         `json:"lastAwardReason,omitempty"`
	LastUpdated     time.Time      `json:"lastUpdated"`
}
