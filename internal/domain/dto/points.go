package dto

import "time"

// ClubPoints is one per-club slice of a student's ledger, joined with the
// club name for display.
type ClubPoints struct {
	ClubID          string    `json:"clubId"`
	ClubName        string    `json:"clubName"`
	Points          int       `json:"points"`
	Badges          []string  `json:"badges"`
	Skills          []string  `json:"skills"`
	LastAwardReason string    `json:"lastAwardReason,omitempty"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// StudentTotal is a student's summed points across all ledger rows.
type StudentTotal struct {
	StudentID string `json:"studentId"`
	Total     int    `json:"total"`
}

// PointsSummary is the student-facing view: global total, on-demand rank and
// the union of badges across clubs.
type PointsSummary struct {
	StudentID   string       `json:"studentId"`
	TotalPoints int          `json:"totalPoints"`
	Rank        int          `json:"rank"`
	Badges      []string     `json:"badges"`
	Clubs       []ClubPoints `json:"clubs"`
}
