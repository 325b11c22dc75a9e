package entity

import (
	"time"
)

// AnnouncementTargetAll fans an announcement out to every student; any other
// target value is a club id restricting it to that club's members.
const AnnouncementTargetAll = "all"

type Announcement struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"-"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"not null" json:"content"`
	AuthorID   string    `gorm:"not null;type:uuid" json:"authorId"`
	AuthorName string    `json:"authorName"`
	Target     string    `gorm:"not null;default:all;index" json:"target"`
	Pinned     bool      `gorm:"not null;default:false" json:"pinned"`
}

// TargetsClub reports whether the announcement is scoped to the given club.
func (a *Announcement) TargetsClub(clubID string) bool {
	return a.Target == clubID
}

// AnnouncementRead is the per-student read marker. The unique index makes
// mark-read idempotent at the store level.
type AnnouncementRead struct {
	ID               string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt        time.Time `json:"createdAt"`
	AnnouncementID   string    `gorm:"not null;type:uuid;uniqueIndex:idx_read_pair,priority:1" json:"announcementId"`
	EnrollmentNumber string    `gorm:"not null;uniqueIndex:idx_read_pair,priority:2" json:"enrollmentNumber"`
}
