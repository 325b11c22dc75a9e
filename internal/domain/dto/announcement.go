package dto

import (
	"github.com/campushub/clubhub/internal/domain/entity"
)

// AnnouncementView is an announcement merged with the requesting student's
// read marker. The flag is looked up per request, never denormalized onto
// the announcement row.
type AnnouncementView struct {
	entity.Announcement
	IsRead bool `json:"isRead"`
}
