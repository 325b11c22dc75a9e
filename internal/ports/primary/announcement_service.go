package primary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// AnnouncementService defines the interface for announcement use cases
type AnnouncementService interface {
	Create(ctx context.Context, actor dto.Identity, title, content, target string) (*entity.Announcement, error)
	Update(ctx context.Context, actor dto.Identity, id string, title, content *string, pinned *bool) (*entity.Announcement, error)
	Delete(ctx context.Context, actor dto.Identity, id string) error
	GetAll(ctx context.Context) ([]entity.Announcement, error)
	// ListForStudent merges the per-student read flag into the announcements
	// visible to the student ("all" plus their approved clubs).
	ListForStudent(ctx context.Context, enrollment string) ([]dto.AnnouncementView, error)
	// MarkRead is idempotent; a repeat call reports success.
	MarkRead(ctx context.Context, enrollment, announcementID string) error
}
