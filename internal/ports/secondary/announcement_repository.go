package secondary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/entity"
)

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	Create(ctx context.Context, a *entity.Announcement) (*entity.Announcement, error)
	Get(ctx context.Context, id string) (*entity.Announcement, error)
	// GetAll returns announcements pinned-first, newest-first within each group.
	GetAll(ctx context.Context) ([]entity.Announcement, error)
	// GetForTargets returns announcements whose target is in the given set.
	GetForTargets(ctx context.Context, targets []string) ([]entity.Announcement, error)
	Update(ctx context.Context, a *entity.Announcement) (*entity.Announcement, error)
	Delete(ctx context.Context, id string) error
	// MarkRead records the per-student read marker; a second call for the
	// same pair is a no-op.
	MarkRead(ctx context.Context, announcementID, enrollment string) error
	// ReadSet returns the subset of the given announcement ids the student
	// has read.
	ReadSet(ctx context.Context, enrollment string, announcementIDs []string) (map[string]bool, error)
}
