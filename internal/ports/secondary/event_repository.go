package secondary

import (
	"context"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetAll(ctx context.Context) ([]entity.Event, error)
	GetByClubID(ctx context.Context, clubID string) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountUpcoming(ctx context.Context, now time.Time) (int64, error)
	CountByCategory(ctx context.Context) ([]dto.CategoryCount, error)
	// GetStartingBetween returns events whose date falls in [from, to),
	// used by the reminder scheduler.
	GetStartingBetween(ctx context.Context, from, to time.Time) ([]entity.Event, error)
}
