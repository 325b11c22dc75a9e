package primary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// EventService defines the interface for event use cases
type EventService interface {
	Create(ctx context.Context, actor dto.Identity, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetAll(ctx context.Context) ([]entity.Event, error)
	GetByClubID(ctx context.Context, clubID string) ([]entity.Event, error)
	Update(ctx context.Context, actor dto.Identity, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, actor dto.Identity, id string) error
	// Calendar renders the event as an iCalendar document.
	Calendar(ctx context.Context, id string) (string, error)
	// CheckInQR renders the event's check-in link as a PNG QR code.
	CheckInQR(ctx context.Context, id string) ([]byte, error)
}
