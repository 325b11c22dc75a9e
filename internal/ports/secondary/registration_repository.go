package secondary

import (
	"context"
	"time"

	"github.com/campushub/clubhub/internal/domain/entity"
)

// RegistrationRepository defines the interface for event registration data access
type RegistrationRepository interface {
	// Create inserts the registration; errs.ErrConflict when the
	// (enrollment, event) pair is already registered.
	Create(ctx context.Context, r *entity.EventRegistration) (*entity.EventRegistration, error)
	Get(ctx context.Context, id string) (*entity.EventRegistration, error)
	// MarkAttendance overwrites the attendance state; no history is kept.
	MarkAttendance(ctx context.Context, id string, status entity.AttendanceStatus, markedBy string, at time.Time) (*entity.EventRegistration, error)
	ListByEvent(ctx context.Context, eventID string) ([]entity.EventRegistration, error)
	ListByEnrollment(ctx context.Context, enrollment string) ([]entity.EventRegistration, error)
	Count(ctx context.Context) (int64, error)
	CountAttended(ctx context.Context) (int64, error)
}
