package primary

import (
	"bytes"
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// RegistrationService defines the interface for event registration and
// attendance use cases
type RegistrationService interface {
	// Register creates the (student, event) registration and, when the
	// student has no active membership with the event's club, a pending
	// membership request as a side effect.
	Register(ctx context.Context, studentID, eventID string) (*entity.EventRegistration, error)
	// MarkAttendance overwrites the attendance state of a registration.
	// Either an explicit status or the attended boolean synonym is accepted.
	MarkAttendance(ctx context.Context, actor dto.Identity, registrationID string, status *entity.AttendanceStatus, attended *bool) (*entity.EventRegistration, error)
	ListForEvent(ctx context.Context, actor dto.Identity, eventID string) ([]entity.EventRegistration, error)
	ListForStudent(ctx context.Context, enrollment string) ([]entity.EventRegistration, error)
	// ExportForEvent renders the event's registration sheet as an xlsx file.
	ExportForEvent(ctx context.Context, actor dto.Identity, eventID string) (*bytes.Buffer, string, error)
}
