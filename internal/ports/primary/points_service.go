package primary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// PointsService defines the interface for the point ledger use cases.
//
// Awarding is deliberately decoupled from attendance marking: either can be
// called without the other, and the admin flow decides the order.
type PointsService interface {
	Award(ctx context.Context, actor dto.Identity, studentID string, points int, badges, skills []string, reason string) (*entity.StudentPoints, error)
	// AwardAttendance is the fixed +10 helper used after marking a student
	// present.
	AwardAttendance(ctx context.Context, actor dto.Identity, studentID string) (*entity.StudentPoints, error)
	// Summary computes the student's global total, 1-based rank and per-club
	// breakdown on demand; nothing is persisted.
	Summary(ctx context.Context, studentID string) (*dto.PointsSummary, error)
}
