package secondary

import (
	"context"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// PointsRepository defines the interface for the per-club point ledger.
type PointsRepository interface {
	// Award upserts the (student, club) ledger row: the points accumulate
	// onto any existing balance, badges are unioned with both the supplied
	// set and the thresholds earned by the new balance, and skills are
	// unioned. The accumulate-then-rebadge sequence runs in one transaction.
	Award(ctx context.Context, studentID, clubID string, points int, badges, skills []string, reason string, at time.Time) (*entity.StudentPoints, error)
	ListByStudent(ctx context.Context, studentID string) ([]entity.StudentPoints, error)
	// TotalsByStudent returns every student's summed points, ordered
	// descending; rank is derived from it on demand.
	TotalsByStudent(ctx context.Context) ([]dto.StudentTotal, error)
}
