package secondary

import (
	"context"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// MembershipRepository defines the interface for club membership data access.
//
// The write operations are the atomicity boundary for the membership
// workflow: CreateIfNoActive refuses duplicates of an active pair in the same
// statement that inserts, and Decide couples the pending-only status guard
// with the member-count adjustment in one transaction.
type MembershipRepository interface {
	// CreateIfNoActive inserts the membership unless an active (pending or
	// approved) row already exists for the same (enrollment, club) pair, in
	// which case it returns the existing row and errs.ErrConflict.
	CreateIfNoActive(ctx context.Context, m *entity.ClubMembership) (*entity.ClubMembership, error)
	Get(ctx context.Context, id string) (*entity.ClubMembership, error)
	// Decide transitions a pending record to approved or rejected. On
	// approval the owning club's member count is incremented in the same
	// transaction. Returns errs.ErrConflict when the record is not pending.
	Decide(ctx context.Context, id string, target entity.MembershipStatus, at time.Time) (*entity.ClubMembership, error)
	// Delete removes the record outright; if it was approved the club's
	// member count is decremented as compensation.
	Delete(ctx context.Context, id string) error
	HasActive(ctx context.Context, enrollment, clubID string) (bool, error)
	ListByEnrollment(ctx context.Context, enrollment string) ([]entity.ClubMembership, error)
	ListByClub(ctx context.Context, clubID string) ([]entity.ClubMembership, error)
	ListApprovedClubIDs(ctx context.Context, enrollment string) ([]string, error)
	CountByStatus(ctx context.Context, status entity.MembershipStatus) (int64, error)
	ApprovedCountsByClub(ctx context.Context) (map[string]int64, error)
	// MonthlyNewCounts buckets new membership rows created since the given
	// instant by calendar month.
	MonthlyNewCounts(ctx context.Context, since time.Time) ([]dto.MonthCount, error)
}
