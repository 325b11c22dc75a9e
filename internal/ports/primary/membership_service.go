package primary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// MembershipService defines the interface for the membership workflow
type MembershipService interface {
	// Request creates a pending membership for the student; errs.ErrConflict
	// when an active one already exists for the pair.
	Request(ctx context.Context, studentID, clubID, reason string) (*entity.ClubMembership, error)
	// EnsureForEvent creates the automatic pending membership that backs an
	// event registration. Returns (nil, nil) when an active membership
	// already covers the event's club.
	EnsureForEvent(ctx context.Context, student *entity.Student, event *entity.Event) (*entity.ClubMembership, error)
	// Decide approves or rejects a pending request on behalf of the owning
	// club's admin.
	Decide(ctx context.Context, actor dto.Identity, membershipID string, target entity.MembershipStatus) (*entity.ClubMembership, error)
	Delete(ctx context.Context, actor dto.Identity, membershipID string) error
	ListForStudent(ctx context.Context, enrollment string) ([]entity.ClubMembership, error)
	ListForClub(ctx context.Context, actor dto.Identity) ([]entity.ClubMembership, error)
}
