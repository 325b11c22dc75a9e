package primary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// AuthService defines the interface for identity and session use cases.
//
// University and club admin logins are separate entry points: each rejects
// the other kind of account. All successful logins stamp lastLogin and issue
// an opaque session token.
type AuthService interface {
	StudentSignup(ctx context.Context, student *entity.Student, password string) (*entity.Student, error)
	StudentLogin(ctx context.Context, email, password string) (string, *entity.Student, error)
	UniversityLogin(ctx context.Context, username, password string) (string, *entity.Admin, error)
	ClubLogin(ctx context.Context, username, password string) (string, *entity.Admin, error)
	Logout(ctx context.Context, token string) error
	// Resolve maps a session token to an identity; errs.ErrUnauthenticated
	// when the token is missing, expired or unknown.
	Resolve(ctx context.Context, token string) (dto.Identity, error)
}
