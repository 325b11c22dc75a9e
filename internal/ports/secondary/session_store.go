package secondary

import (
	"context"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
)

// SessionStore is the server-side session map: opaque token -> identity with
// expiry. Backed by redis in production and by memory in tests.
type SessionStore interface {
	Set(ctx context.Context, token string, identity dto.Identity, ttl time.Duration) error
	// Get resolves a token; errs.ErrUnauthenticated when missing or expired.
	Get(ctx context.Context, token string) (dto.Identity, error)
	Delete(ctx context.Context, token string) error
}
