package secondary

import (
	"context"
	"time"

	"github.com/campushub/clubhub/internal/domain/entity"
)

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) (*entity.Admin, error)
	Get(ctx context.Context, id string) (*entity.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}
