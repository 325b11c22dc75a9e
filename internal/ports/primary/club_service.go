package primary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// ClubService defines the interface for club CRUD use cases
type ClubService interface {
	Create(ctx context.Context, actor dto.Identity, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetAll(ctx context.Context) ([]entity.Club, error)
	Update(ctx context.Context, actor dto.Identity, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, actor dto.Identity, id string) error
}
