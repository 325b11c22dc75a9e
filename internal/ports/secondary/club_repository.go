package secondary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// ClubRepository defines the interface for club data access
type ClubRepository interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetAll(ctx context.Context) ([]entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]dto.CategoryCount, error)
	TopByMemberCount(ctx context.Context, limit int) ([]dto.ClubRank, error)
	SetMemberCount(ctx context.Context, id string, count int) error
}
