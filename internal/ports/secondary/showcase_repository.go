package secondary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/entity"
)

// AchievementRepository defines the interface for club achievement data access
type AchievementRepository interface {
	Create(ctx context.Context, a *entity.Achievement) (*entity.Achievement, error)
	Get(ctx context.Context, id string) (*entity.Achievement, error)
	ListByClub(ctx context.Context, clubID string) ([]entity.Achievement, error)
	Update(ctx context.Context, a *entity.Achievement) (*entity.Achievement, error)
	Delete(ctx context.Context, id string) error
}

// LeadershipRepository defines the interface for club leadership data access
type LeadershipRepository interface {
	Create(ctx context.Context, l *entity.ClubLeadership) (*entity.ClubLeadership, error)
	Get(ctx context.Context, id string) (*entity.ClubLeadership, error)
	ListByClub(ctx context.Context, clubID string) ([]entity.ClubLeadership, error)
	Update(ctx context.Context, l *entity.ClubLeadership) (*entity.ClubLeadership, error)
	Delete(ctx context.Context, id string) error
}
