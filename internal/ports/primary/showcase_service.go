package primary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// AchievementService defines the interface for club achievement showcase
type AchievementService interface {
	Create(ctx context.Context, actor dto.Identity, a *entity.Achievement) (*entity.Achievement, error)
	ListByClub(ctx context.Context, clubID string) ([]entity.Achievement, error)
	Update(ctx context.Context, actor dto.Identity, a *entity.Achievement) (*entity.Achievement, error)
	Delete(ctx context.Context, actor dto.Identity, id string) error
}

// LeadershipService defines the interface for club leadership display data
type LeadershipService interface {
	Create(ctx context.Context, actor dto.Identity, l *entity.ClubLeadership) (*entity.ClubLeadership, error)
	ListByClub(ctx context.Context, clubID string) ([]entity.ClubLeadership, error)
	Update(ctx context.Context, actor dto.Identity, l *entity.ClubLeadership) (*entity.ClubLeadership, error)
	Delete(ctx context.Context, actor dto.Identity, id string) error
}
