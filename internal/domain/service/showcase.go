package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/secondary"
)

// AchievementService manages the club achievement showcase. Reads are
// public; writes belong to the owning club's admin or a university admin.
type AchievementService struct {
	repo secondary.AchievementRepository
}

func NewAchievementService(storage secondary.AchievementRepository) *AchievementService {
	return &AchievementService{
		repo: storage,
	}
}

func (s *AchievementService) Create(ctx context.Context, actor dto.Identity, a *entity.Achievement) (*entity.Achievement, error) {
	if err := authorizeClubContent(actor, a.ClubID); err != nil {
		return nil, err
	}
	a.ID = uuid.NewString()
	return s.repo.Create(ctx, a)
}

func (s *AchievementService) ListByClub(ctx context.Context, clubID string) ([]entity.Achievement, error) {
	return s.repo.ListByClub(ctx, clubID)
}

func (s *AchievementService) Update(ctx context.Context, actor dto.Identity, a *entity.Achievement) (*entity.Achievement, error) {
	current, err := s.repo.Get(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if err = authorizeClubContent(actor, current.ClubID); err != nil {
		return nil, err
	}
	a.ClubID = current.ClubID
	return s.repo.Update(ctx, a)
}

func (s *AchievementService) Delete(ctx context.Context, actor dto.Identity, id string) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = authorizeClubContent(actor, current.ClubID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// LeadershipService manages the club leadership display data with the same
// ownership rules as achievements.
type LeadershipService struct {
	repo secondary.LeadershipRepository
}

func NewLeadershipService(storage secondary.LeadershipRepository) *LeadershipService {
	return &LeadershipService{
		repo: storage,
	}
}

func (s *LeadershipService) Create(ctx context.Context, actor dto.Identity, l *entity.ClubLeadership) (*entity.ClubLeadership, error) {
	if err := authorizeClubContent(actor, l.ClubID); err != nil {
		return nil, err
	}
	l.ID = uuid.NewString()
	return s.repo.Create(ctx, l)
}

func (s *LeadershipService) ListByClub(ctx context.Context, clubID string) ([]entity.ClubLeadership, error) {
	return s.repo.ListByClub(ctx, clubID)
}

func (s *LeadershipService) Update(ctx context.Context, actor dto.Identity, l *entity.ClubLeadership) (*entity.ClubLeadership, error) {
	current, err := s.repo.Get(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	if err = authorizeClubContent(actor, current.ClubID); err != nil {
		return nil, err
	}
	l.ClubID = current.ClubID
	return s.repo.Update(ctx, l)
}

func (s *LeadershipService) Delete(ctx context.Context, actor dto.Identity, id string) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = authorizeClubContent(actor, current.ClubID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func authorizeClubContent(actor dto.Identity, clubID string) error {
	if actor.IsUniversityAdmin() {
		return nil
	}
	if actor.IsClubAdmin() && actor.ClubID == clubID {
		return nil
	}
	return errs.ErrForbidden
}
