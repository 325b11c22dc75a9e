package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/secondary"
)

type ClubService struct {
	repo secondary.ClubRepository
}

func NewClubService(storage secondary.ClubRepository) *ClubService {
	return &ClubService{
		repo: storage,
	}
}

func (s *ClubService) Create(ctx context.Context, actor dto.Identity, club *entity.Club) (*entity.Club, error) {
	if !actor.IsUniversityAdmin() {
		return nil, errs.ErrForbidden
	}
	club.ID = uuid.NewString()
	club.MemberCount = 0
	return s.repo.Create(ctx, club)
}

func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	return s.repo.Get(ctx, id)
}

func (s *ClubService) GetAll(ctx context.Context) ([]entity.Club, error) {
	return s.repo.GetAll(ctx)
}

func (s *ClubService) Update(ctx context.Context, actor dto.Identity, club *entity.Club) (*entity.Club, error) {
	if !actor.IsUniversityAdmin() && !(actor.IsClubAdmin() && actor.ClubID == club.ID) {
		return nil, errs.ErrForbidden
	}

	current, err := s.repo.Get(ctx, club.ID)
	if err != nil {
		return nil, err
	}
	// The counter is workflow-owned; profile edits never touch it.
	club.MemberCount = current.MemberCount
	club.CreatedAt = current.CreatedAt

	return s.repo.Update(ctx, club)
}

func (s *ClubService) Delete(ctx context.Context, actor dto.Identity, id string) error {
	if !actor.IsUniversityAdmin() {
		return errs.ErrForbidden
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
