package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/secondary"
)

// AnnouncementService owns announcements and the per-student read markers.
// University admins may target everyone or any club; club admins may target
// only their own club.
type AnnouncementService struct {
	repo           secondary.AnnouncementRepository
	clubRepo       secondary.ClubRepository
	membershipRepo secondary.MembershipRepository
}

func NewAnnouncementService(
	storage secondary.AnnouncementRepository,
	clubRepo secondary.ClubRepository,
	membershipRepo secondary.MembershipRepository,
) *AnnouncementService {
	return &AnnouncementService{
		repo:           storage,
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *AnnouncementService) Create(ctx context.Context, actor dto.Identity, title, content, target string) (*entity.Announcement, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	switch {
	case actor.IsClubAdmin():
		if target == "" {
			target = actor.ClubID
		}
		if target != actor.ClubID {
			return nil, errs.ErrForbidden
		}
	default:
		if target == "" {
			target = entity.AnnouncementTargetAll
		}
		if target != entity.AnnouncementTargetAll {
			if _, err := s.clubRepo.Get(ctx, target); err != nil {
				return nil, err
			}
		}
	}

	announcement := &entity.Announcement{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    content,
		AuthorID:   actor.SubjectID,
		AuthorName: actor.Name,
		Target:     target,
	}
	return s.repo.Create(ctx, announcement)
}

func (s *AnnouncementService) Update(ctx context.Context, actor dto.Identity, id string, title, content *string, pinned *bool) (*entity.Announcement, error) {
	announcement, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.authorize(actor, announcement); err != nil {
		return nil, err
	}

	if title != nil {
		announcement.Title = *title
	}
	if content != nil {
		announcement.Content = *content
	}
	if pinned != nil {
		announcement.Pinned = *pinned
	}

	return s.repo.Update(ctx, announcement)
}

func (s *AnnouncementService) Delete(ctx context.Context, actor dto.Identity, id string) error {
	announcement, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = s.authorize(actor, announcement); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *AnnouncementService) GetAll(ctx context.Context) ([]entity.Announcement, error) {
	return s.repo.GetAll(ctx)
}

func (s *AnnouncementService) ListForStudent(ctx context.Context, enrollment string) ([]dto.AnnouncementView, error) {
	clubIDs, err := s.membershipRepo.ListApprovedClubIDs(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	targets := append([]string{entity.AnnouncementTargetAll}, clubIDs...)

	announcements, err := s.repo.GetForTargets(ctx, targets)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(announcements))
	for i, a := range announcements {
		ids[i] = a.ID
	}
	readSet, err := s.repo.ReadSet(ctx, enrollment, ids)
	if err != nil {
		return nil, err
	}

	views := make([]dto.AnnouncementView, len(announcements))
	for i, a := range announcements {
		views[i] = dto.AnnouncementView{Announcement: a, IsRead: readSet[a.ID]}
	}
	return views, nil
}

func (s *AnnouncementService) MarkRead(ctx context.Context, enrollment, announcementID string) error {
	if _, err := s.repo.Get(ctx, announcementID); err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, announcementID, enrollment)
}

// authorize allows university admins and, for club-targeted announcements,
// the owning club's admin.
func (s *AnnouncementService) authorize(actor dto.Identity, a *entity.Announcement) error {
	if actor.IsUniversityAdmin() {
		return nil
	}
	if actor.IsClubAdmin() && a.TargetsClub(actor.ClubID) {
		return nil
	}
	return errs.ErrForbidden
}
