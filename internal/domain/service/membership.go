package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/secondary"
)

// MembershipService drives the request -> decide workflow. The duplicate
// guard and the member-count adjustment live in the repository transaction;
// this layer owns authorization and snapshot construction.
type MembershipService struct {
	repo        secondary.MembershipRepository
	studentRepo secondary.StudentRepository
	clubRepo    secondary.ClubRepository
}

func NewMembershipService(
	storage secondary.MembershipRepository,
	studentRepo secondary.StudentRepository,
	clubRepo secondary.ClubRepository,
) *MembershipService {
	return &MembershipService{
		repo:        storage,
		studentRepo: studentRepo,
		clubRepo:    clubRepo,
	}
}

func (s *MembershipService) Request(ctx context.Context, studentID, clubID, reason string) (*entity.ClubMembership, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errs.Validationf("reason is required")
	}

	student, err := s.studentRepo.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	club, err := s.clubRepo.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}

	membership := s.newPending(student, club.ID, reason)
	return s.repo.CreateIfNoActive(ctx, membership)
}

func (s *MembershipService) EnsureForEvent(ctx context.Context, student *entity.Student, event *entity.Event) (*entity.ClubMembership, error) {
	active, err := s.repo.HasActive(ctx, student.EnrollmentNumber, event.ClubID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, nil
	}

	membership := s.newPending(student, event.ClubID, fmt.Sprintf("Registered for event: %s", event.Title))
	created, err := s.repo.CreateIfNoActive(ctx, membership)
	if err != nil {
		// A concurrent request won the insert; the registration proceeds
		// either way.
		if errors.Is(err, errs.ErrConflict) {
			return nil, nil
		}
		return nil, err
	}
	return created, nil
}

func (s *MembershipService) Decide(ctx context.Context, actor dto.Identity, membershipID string, target entity.MembershipStatus) (*entity.ClubMembership, error) {
	membership, err := s.repo.Get(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if err = s.authorizeClub(actor, membership.ClubID); err != nil {
		return nil, err
	}
	if _, err = membership.Status.Transition(target); err != nil {
		return nil, err
	}

	return s.repo.Decide(ctx, membershipID, target, time.Now())
}

func (s *MembershipService) Delete(ctx context.Context, actor dto.Identity, membershipID string) error {
	membership, err := s.repo.Get(ctx, membershipID)
	if err != nil {
		return err
	}

	ownRecord := actor.IsStudent() && actor.EnrollmentNumber == membership.EnrollmentNumber
	if !ownRecord {
		if err = s.authorizeClub(actor, membership.ClubID); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, membershipID)
}

func (s *MembershipService) ListForStudent(ctx context.Context, enrollment string) ([]entity.ClubMembership, error) {
	return s.repo.ListByEnrollment(ctx, enrollment)
}

func (s *MembershipService) ListForClub(ctx context.Context, actor dto.Identity) ([]entity.ClubMembership, error) {
	if !actor.IsClubAdmin() {
		return nil, errs.ErrForbidden
	}
	return s.repo.ListByClub(ctx, actor.ClubID)
}

func (s *MembershipService) newPending(student *entity.Student, clubID, reason string) *entity.ClubMembership {
	return &entity.ClubMembership{
		ID:               uuid.NewString(),
		ClubID:           clubID,
		EnrollmentNumber: student.EnrollmentNumber,
		Student: entity.Snapshot{
			AsOf:  time.Now(),
			Name:  student.Name,
			Email: student.Email,
		},
		Department: student.Branch,
		Reason:     reason,
		Status:     entity.MembershipPending,
	}
}

func (s *MembershipService) authorizeClub(actor dto.Identity, clubID string) error {
	if actor.IsUniversityAdmin() {
		return nil
	}
	if actor.IsClubAdmin() && actor.ClubID == clubID {
		return nil
	}
	return errs.ErrForbidden
}
