package service

import (
	"context"
	"strings"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/secondary"
)

// StudentService is the student roster surface: university admins list the
// roster, toggle the disable flag and issue certificates; students read and
// touch up their own profile.
type StudentService struct {
	repo secondary.StudentRepository
}

func NewStudentService(storage secondary.StudentRepository) *StudentService {
	return &StudentService{repo: storage}
}

func (s *StudentService) List(ctx context.Context, actor dto.Identity) ([]entity.Student, error) {
	if !actor.IsUniversityAdmin() {
		return nil, errs.ErrForbidden
	}
	return s.repo.GetAll(ctx)
}

func (s *StudentService) Get(ctx context.Context, actor dto.Identity, id string) (*entity.Student, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return s.repo.Get(ctx, id)
}

// SetDisabled flips the account flag. A disabled student keeps their data and
// history; only login is refused.
func (s *StudentService) SetDisabled(ctx context.Context, actor dto.Identity, id string, disabled bool) (*entity.Student, error) {
	if !actor.IsUniversityAdmin() {
		return nil, errs.ErrForbidden
	}
	if err := s.repo.SetDisabled(ctx, id, disabled); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *StudentService) IssueCertificate(ctx context.Context, actor dto.Identity, studentID string, cert entity.Certificate) (*entity.Student, error) {
	if !actor.IsUniversityAdmin() {
		return nil, errs.ErrForbidden
	}
	if strings.TrimSpace(cert.Title) == "" {
		return nil, errs.Validationf("certificate title is required")
	}

	student, err := s.repo.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	student.Certificates = append(student.Certificates, cert)
	return s.repo.Update(ctx, student)
}

func (s *StudentService) Profile(ctx context.Context, studentID string) (*entity.Student, error) {
	return s.repo.Get(ctx, studentID)
}

func (s *StudentService) SetProfilePicture(ctx context.Context, studentID, url string) (*entity.Student, error) {
	student, err := s.repo.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	student.ProfilePictureURL = url
	return s.repo.Update(ctx, student)
}
