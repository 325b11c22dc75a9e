package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/secondary"
)

// AuthService owns signup, the three login entry points and the session
// lifecycle. Tokens are opaque; the session store holds the identity.
type AuthService struct {
	studentRepo secondary.StudentRepository
	adminRepo   secondary.AdminRepository
	sessions    secondary.SessionStore
	sessionTTL  time.Duration
}

func NewAuthService(
	studentRepo secondary.StudentRepository,
	adminRepo secondary.AdminRepository,
	sessions secondary.SessionStore,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

func (s *AuthService) StudentSignup(ctx context.Context, student *entity.Student, password string) (*entity.Student, error) {
	if len(password) < 6 {
		return nil, errs.Validationf("password must be at least 6 characters")
	}

	student.ID = uuid.NewString()
	if err := student.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthService) StudentLogin(ctx context.Context, email, password string) (string, *entity.Student, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, errs.ErrUnauthenticated
	}
	if !student.CheckPassword(password) {
		return "", nil, errs.ErrUnauthenticated
	}
	if student.IsDisabled {
		return "", nil, errs.ErrAccountDisabled
	}

	now := time.Now()
	if err = s.studentRepo.SetLastLogin(ctx, student.ID, now); err != nil {
		return "", nil, fmt.Errorf("stamp last login: %w", err)
	}
	student.LastLogin = &now

	token, err := s.issueSession(ctx, dto.Identity{
		Kind:             dto.IdentityStudent,
		SubjectID:        student.ID,
		EnrollmentNumber: student.EnrollmentNumber,
		Name:             student.Name,
	})
	if err != nil {
		return "", nil, err
	}
	return token, student, nil
}

func (s *AuthService) UniversityLogin(ctx context.Context, username, password string) (string, *entity.Admin, error) {
	admin, err := s.authenticateAdmin(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	if !admin.IsUniversityAdmin() {
		return "", nil, errs.ErrUnauthenticated
	}
	if err = s.stampAdminLogin(ctx, admin); err != nil {
		return "", nil, err
	}

	token, err := s.issueSession(ctx, dto.Identity{
		Kind:      dto.IdentityUniversityAdmin,
		SubjectID: admin.ID,
		Name:      admin.Username,
	})
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

func (s *AuthService) ClubLogin(ctx context.Context, username, password string) (string, *entity.Admin, error) {
	admin, err := s.authenticateAdmin(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	if admin.IsUniversityAdmin() {
		return "", nil, errs.ErrUnauthenticated
	}
	if err = s.stampAdminLogin(ctx, admin); err != nil {
		return "", nil, err
	}

	token, err := s.issueSession(ctx, dto.Identity{
		Kind:      dto.IdentityClubAdmin,
		SubjectID: admin.ID,
		ClubID:    *admin.ClubID,
		Name:      admin.Username,
	})
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) Resolve(ctx context.Context, token string) (dto.Identity, error) {
	if token == "" {
		return dto.Identity{}, errs.ErrUnauthenticated
	}
	return s.sessions.Get(ctx, token)
}

// authenticateAdmin checks credentials only. The caller stamps last login
// after its kind check passes, so a rejected cross-kind attempt leaves no
// trace on the account.
func (s *AuthService) authenticateAdmin(ctx context.Context, username, password string) (*entity.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}
	if !admin.CheckPassword(password) {
		return nil, errs.ErrUnauthenticated
	}
	return admin, nil
}

func (s *AuthService) stampAdminLogin(ctx context.Context, admin *entity.Admin) error {
	now := time.Now()
	if err := s.adminRepo.SetLastLogin(ctx, admin.ID, now); err != nil {
		return fmt.Errorf("stamp last login: %w", err)
	}
	admin.LastLogin = &now
	return nil
}

func (s *AuthService) issueSession(ctx context.Context, identity dto.Identity) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(raw)

	if err := s.sessions.Set(ctx, token, identity, s.sessionTTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}
