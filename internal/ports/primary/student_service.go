package primary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// StudentService defines the interface for the student roster surface
type StudentService interface {
	List(ctx context.Context, actor dto.Identity) ([]entity.Student, error)
	Get(ctx context.Context, actor dto.Identity, id string) (*entity.Student, error)
	SetDisabled(ctx context.Context, actor dto.Identity, id string, disabled bool) (*entity.Student, error)
	IssueCertificate(ctx context.Context, actor dto.Identity, studentID string, cert entity.Certificate) (*entity.Student, error)
	Profile(ctx context.Context, studentID string) (*entity.Student, error)
	SetProfilePicture(ctx context.Context, studentID, url string) (*entity.Student, error)
}
