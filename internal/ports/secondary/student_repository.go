package secondary

import (
	"context"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

// StudentRepository defines the interface for student data access
type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) (*entity.Student, error)
	Get(ctx context.Context, id string) (*entity.Student, error)
	GetByEmail(ctx context.Context, email string) (*entity.Student, error)
	GetByEnrollment(ctx context.Context, enrollment string) (*entity.Student, error)
	Update(ctx context.Context, student *entity.Student) (*entity.Student, error)
	SetLastLogin(ctx context.Context, id string, at time.Time) error
	SetDisabled(ctx context.Context, id string, disabled bool) error
	GetAll(ctx context.Context) ([]entity.Student, error)
	Count(ctx context.Context) (int64, error)
	CountDisabled(ctx context.Context) (int64, error)
	CountByBranch(ctx context.Context) ([]dto.CategoryCount, error)
}
