package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func (r *StudentRepository) Create(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	err := r.db.WithContext(ctx).Create(student).Error
	return student, translate(err)
}

func (r *StudentRepository) Get(ctx context.Context, id string) (*entity.Student, error) {
	var student entity.Student
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error
	return &student, translate(err)
}

func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*entity.Student, error) {
	var student entity.Student
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&student).Error
	return &student, translate(err)
}

func (r *StudentRepository) GetByEnrollment(ctx context.Context, enrollment string) (*entity.Student, error) {
	var student entity.Student
	err := r.db.WithContext(ctx).Where("enrollment_number = ?", enrollment).First(&student).Error
	return &student, translate(err)
}

func (r *StudentRepository) Update(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	err := r.db.WithContext(ctx).Save(student).Error
	return student, translate(err)
}

func (r *StudentRepository) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Student{}).
		Where("id = ?", id).
		Update("last_login", at).Error
	return translate(err)
}

func (r *StudentRepository) SetDisabled(ctx context.Context, id string, disabled bool) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Student{}).
		Where("id = ?", id).
		Update("is_disabled", disabled)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *StudentRepository) GetAll(ctx context.Context) ([]entity.Student, error) {
	var students []entity.Student
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&students).Error
	return students, translate(err)
}

func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Student{}).Count(&count).Error
	return count, translate(err)
}

func (r *StudentRepository) CountDisabled(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Student{}).Where("is_disabled").Count(&count).Error
	return count, translate(err)
}

func (r *StudentRepository) CountByBranch(ctx context.Context) ([]dto.CategoryCount, error) {
	var result []dto.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&entity.Student{}).
		Select("branch AS category, COUNT(*) AS count").
		Group("branch").
		Order("count DESC").
		Scan(&result).Error
	return result, translate(err)
}
