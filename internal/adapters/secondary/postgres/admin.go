package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/clubhub/internal/domain/entity"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin *entity.Admin) (*entity.Admin, error) {
	err := r.db.WithContext(ctx).Create(admin).Error
	return admin, translate(err)
}

func (r *AdminRepository) Get(ctx context.Context, id string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	return &admin, translate(err)
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	return &admin, translate(err)
}

func (r *AdminRepository) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Admin{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"last_login": at, "last_active": at}).Error
	return translate(err)
}
