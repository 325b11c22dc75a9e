package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{
		db: db,
	}
}

func (r *ClubRepository) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := r.db.WithContext(ctx).Create(club).Error
	return club, translate(err)
}

func (r *ClubRepository) Get(ctx context.Context, id string) (*entity.Club, error) {
	var club entity.Club
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	return &club, translate(err)
}

func (r *ClubRepository) GetAll(ctx context.Context) ([]entity.Club, error) {
	var clubs []entity.Club
	err := r.db.WithContext(ctx).Order("name").Find(&clubs).Error
	return clubs, translate(err)
}

func (r *ClubRepository) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := r.db.WithContext(ctx).Save(club).Error
	return club, translate(err)
}

func (r *ClubRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Club{}).Error
	return translate(err)
}

func (r *ClubRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Club{}).Count(&count).Error
	return count, translate(err)
}

func (r *ClubRepository) CountByCategory(ctx context.Context) ([]dto.CategoryCount, error) {
	var result []dto.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&entity.Club{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&result).Error
	return result, translate(err)
}

// TopByMemberCount derives the ranking from the approved membership rows
// rather than the cached counter, so a drifted counter cannot skew the
// dashboard.
func (r *ClubRepository) TopByMemberCount(ctx context.Context, limit int) ([]dto.ClubRank, error) {
	var result []dto.ClubRank
	err := r.db.WithContext(ctx).
		Table("clubs").
		Select("clubs.id AS club_id, clubs.name, COUNT(club_memberships.id) AS member_count").
		Joins("LEFT JOIN club_memberships ON club_memberships.club_id = clubs.id AND club_memberships.status = ?", entity.MembershipApproved).
		Group("clubs.id, clubs.name").
		Order("member_count DESC").
		Limit(limit).
		Scan(&result).Error
	return result, translate(err)
}

func (r *ClubRepository) SetMemberCount(ctx context.Context, id string, count int) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Club{}).
		Where("id = ?", id).
		Update("member_count", count).Error
	return translate(err)
}
