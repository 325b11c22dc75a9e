package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/clubhub/internal/domain/entity"
)

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{
		db: db,
	}
}

func (r *AchievementRepository) Create(ctx context.Context, a *entity.Achievement) (*entity.Achievement, error) {
	err := r.db.WithContext(ctx).Create(a).Error
	return a, translate(err)
}

func (r *AchievementRepository) Get(ctx context.Context, id string) (*entity.Achievement, error) {
	var a entity.Achievement
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return &a, translate(err)
}

func (r *AchievementRepository) ListByClub(ctx context.Context, clubID string) ([]entity.Achievement, error) {
	var achievements []entity.Achievement
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("achievement_date DESC").
		Find(&achievements).Error
	return achievements, translate(err)
}

func (r *AchievementRepository) Update(ctx context.Context, a *entity.Achievement) (*entity.Achievement, error) {
	err := r.db.WithContext(ctx).Save(a).Error
	return a, translate(err)
}

func (r *AchievementRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Achievement{}).Error
	return translate(err)
}

type LeadershipRepository struct {
	db *gorm.DB
}

func NewLeadershipRepository(db *gorm.DB) *LeadershipRepository {
	return &LeadershipRepository{
		db: db,
	}
}

func (r *LeadershipRepository) Create(ctx context.Context, l *entity.ClubLeadership) (*entity.ClubLeadership, error) {
	err := r.db.WithContext(ctx).Create(l).Error
	return l, translate(err)
}

func (r *LeadershipRepository) Get(ctx context.Context, id string) (*entity.ClubLeadership, error) {
	var l entity.ClubLeadership
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	return &l, translate(err)
}

func (r *LeadershipRepository) ListByClub(ctx context.Context, clubID string) ([]entity.ClubLeadership, error) {
	var leaders []entity.ClubLeadership
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("created_at").
		Find(&leaders).Error
	return leaders, translate(err)
}

func (r *LeadershipRepository) Update(ctx context.Context, l *entity.ClubLeadership) (*entity.ClubLeadership, error) {
	err := r.db.WithContext(ctx).Save(l).Error
	return l, translate(err)
}

func (r *LeadershipRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ClubLeadership{}).Error
	return translate(err)
}
