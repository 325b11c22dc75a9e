package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := r.db.WithContext(ctx).Create(event).Error
	return event, translate(err)
}

func (r *EventRepository) Get(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	return &event, translate(err)
}

func (r *EventRepository) GetAll(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	err := r.db.WithContext(ctx).Order("date").Find(&events).Error
	return events, translate(err)
}

func (r *EventRepository) GetByClubID(ctx context.Context, clubID string) ([]entity.Event, error) {
	var events []entity.Event
	err := r.db.WithContext(ctx).Where("club_id = ?", clubID).Order("date").Find(&events).Error
	return events, translate(err)
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := r.db.WithContext(ctx).Save(event).Error
	return event, translate(err)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Event{}).Error
	return translate(err)
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Event{}).Count(&count).Error
	return count, translate(err)
}

func (r *EventRepository) CountUpcoming(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Event{}).
		Where("date >= ?", now).
		Count(&count).Error
	return count, translate(err)
}

func (r *EventRepository) CountByCategory(ctx context.Context) ([]dto.CategoryCount, error) {
	var result []dto.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&entity.Event{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&result).Error
	return result, translate(err)
}

func (r *EventRepository) GetStartingBetween(ctx context.Context, from, to time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date").
		Find(&events).Error
	return events, translate(err)
}
