package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campushub/clubhub/internal/domain/entity"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
	}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *entity.Announcement) (*entity.Announcement, error) {
	err := r.db.WithContext(ctx).Create(a).Error
	return a, translate(err)
}

func (r *AnnouncementRepository) Get(ctx context.Context, id string) (*entity.Announcement, error) {
	var a entity.Announcement
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return &a, translate(err)
}

func (r *AnnouncementRepository) GetAll(ctx context.Context) ([]entity.Announcement, error) {
	var announcements []entity.Announcement
	err := r.db.WithContext(ctx).
		Order("pinned DESC, created_at DESC").
		Find(&announcements).Error
	return announcements, translate(err)
}

func (r *AnnouncementRepository) GetForTargets(ctx context.Context, targets []string) ([]entity.Announcement, error) {
	var announcements []entity.Announcement
	err := r.db.WithContext(ctx).
		Where("target IN ?", targets).
		Order("pinned DESC, created_at DESC").
		Find(&announcements).Error
	return announcements, translate(err)
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *entity.Announcement) (*entity.Announcement, error) {
	err := r.db.WithContext(ctx).Save(a).Error
	return a, translate(err)
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("announcement_id = ?", id).Delete(&entity.AnnouncementRead{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Announcement{}).Error
	})
	return translate(err)
}

// MarkRead inserts the read marker; ON CONFLICT DO NOTHING makes a repeat
// call a no-op rather than an error.
func (r *AnnouncementRepository) MarkRead(ctx context.Context, announcementID, enrollment string) error {
	marker := &entity.AnnouncementRead{
		ID:               uuid.NewString(),
		AnnouncementID:   announcementID,
		EnrollmentNumber: enrollment,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(marker).Error
	return translate(err)
}

func (r *AnnouncementRepository) ReadSet(ctx context.Context, enrollment string, announcementIDs []string) (map[string]bool, error) {
	if len(announcementIDs) == 0 {
		return map[string]bool{}, nil
	}
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entity.AnnouncementRead{}).
		Where("enrollment_number = ? AND announcement_id IN ?", enrollment, announcementIDs).
		Pluck("announcement_id", &ids).Error
	if err != nil {
		return nil, translate(err)
	}
	read := make(map[string]bool, len(ids))
	for _, id := range ids {
		read[id] = true
	}
	return read, nil
}
