package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/clubhub/internal/domain/entity"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// Create relies on the unique (enrollment, event) index to refuse duplicate
// registrations; the driver error surfaces as errs.ErrConflict.
func (r *RegistrationRepository) Create(ctx context.Context, reg *entity.EventRegistration) (*entity.EventRegistration, error) {
	err := r.db.WithContext(ctx).Create(reg).Error
	return reg, translate(err)
}

func (r *RegistrationRepository) Get(ctx context.Context, id string) (*entity.EventRegistration, error) {
	var reg entity.EventRegistration
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&reg).Error
	return &reg, translate(err)
}

func (r *RegistrationRepository) MarkAttendance(ctx context.Context, id string, status entity.AttendanceStatus, markedBy string, at time.Time) (*entity.EventRegistration, error) {
	var reg entity.EventRegistration
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.EventRegistration{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"attendance_status":    status,
				"attended":             status == entity.AttendancePresent,
				"attendance_marked_at": at,
				"attendance_marked_by": markedBy,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&reg).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &reg, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]entity.EventRegistration, error) {
	var regs []entity.EventRegistration
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at").
		Find(&regs).Error
	return regs, translate(err)
}

func (r *RegistrationRepository) ListByEnrollment(ctx context.Context, enrollment string) ([]entity.EventRegistration, error) {
	var regs []entity.EventRegistration
	err := r.db.WithContext(ctx).
		Where("enrollment_number = ?", enrollment).
		Order("created_at DESC").
		Find(&regs).Error
	return regs, translate(err)
}

func (r *RegistrationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.EventRegistration{}).Count(&count).Error
	return count, translate(err)
}

func (r *RegistrationRepository) CountAttended(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.EventRegistration{}).
		Where("attendance_status = ?", entity.AttendancePresent).
		Count(&count).Error
	return count, translate(err)
}
