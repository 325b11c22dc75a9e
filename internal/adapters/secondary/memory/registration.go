package memory

import (
	"context"
	"sort"
	"time"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type RegistrationRepository struct {
	db *DB
}

func NewRegistrationRepository(db *DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(_ context.Context, reg *entity.EventRegistration) (*entity.EventRegistration, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.registrations {
		if existing.EnrollmentNumber == reg.EnrollmentNumber && existing.EventID == reg.EventID {
			return nil, errs.Conflictf("already registered for this event")
		}
	}
	ensureID(&reg.ID)
	ensureTime(&reg.CreatedAt)
	r.db.registrations[reg.ID] = *reg
	return reg, nil
}

func (r *RegistrationRepository) Get(_ context.Context, id string) (*entity.EventRegistration, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	reg, ok := r.db.registrations[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &reg, nil
}

func (r *RegistrationRepository) MarkAttendance(_ context.Context, id string, status entity.AttendanceStatus, markedBy string, at time.Time) (*entity.EventRegistration, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	reg, ok := r.db.registrations[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	reg.AttendanceStatus = status
	reg.Attended = status == entity.AttendancePresent
	reg.AttendanceMarkedAt = &at
	reg.AttendanceMarkedBy = markedBy
	r.db.registrations[id] = reg
	return &reg, nil
}

func (r *RegistrationRepository) ListByEvent(_ context.Context, eventID string) ([]entity.EventRegistration, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var regs []entity.EventRegistration
	for _, reg := range r.db.registrations {
		if reg.EventID == eventID {
			regs = append(regs, reg)
		}
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].CreatedAt.Before(regs[j].CreatedAt) })
	return regs, nil
}

func (r *RegistrationRepository) ListByEnrollment(_ context.Context, enrollment string) ([]entity.EventRegistration, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var regs []entity.EventRegistration
	for _, reg := range r.db.registrations {
		if reg.EnrollmentNumber == enrollment {
			regs = append(regs, reg)
		}
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].CreatedAt.After(regs[j].CreatedAt) })
	return regs, nil
}

func (r *RegistrationRepository) Count(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.registrations)), nil
}

func (r *RegistrationRepository) CountAttended(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var count int64
	for _, reg := range r.db.registrations {
		if reg.AttendanceStatus == entity.AttendancePresent {
			count++
		}
	}
	return count, nil
}
