package memory

import (
	"context"
	"sort"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type StudentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(_ context.Context, student *entity.Student) (*entity.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, s := range r.db.students {
		if s.Email == student.Email || s.EnrollmentNumber == student.EnrollmentNumber {
			return nil, errs.ErrConflict
		}
	}
	ensureID(&student.ID)
	ensureTime(&student.CreatedAt)
	r.db.students[student.ID] = *student
	return student, nil
}

func (r *StudentRepository) Get(_ context.Context, id string) (*entity.Student, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	s, ok := r.db.students[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &s, nil
}

func (r *StudentRepository) GetByEmail(_ context.Context, email string) (*entity.Student, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, s := range r.db.students {
		if s.Email == email {
			s := s
			return &s, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *StudentRepository) GetByEnrollment(_ context.Context, enrollment string) (*entity.Student, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, s := range r.db.students {
		if s.EnrollmentNumber == enrollment {
			s := s
			return &s, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *StudentRepository) Update(_ context.Context, student *entity.Student) (*entity.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.students[student.ID]; !ok {
		return nil, errs.ErrNotFound
	}
	r.db.students[student.ID] = *student
	return student, nil
}

func (r *StudentRepository) SetLastLogin(_ context.Context, id string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.students[id]
	if !ok {
		return errs.ErrNotFound
	}
	s.LastLogin = &at
	r.db.students[id] = s
	return nil
}

func (r *StudentRepository) SetDisabled(_ context.Context, id string, disabled bool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.students[id]
	if !ok {
		return errs.ErrNotFound
	}
	s.IsDisabled = disabled
	r.db.students[id] = s
	return nil
}

func (r *StudentRepository) GetAll(_ context.Context) ([]entity.Student, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	students := make([]entity.Student, 0, len(r.db.students))
	for _, s := range r.db.students {
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].CreatedAt.After(students[j].CreatedAt) })
	return students, nil
}

func (r *StudentRepository) Count(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.students)), nil
}

func (r *StudentRepository) CountDisabled(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var count int64
	for _, s := range r.db.students {
		if s.IsDisabled {
			count++
		}
	}
	return count, nil
}

func (r *StudentRepository) CountByBranch(_ context.Context) ([]dto.CategoryCount, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[string]int64)
	for _, s := range r.db.students {
		counts[s.Branch]++
	}
	return sortedCounts(counts), nil
}

// sortedCounts converts a category->count map into a slice ordered by count
// descending, then name, matching the SQL adapters.
func sortedCounts(counts map[string]int64) []dto.CategoryCount {
	result := make([]dto.CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, dto.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result
}
