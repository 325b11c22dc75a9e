package memory

import (
	"context"
	"time"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type AdminRepository struct {
	db *DB
}

func NewAdminRepository(db *DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(_ context.Context, admin *entity.Admin) (*entity.Admin, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, a := range r.db.admins {
		if a.Username == admin.Username {
			return nil, errs.ErrConflict
		}
	}
	ensureID(&admin.ID)
	ensureTime(&admin.CreatedAt)
	r.db.admins[admin.ID] = *admin
	return admin, nil
}

func (r *AdminRepository) Get(_ context.Context, id string) (*entity.Admin, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, ok := r.db.admins[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &a, nil
}

func (r *AdminRepository) GetByUsername(_ context.Context, username string) (*entity.Admin, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, a := range r.db.admins {
		if a.Username == username {
			a := a
			return &a, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r *AdminRepository) SetLastLogin(_ context.Context, id string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	a, ok := r.db.admins[id]
	if !ok {
		return errs.ErrNotFound
	}
	a.LastLogin = &at
	a.LastActive = &at
	r.db.admins[id] = a
	return nil
}
