package memory

import (
	"context"
	"sort"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type AnnouncementRepository struct {
	db *DB
}

func NewAnnouncementRepository(db *DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(_ context.Context, a *entity.Announcement) (*entity.Announcement, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	ensureID(&a.ID)
	ensureTime(&a.CreatedAt)
	r.db.announcements[a.ID] = *a
	return a, nil
}

func (r *AnnouncementRepository) Get(_ context.Context, id string) (*entity.Announcement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, ok := r.db.announcements[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &a, nil
}

func (r *AnnouncementRepository) GetAll(_ context.Context) ([]entity.Announcement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.sorted(func(entity.Announcement) bool { return true }), nil
}

func (r *AnnouncementRepository) GetForTargets(_ context.Context, targets []string) ([]entity.Announcement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	allowed := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		allowed[t] = struct{}{}
	}
	return r.sorted(func(a entity.Announcement) bool {
		_, ok := allowed[a.Target]
		return ok
	}), nil
}

func (r *AnnouncementRepository) Update(_ context.Context, a *entity.Announcement) (*entity.Announcement, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.announcements[a.ID]; !ok {
		return nil, errs.ErrNotFound
	}
	r.db.announcements[a.ID] = *a
	return a, nil
}

func (r *AnnouncementRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.announcements, id)
	for key, read := range r.db.reads {
		if read.AnnouncementID == id {
			delete(r.db.reads, key)
		}
	}
	return nil
}

func (r *AnnouncementRepository) MarkRead(_ context.Context, announcementID, enrollment string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	key := announcementID + "/" + enrollment
	if _, ok := r.db.reads[key]; ok {
		return nil
	}
	read := entity.AnnouncementRead{
		AnnouncementID:   announcementID,
		EnrollmentNumber: enrollment,
	}
	ensureID(&read.ID)
	ensureTime(&read.CreatedAt)
	r.db.reads[key] = read
	return nil
}

func (r *AnnouncementRepository) ReadSet(_ context.Context, enrollment string, announcementIDs []string) (map[string]bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	read := make(map[string]bool)
	for _, id := range announcementIDs {
		if _, ok := r.db.reads[id+"/"+enrollment]; ok {
			read[id] = true
		}
	}
	return read, nil
}

func (r *AnnouncementRepository) sorted(keep func(entity.Announcement) bool) []entity.Announcement {
	var announcements []entity.Announcement
	for _, a := range r.db.announcements {
		if keep(a) {
			announcements = append(announcements, a)
		}
	}
	sort.Slice(announcements, func(i, j int) bool {
		if announcements[i].Pinned != announcements[j].Pinned {
			return announcements[i].Pinned
		}
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})
	return announcements
}
