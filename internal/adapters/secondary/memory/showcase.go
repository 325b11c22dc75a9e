package memory

import (
	"context"
	"sort"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type AchievementRepository struct {
	db *DB
}

func NewAchievementRepository(db *DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func (r *AchievementRepository) Create(_ context.Context, a *entity.Achievement) (*entity.Achievement, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	ensureID(&a.ID)
	ensureTime(&a.CreatedAt)
	r.db.achievements[a.ID] = *a
	return a, nil
}

func (r *AchievementRepository) Get(_ context.Context, id string) (*entity.Achievement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, ok := r.db.achievements[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &a, nil
}

func (r *AchievementRepository) ListByClub(_ context.Context, clubID string) ([]entity.Achievement, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var achievements []entity.Achievement
	for _, a := range r.db.achievements {
		if a.ClubID == clubID {
			achievements = append(achievements, a)
		}
	}
	sort.Slice(achievements, func(i, j int) bool {
		return achievements[i].AchievementDate.After(achievements[j].AchievementDate)
	})
	return achievements, nil
}

func (r *AchievementRepository) Update(_ context.Context, a *entity.Achievement) (*entity.Achievement, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.achievements[a.ID]; !ok {
		return nil, errs.ErrNotFound
	}
	r.db.achievements[a.ID] = *a
	return a, nil
}

func (r *AchievementRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.achievements, id)
	return nil
}

type LeadershipRepository struct {
	db *DB
}

func NewLeadershipRepository(db *DB) *LeadershipRepository {
	return &LeadershipRepository{db: db}
}

func (r *LeadershipRepository) Create(_ context.Context, l *entity.ClubLeadership) (*entity.ClubLeadership, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	ensureID(&l.ID)
	ensureTime(&l.CreatedAt)
	r.db.leaderships[l.ID] = *l
	return l, nil
}

func (r *LeadershipRepository) Get(_ context.Context, id string) (*entity.ClubLeadership, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	l, ok := r.db.leaderships[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &l, nil
}

func (r *LeadershipRepository) ListByClub(_ context.Context, clubID string) ([]entity.ClubLeadership, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var leaders []entity.ClubLeadership
	for _, l := range r.db.leaderships {
		if l.ClubID == clubID {
			leaders = append(leaders, l)
		}
	}
	sort.Slice(leaders, func(i, j int) bool { return leaders[i].CreatedAt.Before(leaders[j].CreatedAt) })
	return leaders, nil
}

func (r *LeadershipRepository) Update(_ context.Context, l *entity.ClubLeadership) (*entity.ClubLeadership, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.leaderships[l.ID]; !ok {
		return nil, errs.ErrNotFound
	}
	r.db.leaderships[l.ID] = *l
	return l, nil
}

func (r *LeadershipRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.leaderships, id)
	return nil
}
