package memory

import (
	"context"
	"sort"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type ClubRepository struct {
	db *DB
}

func NewClubRepository(db *DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) Create(_ context.Context, club *entity.Club) (*entity.Club, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, c := range r.db.clubs {
		if c.Name == club.Name {
			return nil, errs.ErrConflict
		}
	}
	ensureID(&club.ID)
	ensureTime(&club.CreatedAt)
	r.db.clubs[club.ID] = *club
	return club, nil
}

func (r *ClubRepository) Get(_ context.Context, id string) (*entity.Club, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.clubs[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &c, nil
}

func (r *ClubRepository) GetAll(_ context.Context) ([]entity.Club, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	clubs := make([]entity.Club, 0, len(r.db.clubs))
	for _, c := range r.db.clubs {
		clubs = append(clubs, c)
	}
	sort.Slice(clubs, func(i, j int) bool { return clubs[i].Name < clubs[j].Name })
	return clubs, nil
}

func (r *ClubRepository) Update(_ context.Context, club *entity.Club) (*entity.Club, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.clubs[club.ID]; !ok {
		return nil, errs.ErrNotFound
	}
	r.db.clubs[club.ID] = *club
	return club, nil
}

func (r *ClubRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.clubs, id)
	return nil
}

func (r *ClubRepository) Count(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.clubs)), nil
}

func (r *ClubRepository) CountByCategory(_ context.Context) ([]dto.CategoryCount, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[string]int64)
	for _, c := range r.db.clubs {
		counts[c.Category]++
	}
	return sortedCounts(counts), nil
}

func (r *ClubRepository) TopByMemberCount(_ context.Context, limit int) ([]dto.ClubRank, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	approved := make(map[string]int64)
	for _, m := range r.db.memberships {
		if m.Status == entity.MembershipApproved {
			approved[m.ClubID]++
		}
	}

	ranks := make([]dto.ClubRank, 0, len(r.db.clubs))
	for _, c := range r.db.clubs {
		ranks = append(ranks, dto.ClubRank{ClubID: c.ID, Name: c.Name, MemberCount: approved[c.ID]})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].MemberCount != ranks[j].MemberCount {
			return ranks[i].MemberCount > ranks[j].MemberCount
		}
		return ranks[i].Name < ranks[j].Name
	})
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks, nil
}

func (r *ClubRepository) SetMemberCount(_ context.Context, id string, count int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.clubs[id]
	if !ok {
		return errs.ErrNotFound
	}
	c.MemberCount = count
	r.db.clubs[id] = c
	return nil
}
