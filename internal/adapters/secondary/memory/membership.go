package memory

import (
	"context"
	"sort"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type MembershipRepository struct {
	db *DB
}

func NewMembershipRepository(db *DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) CreateIfNoActive(_ context.Context, m *entity.ClubMembership) (*entity.ClubMembership, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.memberships {
		if existing.EnrollmentNumber == m.EnrollmentNumber && existing.ClubID == m.ClubID && existing.Status.Active() {
			existing := existing
			return &existing, errs.Conflictf("membership already %s", existing.Status)
		}
	}
	ensureID(&m.ID)
	ensureTime(&m.CreatedAt)
	r.db.memberships[m.ID] = *m
	return m, nil
}

func (r *MembershipRepository) Get(_ context.Context, id string) (*entity.ClubMembership, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	m, ok := r.db.memberships[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &m, nil
}

func (r *MembershipRepository) Decide(_ context.Context, id string, target entity.MembershipStatus, at time.Time) (*entity.ClubMembership, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	m, ok := r.db.memberships[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if m.Status != entity.MembershipPending {
		return nil, errs.Conflictf("membership is %s, only pending requests can be decided", m.Status)
	}

	m.Status = target
	if target == entity.MembershipApproved {
		m.JoinedAt = &at
		if c, ok := r.db.clubs[m.ClubID]; ok {
			c.MemberCount++
			r.db.clubs[m.ClubID] = c
		}
	}
	r.db.memberships[id] = m
	return &m, nil
}

func (r *MembershipRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	m, ok := r.db.memberships[id]
	if !ok {
		return errs.ErrNotFound
	}
	delete(r.db.memberships, id)
	if m.Status == entity.MembershipApproved {
		if c, ok := r.db.clubs[m.ClubID]; ok && c.MemberCount > 0 {
			c.MemberCount--
			r.db.clubs[m.ClubID] = c
		}
	}
	return nil
}

func (r *MembershipRepository) HasActive(_ context.Context, enrollment, clubID string) (bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, m := range r.db.memberships {
		if m.EnrollmentNumber == enrollment && m.ClubID == clubID && m.Status.Active() {
			return true, nil
		}
	}
	return false, nil
}

func (r *MembershipRepository) ListByEnrollment(_ context.Context, enrollment string) ([]entity.ClubMembership, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.sorted(func(m entity.ClubMembership) bool { return m.EnrollmentNumber == enrollment }), nil
}

func (r *MembershipRepository) ListByClub(_ context.Context, clubID string) ([]entity.ClubMembership, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.sorted(func(m entity.ClubMembership) bool { return m.ClubID == clubID }), nil
}

func (r *MembershipRepository) ListApprovedClubIDs(_ context.Context, enrollment string) ([]string, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var ids []string
	for _, m := range r.db.memberships {
		if m.EnrollmentNumber == enrollment && m.Status == entity.MembershipApproved {
			ids = append(ids, m.ClubID)
		}
	}
	return ids, nil
}

func (r *MembershipRepository) CountByStatus(_ context.Context, status entity.MembershipStatus) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var count int64
	for _, m := range r.db.memberships {
		if m.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *MembershipRepository) ApprovedCountsByClub(_ context.Context) (map[string]int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[string]int64)
	for _, m := range r.db.memberships {
		if m.Status == entity.MembershipApproved {
			counts[m.ClubID]++
		}
	}
	return counts, nil
}

func (r *MembershipRepository) MonthlyNewCounts(_ context.Context, since time.Time) ([]dto.MonthCount, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[string]int64)
	for _, m := range r.db.memberships {
		if !m.CreatedAt.Before(since) {
			counts[m.CreatedAt.Format("2006-01")]++
		}
	}
	result := make([]dto.MonthCount, 0, len(counts))
	for month, count := range counts {
		result = append(result, dto.MonthCount{Month: month, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result, nil
}

func (r *MembershipRepository) sorted(keep func(entity.ClubMembership) bool) []entity.ClubMembership {
	var memberships []entity.ClubMembership
	for _, m := range r.db.memberships {
		if keep(m) {
			memberships = append(memberships, m)
		}
	}
	sort.Slice(memberships, func(i, j int) bool { return memberships[i].CreatedAt.After(memberships[j].CreatedAt) })
	return memberships
}
