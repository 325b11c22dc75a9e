package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

type PointsRepository struct {
	db *DB
}

func NewPointsRepository(db *DB) *PointsRepository {
	return &PointsRepository{db: db}
}

func (r *PointsRepository) Award(_ context.Context, studentID, clubID string, points int, badges, skills []string, reason string, at time.Time) (*entity.StudentPoints, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var row entity.StudentPoints
	var found bool
	for _, existing := range r.db.points {
		if existing.StudentID == studentID && existing.ClubID == clubID {
			row = existing
			found = true
			break
		}
	}
	if !found {
		row = entity.StudentPoints{
			ID:        uuid.NewString(),
			CreatedAt: at,
			StudentID: studentID,
			ClubID:    clubID,
		}
	}

	row.Points += points
	row.Badges = entity.MergeBadges(entity.MergeBadges(row.Badges, badges), entity.BadgesFor(row.Points))
	row.Skills = entity.MergeBadges(row.Skills, skills)
	row.LastAwardReason = reason
	row.LastUpdated = at
	r.db.points[row.ID] = row
	return &row, nil
}

func (r *PointsRepository) ListByStudent(_ context.Context, studentID string) ([]entity.StudentPoints, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var rows []entity.StudentPoints
	for _, row := range r.db.points {
		if row.StudentID == studentID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Points > rows[j].Points })
	return rows, nil
}

func (r *PointsRepository) TotalsByStudent(_ context.Context) ([]dto.StudentTotal, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	sums := make(map[string]int)
	for _, row := range r.db.points {
		sums[row.StudentID] += row.Points
	}
	totals := make([]dto.StudentTotal, 0, len(sums))
	for studentID, total := range sums {
		totals = append(totals, dto.StudentTotal{StudentID: studentID, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].StudentID < totals[j].StudentID
	})
	return totals, nil
}
