package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

type PointsRepository struct {
	db *gorm.DB
}

func NewPointsRepository(db *gorm.DB) *PointsRepository {
	return &PointsRepository{
		db: db,
	}
}

// Award upserts the (student, club) ledger row. The insert accumulates onto
// an existing balance via ON CONFLICT, then the badge union is applied under
// a row lock in the same transaction, so concurrent awards cannot lose
// points or badges.
func (r *PointsRepository) Award(ctx context.Context, studentID, clubID string, points int, badges, skills []string, reason string, at time.Time) (*entity.StudentPoints, error) {
	var row entity.StudentPoints
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := &entity.StudentPoints{
			ID:              uuid.NewString(),
			StudentID:       studentID,
			ClubID:          clubID,
			Points:          points,
			LastAwardReason: reason,
			LastUpdated:     at,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}, {Name: "club_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"points":            gorm.Expr("student_points.points + ?", points),
				"last_award_reason": reason,
				"last_updated":      at,
			}),
		}).Create(insert).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_id = ? AND club_id = ?", studentID, clubID).
			First(&row).Error; err != nil {
			return err
		}

		merged := entity.MergeBadges(row.Badges, badges)
		merged = entity.MergeBadges(merged, entity.BadgesFor(row.Points))
		mergedSkills := entity.MergeBadges(row.Skills, skills)

		return tx.Model(&row).Updates(map[string]interface{}{
			"badges": pq.StringArray(merged),
			"skills": pq.StringArray(mergedSkills),
		}).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *PointsRepository) ListByStudent(ctx context.Context, studentID string) ([]entity.StudentPoints, error) {
	var rows []entity.StudentPoints
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("points DESC").
		Find(&rows).Error
	return rows, translate(err)
}

func (r *PointsRepository) TotalsByStudent(ctx context.Context) ([]dto.StudentTotal, error) {
	var totals []dto.StudentTotal
	err := r.db.WithContext(ctx).
		Model(&entity.StudentPoints{}).
		Select("student_id, SUM(points) AS total").
		Group("student_id").
		Order("total DESC").
		Scan(&totals).Error
	return totals, translate(err)
}
