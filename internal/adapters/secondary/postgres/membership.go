package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{
		db: db,
	}
}

// CreateIfNoActive inserts a pending membership unless the pair already has
// an active one. The pre-check produces the friendly conflict message; the
// real guard under concurrency is the partial unique index
// idx_membership_active, whose duplicate-key error translate maps to
// errs.ErrConflict.
func (r *MembershipRepository) CreateIfNoActive(ctx context.Context, m *entity.ClubMembership) (*entity.ClubMembership, error) {
	var existing entity.ClubMembership
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Where("enrollment_number = ? AND club_id = ? AND status IN ?",
				m.EnrollmentNumber, m.ClubID,
				[]entity.MembershipStatus{entity.MembershipPending, entity.MembershipApproved}).
			First(&existing).Error
		if findErr == nil {
			return errs.Conflictf("membership already %s", existing.Status)
		}
		if findErr != gorm.ErrRecordNotFound {
			return findErr
		}
		return tx.Create(m).Error
	})
	if err != nil {
		if existing.ID != "" {
			return &existing, err
		}
		return nil, translate(err)
	}
	return m, nil
}

func (r *MembershipRepository) Get(ctx context.Context, id string) (*entity.ClubMembership, error) {
	var m entity.ClubMembership
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	return &m, translate(err)
}

// Decide transitions a pending record and, on approval, increments the club's
// cached member count. Both writes happen in one transaction and the status
// update is conditional on the record still being pending, so a repeated call
// cannot double-apply the counter.
func (r *MembershipRepository) Decide(ctx context.Context, id string, target entity.MembershipStatus, at time.Time) (*entity.ClubMembership, error) {
	var m entity.ClubMembership
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{"status": target}
		if target == entity.MembershipApproved {
			updates["joined_at"] = at
		}
		res := tx.Model(&entity.ClubMembership{}).
			Where("id = ? AND status = ?", id, entity.MembershipPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.Conflictf("membership is %s, only pending requests can be decided", m.Status)
		}

		if target == entity.MembershipApproved {
			if err := tx.Model(&entity.Club{}).
				Where("id = ?", m.ClubID).
				Update("member_count", gorm.Expr("member_count + 1")).Error; err != nil {
				return err
			}
		}

		return tx.Where("id = ?", id).First(&m).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// Delete removes the record; deleting an approved membership decrements the
// club counter as compensation, in the same transaction.
func (r *MembershipRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m entity.ClubMembership
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		if m.Status == entity.MembershipApproved {
			return tx.Model(&entity.Club{}).
				Where("id = ? AND member_count > 0", m.ClubID).
				Update("member_count", gorm.Expr("member_count - 1")).Error
		}
		return nil
	})
	return translate(err)
}

func (r *MembershipRepository) HasActive(ctx context.Context, enrollment, clubID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ClubMembership{}).
		Where("enrollment_number = ? AND club_id = ? AND status IN ?",
			enrollment, clubID,
			[]entity.MembershipStatus{entity.MembershipPending, entity.MembershipApproved}).
		Count(&count).Error
	return count > 0, translate(err)
}

func (r *MembershipRepository) ListByEnrollment(ctx context.Context, enrollment string) ([]entity.ClubMembership, error) {
	var memberships []entity.ClubMembership
	err := r.db.WithContext(ctx).
		Where("enrollment_number = ?", enrollment).
		Order("created_at DESC").
		Find(&memberships).Error
	return memberships, translate(err)
}

func (r *MembershipRepository) ListByClub(ctx context.Context, clubID string) ([]entity.ClubMembership, error) {
	var memberships []entity.ClubMembership
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("created_at DESC").
		Find(&memberships).Error
	return memberships, translate(err)
}

func (r *MembershipRepository) ListApprovedClubIDs(ctx context.Context, enrollment string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entity.ClubMembership{}).
		Where("enrollment_number = ? AND status = ?", enrollment, entity.MembershipApproved).
		Pluck("club_id", &ids).Error
	return ids, translate(err)
}

func (r *MembershipRepository) CountByStatus(ctx context.Context, status entity.MembershipStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ClubMembership{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, translate(err)
}

func (r *MembershipRepository) ApprovedCountsByClub(ctx context.Context) (map[string]int64, error) {
	type row struct {
		ClubID string `gorm:"column:club_id"`
		Count  int64  `gorm:"column:count"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.ClubMembership{}).
		Select("club_id, COUNT(*) AS count").
		Where("status = ?", entity.MembershipApproved).
		Group("club_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.ClubID] = r.Count
	}
	return counts, nil
}

func (r *MembershipRepository) MonthlyNewCounts(ctx context.Context, since time.Time) ([]dto.MonthCount, error) {
	type row struct {
		Month time.Time `gorm:"column:month"`
		Count int64     `gorm:"column:count"`
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.ClubMembership{}).
		Select("date_trunc('month', created_at) AS month, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("month").
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	result := make([]dto.MonthCount, len(rows))
	for i, r := range rows {
		result[i] = dto.MonthCount{Month: r.Month.Format("2006-01"), Count: r.Count}
	}
	return result, nil
}
