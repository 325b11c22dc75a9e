package service

import (
	"context"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/secondary"
)

// PointsService owns the per-club point ledger. Awards are club admin
// actions scoped to the admin's own club; rank and totals are computed on
// demand and never persisted.
type PointsService struct {
	repo        secondary.PointsRepository
	studentRepo secondary.StudentRepository
	clubRepo    secondary.ClubRepository
}

func NewPointsService(
	storage secondary.PointsRepository,
	studentRepo secondary.StudentRepository,
	clubRepo secondary.ClubRepository,
) *PointsService {
	return &PointsService{
		repo:        storage,
		studentRepo: studentRepo,
		clubRepo:    clubRepo,
	}
}

func (s *PointsService) Award(ctx context.Context, actor dto.Identity, studentID string, points int, badges, skills []string, reason string) (*entity.StudentPoints, error) {
	if !actor.IsClubAdmin() {
		return nil, errs.ErrForbidden
	}
	if points <= 0 {
		return nil, errs.Validationf("points must be positive")
	}

	if _, err := s.studentRepo.Get(ctx, studentID); err != nil {
		return nil, err
	}

	return s.repo.Award(ctx, studentID, actor.ClubID, points, badges, skills, reason, time.Now())
}

func (s *PointsService) AwardAttendance(ctx context.Context, actor dto.Identity, studentID string) (*entity.StudentPoints, error) {
	return s.Award(ctx, actor, studentID, entity.AttendanceAwardPoints, nil, nil, "Event attendance")
}

func (s *PointsService) Summary(ctx context.Context, studentID string) (*dto.PointsSummary, error) {
	if _, err := s.studentRepo.Get(ctx, studentID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	summary := &dto.PointsSummary{
		StudentID: studentID,
		Clubs:     make([]dto.ClubPoints, 0, len(rows)),
	}
	for _, row := range rows {
		clubName := ""
		if club, clubErr := s.clubRepo.Get(ctx, row.ClubID); clubErr == nil {
			clubName = club.Name
		}
		summary.TotalPoints += row.Points
		summary.Badges = entity.MergeBadges(summary.Badges, row.Badges)
		summary.Clubs = append(summary.Clubs, dto.ClubPoints{
			ClubID:          row.ClubID,
			ClubName:        clubName,
			Points:          row.Points,
			Badges:          row.Badges,
			Skills:          row.Skills,
			LastAwardReason: row.LastAwardReason,
			LastUpdated:     row.LastUpdated,
		})
	}

	rank, err := s.rank(ctx, summary.TotalPoints)
	if err != nil {
		return nil, err
	}
	summary.Rank = rank

	return summary, nil
}

// rank is 1 plus the number of students with a strictly greater total, so
// equal totals share a rank.
func (s *PointsService) rank(ctx context.Context, total int) (int, error) {
	totals, err := s.repo.TotalsByStudent(ctx)
	if err != nil {
		return 0, err
	}
	rank := 1
	for _, t := range totals {
		if t.Total > total {
			rank++
		}
	}
	return rank, nil
}
