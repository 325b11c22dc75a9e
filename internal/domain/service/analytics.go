package service

import (
	"context"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/ports/secondary"
)

const (
	topClubsLimit       = 5
	membershipTrendSpan = 6 // months
)

// AnalyticsService recomputes the dashboard rollups from the store on each
// call. Nothing here is cached or persisted.
type AnalyticsService struct {
	clubRepo         secondary.ClubRepository
	eventRepo        secondary.EventRepository
	studentRepo      secondary.StudentRepository
	membershipRepo   secondary.MembershipRepository
	registrationRepo secondary.RegistrationRepository
}

func NewAnalyticsService(
	clubRepo secondary.ClubRepository,
	eventRepo secondary.EventRepository,
	studentRepo secondary.StudentRepository,
	membershipRepo secondary.MembershipRepository,
	registrationRepo secondary.RegistrationRepository,
) *AnalyticsService {
	return &AnalyticsService{
		clubRepo:         clubRepo,
		eventRepo:        eventRepo,
		studentRepo:      studentRepo,
		membershipRepo:   membershipRepo,
		registrationRepo: registrationRepo,
	}
}

func (s *AnalyticsService) Overview(ctx context.Context) (*dto.AnalyticsOverview, error) {
	overview := &dto.AnalyticsOverview{}
	now := time.Now()

	var err error
	if overview.TotalClubs, err = s.clubRepo.Count(ctx); err != nil {
		return nil, err
	}
	if overview.TotalEvents, err = s.eventRepo.Count(ctx); err != nil {
		return nil, err
	}
	if overview.UpcomingEvents, err = s.eventRepo.CountUpcoming(ctx, now); err != nil {
		return nil, err
	}
	if overview.TotalStudents, err = s.studentRepo.Count(ctx); err != nil {
		return nil, err
	}
	disabled, err := s.studentRepo.CountDisabled(ctx)
	if err != nil {
		return nil, err
	}
	overview.ActiveStudents = overview.TotalStudents - disabled

	if overview.PendingMemberships, err = s.membershipRepo.CountByStatus(ctx, entity.MembershipPending); err != nil {
		return nil, err
	}
	if overview.ApprovedMemberships, err = s.membershipRepo.CountByStatus(ctx, entity.MembershipApproved); err != nil {
		return nil, err
	}

	if overview.TopClubs, err = s.clubRepo.TopByMemberCount(ctx, topClubsLimit); err != nil {
		return nil, err
	}

	since := now.AddDate(0, -membershipTrendSpan, 0)
	if overview.MembershipTrend, err = s.membershipRepo.MonthlyNewCounts(ctx, since); err != nil {
		return nil, err
	}

	if overview.ClubCategories, err = s.clubRepo.CountByCategory(ctx); err != nil {
		return nil, err
	}

	return overview, nil
}

func (s *AnalyticsService) Events(ctx context.Context) (*dto.EventAnalytics, error) {
	analytics := &dto.EventAnalytics{}

	var err error
	if analytics.Total, err = s.eventRepo.Count(ctx); err != nil {
		return nil, err
	}
	if analytics.Upcoming, err = s.eventRepo.CountUpcoming(ctx, time.Now()); err != nil {
		return nil, err
	}
	if analytics.ByCategory, err = s.eventRepo.CountByCategory(ctx); err != nil {
		return nil, err
	}
	if analytics.Registrations, err = s.registrationRepo.Count(ctx); err != nil {
		return nil, err
	}
	if analytics.Attended, err = s.registrationRepo.CountAttended(ctx); err != nil {
		return nil, err
	}

	return analytics, nil
}

func (s *AnalyticsService) Students(ctx context.Context) (*dto.StudentAnalytics, error) {
	analytics := &dto.StudentAnalytics{}

	var err error
	if analytics.Total, err = s.studentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if analytics.Disabled, err = s.studentRepo.CountDisabled(ctx); err != nil {
		return nil, err
	}
	if analytics.ByBranch, err = s.studentRepo.CountByBranch(ctx); err != nil {
		return nil, err
	}

	return analytics, nil
}
