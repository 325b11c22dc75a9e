package service

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/campushub/clubhub/internal/ports/secondary"
	"github.com/campushub/clubhub/pkg/logger"
)

// ReconcileService repairs drift between the cached club member counters and
// the approved membership rows. The workflow keeps the counter consistent
// transactionally; this is the safety net behind it.
type ReconcileService struct {
	clubRepo       secondary.ClubRepository
	membershipRepo secondary.MembershipRepository

	cron *cron.Cron
	spec string
}

func NewReconcileService(
	clubRepo secondary.ClubRepository,
	membershipRepo secondary.MembershipRepository,
	spec string,
) *ReconcileService {
	return &ReconcileService{
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
		cron:           cron.New(),
		spec:           spec,
	}
}

// ReconcileMemberCounts recomputes every club's member count from the
// approved membership rows and overwrites counters that drifted. Returns the
// number of corrected clubs.
func (s *ReconcileService) ReconcileMemberCounts(ctx context.Context) (int, error) {
	counts, err := s.membershipRepo.ApprovedCountsByClub(ctx)
	if err != nil {
		return 0, err
	}
	clubs, err := s.clubRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	corrected := 0
	for _, club := range clubs {
		actual := int(counts[club.ID])
		if club.MemberCount == actual {
			continue
		}
		if err = s.clubRepo.SetMemberCount(ctx, club.ID, actual); err != nil {
			return corrected, fmt.Errorf("set member count for club %s: %w", club.ID, err)
		}
		logger.Log.Warnf("member count drift on club %s: cached %d, actual %d", club.ID, club.MemberCount, actual)
		corrected++
	}
	return corrected, nil
}

func (s *ReconcileService) StartScheduler() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		corrected, runErr := s.ReconcileMemberCounts(context.Background())
		if runErr != nil {
			logger.Log.Errorf("member count reconciliation: %v", runErr)
			return
		}
		if corrected > 0 {
			logger.Log.Infof("member count reconciliation corrected %d clubs", corrected)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule member count reconciliation: %w", err)
	}

	s.cron.Start()
	logger.Log.Info("Member count reconciliation scheduler started")
	return nil
}

func (s *ReconcileService) StopScheduler() {
	s.cron.Stop()
	logger.Log.Info("Member count reconciliation scheduler stopped")
}
