package service

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

func TestMembershipRequestRefusesDuplicate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")

	_, err := env.memberships.Request(ctx, student.ID, club.ID, "  ")
	assert.True(t, errs.IsValidation(err))

	first, err := env.memberships.Request(ctx, student.ID, club.ID, "Interested")
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipPending, first.Status)
	assert.Equal(t, "Asha", first.Student.Name)
	assert.False(t, first.Student.AsOf.IsZero())

	_, err = env.memberships.Request(ctx, student.ID, club.ID, "Again")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConflict))

	rows, err := env.memberships.ListForStudent(ctx, student.EnrollmentNumber)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMembershipRequestSurvivesConcurrentDuplicates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")

	const attempts = 8
	var wg sync.WaitGroup
	errCh := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.memberships.Request(ctx, student.ID, club.ID, "Interested")
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	succeeded := 0
	for err := range errCh {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, errs.ErrConflict))
	}
	assert.Equal(t, 1, succeeded)

	rows, err := env.memberships.ListForStudent(ctx, student.EnrollmentNumber)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMembershipApproveIncrementsMemberCount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")

	membership, err := env.memberships.Request(ctx, student.ID, club.ID, "Interested")
	require.NoError(t, err)

	decided, err := env.memberships.Decide(ctx, clubAdmin(club.ID), membership.ID, entity.MembershipApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipApproved, decided.Status)
	require.NotNil(t, decided.JoinedAt)
	assert.Equal(t, 1, env.getClub(t, club.ID).MemberCount)

	// The record is no longer pending, a second decision must be refused.
	_, err = env.memberships.Decide(ctx, clubAdmin(club.ID), membership.ID, entity.MembershipApproved)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConflict))
	assert.Equal(t, 1, env.getClub(t, club.ID).MemberCount)
}

func TestMembershipRejectAllowsReRequest(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")

	membership, err := env.memberships.Request(ctx, student.ID, club.ID, "Interested")
	require.NoError(t, err)

	rejected, err := env.memberships.Decide(ctx, clubAdmin(club.ID), membership.ID, entity.MembershipRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipRejected, rejected.Status)
	assert.Equal(t, 0, env.getClub(t, club.ID).MemberCount)

	// Rejection is terminal for the row but not for the pair.
	again, err := env.memberships.Request(ctx, student.ID, club.ID, "Second try")
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipPending, again.Status)
	assert.NotEqual(t, membership.ID, again.ID)
}

func TestMembershipDecideChecksOwnership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")
	other := env.createClub(t, "Drama")

	membership, err := env.memberships.Request(ctx, student.ID, club.ID, "Interested")
	require.NoError(t, err)

	_, err = env.memberships.Decide(ctx, clubAdmin(other.ID), membership.ID, entity.MembershipApproved)
	assert.True(t, errors.Is(err, errs.ErrForbidden))

	// A university admin may decide for any club.
	_, err = env.memberships.Decide(ctx, universityAdmin(), membership.ID, entity.MembershipApproved)
	assert.NoError(t, err)
}

func TestMembershipDecideRejectsBadTarget(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")

	membership, err := env.memberships.Request(ctx, student.ID, club.ID, "Interested")
	require.NoError(t, err)

	_, err = env.memberships.Decide(ctx, clubAdmin(club.ID), membership.ID, entity.MembershipPending)
	assert.True(t, errs.IsValidation(err))
}

func TestMembershipDeleteApprovedDecrementsCounter(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")

	membership, err := env.memberships.Request(ctx, student.ID, club.ID, "Interested")
	require.NoError(t, err)
	_, err = env.memberships.Decide(ctx, clubAdmin(club.ID), membership.ID, entity.MembershipApproved)
	require.NoError(t, err)
	require.Equal(t, 1, env.getClub(t, club.ID).MemberCount)

	require.NoError(t, env.memberships.Delete(ctx, clubAdmin(club.ID), membership.ID))
	assert.Equal(t, 0, env.getClub(t, club.ID).MemberCount)
}

func TestReconcileFixesCounterDrift(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")

	membership, err := env.memberships.Request(ctx, student.ID, club.ID, "Interested")
	require.NoError(t, err)
	_, err = env.memberships.Decide(ctx, clubAdmin(club.ID), membership.ID, entity.MembershipApproved)
	require.NoError(t, err)

	// Simulate drift by overwriting the cached counter.
	require.NoError(t, env.clubRepo.SetMemberCount(ctx, club.ID, 42))

	corrected, err := env.reconcile.ReconcileMemberCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, corrected)
	assert.Equal(t, 1, env.getClub(t, club.ID).MemberCount)

	// A clean second pass corrects nothing.
	corrected, err = env.reconcile.ReconcileMemberCounts(ctx)
	require.NoError(t, err)
	assert.Zero(t, corrected)
}
