package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

func TestAnnouncementTargetScoping(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	club := env.createClub(t, "Robotics")
	other := env.createClub(t, "Drama")

	// A club admin may only post to their own club, default included.
	a, err := env.announcements.Create(ctx, clubAdmin(club.ID), "Meet", "Friday 5pm", "")
	require.NoError(t, err)
	assert.Equal(t, club.ID, a.Target)

	_, err = env.announcements.Create(ctx, clubAdmin(club.ID), "Meet", "body", other.ID)
	assert.True(t, errors.Is(err, errs.ErrForbidden))

	_, err = env.announcements.Create(ctx, clubAdmin(club.ID), "Meet", "body", entity.AnnouncementTargetAll)
	assert.True(t, errors.Is(err, errs.ErrForbidden))

	// University admins default to everyone and may target any existing club.
	a, err = env.announcements.Create(ctx, universityAdmin(), "Exams", "Library hours extended", "")
	require.NoError(t, err)
	assert.Equal(t, entity.AnnouncementTargetAll, a.Target)

	_, err = env.announcements.Create(ctx, universityAdmin(), "Ghost", "body", "no-such-club")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestAnnouncementListForStudent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	robotics := env.createClub(t, "Robotics")
	drama := env.createClub(t, "Drama")

	membership, err := env.memberships.Request(ctx, student.ID, robotics.ID, "Interested")
	require.NoError(t, err)
	_, err = env.memberships.Decide(ctx, clubAdmin(robotics.ID), membership.ID, entity.MembershipApproved)
	require.NoError(t, err)

	_, err = env.announcements.Create(ctx, universityAdmin(), "Campus wide", "body", "")
	require.NoError(t, err)
	_, err = env.announcements.Create(ctx, clubAdmin(robotics.ID), "Robotics only", "body", "")
	require.NoError(t, err)
	_, err = env.announcements.Create(ctx, clubAdmin(drama.ID), "Drama only", "body", "")
	require.NoError(t, err)

	views, err := env.announcements.ListForStudent(ctx, student.EnrollmentNumber)
	require.NoError(t, err)
	require.Len(t, views, 2)

	titles := []string{views[0].Title, views[1].Title}
	assert.Contains(t, titles, "Campus wide")
	assert.Contains(t, titles, "Robotics only")
	for _, v := range views {
		assert.False(t, v.IsRead)
	}
}

func TestAnnouncementMarkReadIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")

	a, err := env.announcements.Create(ctx, universityAdmin(), "Exams", "body", "")
	require.NoError(t, err)

	require.NoError(t, env.announcements.MarkRead(ctx, student.EnrollmentNumber, a.ID))
	require.NoError(t, env.announcements.MarkRead(ctx, student.EnrollmentNumber, a.ID))

	views, err := env.announcements.ListForStudent(ctx, student.EnrollmentNumber)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].IsRead)

	err = env.announcements.MarkRead(ctx, student.EnrollmentNumber, "no-such-announcement")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestAnnouncementPinnedListsFirst(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")

	older, err := env.announcements.Create(ctx, universityAdmin(), "Older", "body", "")
	require.NoError(t, err)
	_, err = env.announcements.Create(ctx, universityAdmin(), "Newer", "body", "")
	require.NoError(t, err)

	pinned := true
	_, err = env.announcements.Update(ctx, universityAdmin(), older.ID, nil, nil, &pinned)
	require.NoError(t, err)

	views, err := env.announcements.ListForStudent(ctx, student.EnrollmentNumber)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Older", views[0].Title)
	assert.True(t, views[0].Pinned)
}

func TestAnnouncementUpdateOwnership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	club := env.createClub(t, "Robotics")
	other := env.createClub(t, "Drama")

	a, err := env.announcements.Create(ctx, clubAdmin(club.ID), "Meet", "body", "")
	require.NoError(t, err)

	title := "Rescheduled"
	_, err = env.announcements.Update(ctx, clubAdmin(other.ID), a.ID, &title, nil, nil)
	assert.True(t, errors.Is(err, errs.ErrForbidden))

	updated, err := env.announcements.Update(ctx, clubAdmin(club.ID), a.ID, &title, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Rescheduled", updated.Title)

	// University admins may manage any announcement.
	require.NoError(t, env.announcements.Delete(ctx, universityAdmin(), a.ID))
	_, err = env.announcementRepo.Get(ctx, a.ID)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
