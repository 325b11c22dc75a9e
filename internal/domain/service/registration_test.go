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

func TestRegisterCreatesAutoMembership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")
	event := env.createEvent(t, club, "Arduino Night")

	registration, err := env.registrations.Register(ctx, student.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AttendancePending, registration.AttendanceStatus)
	assert.Equal(t, club.ID, registration.ClubID)
	assert.Equal(t, "Arduino Night", registration.EventTitle)

	memberships, err := env.memberships.ListForStudent(ctx, student.EnrollmentNumber)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, entity.MembershipPending, memberships[0].Status)
	assert.Contains(t, memberships[0].Reason, "Arduino Night")

	// A second event of the same club does not create a second membership
	// while the first is active.
	second := env.createEvent(t, club, "Soldering 101")
	_, err = env.registrations.Register(ctx, student.ID, second.ID)
	require.NoError(t, err)

	memberships, err = env.memberships.ListForStudent(ctx, student.EnrollmentNumber)
	require.NoError(t, err)
	assert.Len(t, memberships, 1)
}

func TestRegisterRefusesDuplicate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")
	event := env.createEvent(t, club, "Arduino Night")

	_, err := env.registrations.Register(ctx, student.ID, event.ID)
	require.NoError(t, err)

	_, err = env.registrations.Register(ctx, student.ID, event.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrConflict))
}

func TestMarkAttendanceOverwrites(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")
	event := env.createEvent(t, club, "Arduino Night")

	registration, err := env.registrations.Register(ctx, student.ID, event.ID)
	require.NoError(t, err)

	present := entity.AttendancePresent
	marked, err := env.registrations.MarkAttendance(ctx, clubAdmin(club.ID), registration.ID, &present, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.AttendancePresent, marked.AttendanceStatus)
	assert.True(t, marked.Attended)
	require.NotNil(t, marked.AttendanceMarkedAt)
	firstMark := *marked.AttendanceMarkedAt

	absent := entity.AttendanceAbsent
	remarked, err := env.registrations.MarkAttendance(ctx, clubAdmin(club.ID), registration.ID, &absent, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceAbsent, remarked.AttendanceStatus)
	assert.False(t, remarked.Attended)
	require.NotNil(t, remarked.AttendanceMarkedAt)
	assert.False(t, remarked.AttendanceMarkedAt.Before(firstMark))
}

func TestMarkAttendanceBoolSynonym(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")
	event := env.createEvent(t, club, "Arduino Night")

	registration, err := env.registrations.Register(ctx, student.ID, event.ID)
	require.NoError(t, err)

	attended := true
	marked, err := env.registrations.MarkAttendance(ctx, clubAdmin(club.ID), registration.ID, nil, &attended)
	require.NoError(t, err)
	assert.Equal(t, entity.AttendancePresent, marked.AttendanceStatus)

	// Neither input form supplied is a validation error.
	_, err = env.registrations.MarkAttendance(ctx, clubAdmin(club.ID), registration.ID, nil, nil)
	assert.True(t, errs.IsValidation(err))
}

func TestMarkAttendanceChecksOwnership(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")
	other := env.createClub(t, "Drama")
	event := env.createEvent(t, club, "Arduino Night")

	registration, err := env.registrations.Register(ctx, student.ID, event.ID)
	require.NoError(t, err)

	present := entity.AttendancePresent
	_, err = env.registrations.MarkAttendance(ctx, clubAdmin(other.ID), registration.ID, &present, nil)
	assert.True(t, errors.Is(err, errs.ErrForbidden))
}

func TestExportForEvent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")
	event := env.createEvent(t, club, "Arduino Night")

	_, err := env.registrations.Register(ctx, student.ID, event.ID)
	require.NoError(t, err)

	buf, filename, err := env.registrations.ExportForEvent(ctx, clubAdmin(club.ID), event.ID)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
	assert.Contains(t, filename, ".xlsx")

	_, _, err = env.registrations.ExportForEvent(ctx, clubAdmin("someone-else"), event.ID)
	assert.True(t, errors.Is(err, errs.ErrForbidden))
}
