package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/internal/domain/entity"
)

// TestStudentJourney walks one student through the full flow: join a club,
// get approved, register for its event, attend, earn points.
func TestStudentJourney(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")
	event := env.createEvent(t, club, "Arduino Night")

	// Join request, approved by the club admin.
	membership, err := env.memberships.Request(ctx, student.ID, club.ID, "I build robots")
	require.NoError(t, err)
	_, err = env.memberships.Decide(ctx, clubAdmin(club.ID), membership.ID, entity.MembershipApproved)
	require.NoError(t, err)
	require.Equal(t, 1, env.getClub(t, club.ID).MemberCount)

	// Event registration; the approved membership suppresses a second one.
	registration, err := env.registrations.Register(ctx, student.ID, event.ID)
	require.NoError(t, err)
	memberships, err := env.memberships.ListForStudent(ctx, student.EnrollmentNumber)
	require.NoError(t, err)
	require.Len(t, memberships, 1)

	// Attendance and the follow-up award.
	present := entity.AttendancePresent
	marked, err := env.registrations.MarkAttendance(ctx, clubAdmin(club.ID), registration.ID, &present, nil)
	require.NoError(t, err)
	assert.True(t, marked.Attended)

	_, err = env.points.AwardAttendance(ctx, clubAdmin(club.ID), student.ID)
	require.NoError(t, err)

	summary, err := env.points.Summary(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AttendanceAwardPoints, summary.TotalPoints)
	assert.Equal(t, 1, summary.Rank)
	require.Len(t, summary.Clubs, 1)
	assert.Equal(t, club.ID, summary.Clubs[0].ClubID)
	assert.Equal(t, "Robotics", summary.Clubs[0].ClubName)
}
