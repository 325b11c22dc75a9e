package service

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

func TestClubCreateRequiresUniversityAdmin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.clubs.Create(ctx, clubAdmin("some-club"), &entity.Club{Name: "Robotics"})
	assert.True(t, errors.Is(err, errs.ErrForbidden))

	club, err := env.clubs.Create(ctx, universityAdmin(), &entity.Club{Name: "Robotics", MemberCount: 99})
	require.NoError(t, err)
	assert.Zero(t, club.MemberCount)
	assert.NotEmpty(t, club.ID)
}

func TestClubUpdatePreservesMemberCount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	club := env.createClub(t, "Robotics")
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")

	membership, err := env.memberships.Request(ctx, student.ID, club.ID, "Interested")
	require.NoError(t, err)
	_, err = env.memberships.Decide(ctx, clubAdmin(club.ID), membership.ID, entity.MembershipApproved)
	require.NoError(t, err)

	edited := *club
	edited.Name = "Robotics Society"
	edited.MemberCount = 0
	updated, err := env.clubs.Update(ctx, clubAdmin(club.ID), &edited)
	require.NoError(t, err)
	assert.Equal(t, "Robotics Society", updated.Name)
	assert.Equal(t, 1, updated.MemberCount)

	// A different club's admin may not edit it.
	other := env.createClub(t, "Drama")
	_, err = env.clubs.Update(ctx, clubAdmin(other.ID), &edited)
	assert.True(t, errors.Is(err, errs.ErrForbidden))
}

func TestClubDeleteRequiresUniversityAdmin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	club := env.createClub(t, "Robotics")

	err := env.clubs.Delete(ctx, clubAdmin(club.ID), club.ID)
	assert.True(t, errors.Is(err, errs.ErrForbidden))

	require.NoError(t, env.clubs.Delete(ctx, universityAdmin(), club.ID))
	_, err = env.clubs.Get(ctx, club.ID)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestEventCreateDenormalizesClubName(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	club := env.createClub(t, "Robotics")

	event := env.createEvent(t, club, "Arduino Night")
	assert.Equal(t, "Robotics", event.ClubName)

	// Club admins only create events for their own club.
	_, err := env.events.Create(ctx, clubAdmin("someone-else"), &entity.Event{
		Title:  "Hijack",
		Date:   testEventDate,
		ClubID: club.ID,
	})
	assert.True(t, errors.Is(err, errs.ErrForbidden))
}

func TestEventUpdateKeepsClub(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	club := env.createClub(t, "Robotics")
	other := env.createClub(t, "Drama")
	event := env.createEvent(t, club, "Arduino Night")

	edited := *event
	edited.Title = "Arduino Night II"
	edited.ClubID = other.ID
	updated, err := env.events.Update(ctx, clubAdmin(club.ID), &edited)
	require.NoError(t, err)
	assert.Equal(t, "Arduino Night II", updated.Title)
	assert.Equal(t, club.ID, updated.ClubID)
	assert.Equal(t, "Robotics", updated.ClubName)
}

func TestEventCalendar(t *testing.T) {
	env := newTestEnv()
	club := env.createClub(t, "Robotics")
	event := env.createEvent(t, club, "Arduino Night")

	document, err := env.events.Calendar(context.Background(), event.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(document, "BEGIN:VCALENDAR"))
	assert.Contains(t, document, "SUMMARY:Arduino Night")
	assert.Contains(t, document, "LOCATION:Main Hall")
}

func TestEventCheckInQR(t *testing.T) {
	env := newTestEnv()
	club := env.createClub(t, "Robotics")
	event := env.createEvent(t, club, "Arduino Night")

	png, err := env.events.CheckInQR(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	_, err = env.events.CheckInQR(context.Background(), "missing")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
