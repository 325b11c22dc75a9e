package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/internal/domain/entity"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// recordingMailer captures outgoing mail and can fail selected recipients.
type recordingMailer struct {
	sent    []sentMail
	failFor map[string]bool
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{failFor: make(map[string]bool)}
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	if m.failFor[to] {
		return errors.New("mailbox unavailable")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (e *testEnv) newNotify(mailer *recordingMailer) *NotifyService {
	return NewNotifyService(
		e.announcementRepo,
		e.studentRepo,
		e.membershipRepo,
		e.eventRepo,
		e.registrationRepo,
		mailer,
		"0 * * * *",
		time.Hour,
	)
}

func TestNotifyAnnouncementToEveryone(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	disabled := env.createStudent(t, "Ravi", "ravi@uni.edu", "EN002")
	_, err := env.students.SetDisabled(ctx, universityAdmin(), disabled.ID, true)
	require.NoError(t, err)

	announcement, err := env.announcements.Create(ctx, universityAdmin(), "Exams", "Library hours extended", "")
	require.NoError(t, err)

	mailer := newRecordingMailer()
	require.NoError(t, env.newNotify(mailer).NotifyAnnouncement(ctx, announcement.ID))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "asha@uni.edu", mailer.sent[0].To)
	assert.Equal(t, "Announcement: Exams", mailer.sent[0].Subject)
	assert.Equal(t, "Library hours extended", mailer.sent[0].Body)
}

func TestNotifyAnnouncementToClubMembers(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	club := env.createClub(t, "Robotics")
	member := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	pending := env.createStudent(t, "Ravi", "ravi@uni.edu", "EN002")
	env.createStudent(t, "Meera", "meera@uni.edu", "EN003")

	membership, err := env.memberships.Request(ctx, member.ID, club.ID, "Interested")
	require.NoError(t, err)
	_, err = env.memberships.Decide(ctx, clubAdmin(club.ID), membership.ID, entity.MembershipApproved)
	require.NoError(t, err)
	_, err = env.memberships.Request(ctx, pending.ID, club.ID, "Interested")
	require.NoError(t, err)

	announcement, err := env.announcements.Create(ctx, clubAdmin(club.ID), "Meet", "Friday 5pm", "")
	require.NoError(t, err)

	mailer := newRecordingMailer()
	require.NoError(t, env.newNotify(mailer).NotifyAnnouncement(ctx, announcement.ID))

	// Only the approved member gets mail; pending requests and outsiders do not.
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "asha@uni.edu", mailer.sent[0].To)
}

func TestNotifyAnnouncementKeepsGoingOnFailure(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	env.createStudent(t, "Ravi", "ravi@uni.edu", "EN002")

	announcement, err := env.announcements.Create(ctx, universityAdmin(), "Exams", "body", "")
	require.NoError(t, err)

	mailer := newRecordingMailer()
	mailer.failFor["asha@uni.edu"] = true

	err = env.newNotify(mailer).NotifyAnnouncement(ctx, announcement.ID)
	require.Error(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ravi@uni.edu", mailer.sent[0].To)
}

func TestEventRemindersCoverRegistrants(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	club := env.createClub(t, "Robotics")
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")

	// One event inside the reminder window, one far out.
	soon, err := env.events.Create(ctx, clubAdmin(club.ID), &entity.Event{
		Title:    "Arduino Night",
		Date:     time.Now().Add(30 * time.Minute),
		Location: "Main Hall",
		ClubID:   club.ID,
	})
	require.NoError(t, err)
	later := env.createEvent(t, club, "Winter Expo")

	_, err = env.registrations.Register(ctx, student.ID, soon.ID)
	require.NoError(t, err)
	_, err = env.registrations.Register(ctx, student.ID, later.ID)
	require.NoError(t, err)

	mailer := newRecordingMailer()
	require.NoError(t, env.newNotify(mailer).sendEventReminders(ctx))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "asha@uni.edu", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Subject, "Arduino Night")
}
