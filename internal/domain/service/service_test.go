package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/internal/adapters/secondary/memory"
	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
)

const testSessionTTL = time.Hour

var testEventDate = time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	db *memory.DB

	studentRepo      *memory.StudentRepository
	adminRepo        *memory.AdminRepository
	clubRepo         *memory.ClubRepository
	eventRepo        *memory.EventRepository
	membershipRepo   *memory.MembershipRepository
	registrationRepo *memory.RegistrationRepository
	pointsRepo       *memory.PointsRepository
	announcementRepo *memory.AnnouncementRepository

	auth          *AuthService
	students      *StudentService
	clubs         *ClubService
	events        *EventService
	memberships   *MembershipService
	registrations *RegistrationService
	points        *PointsService
	analytics     *AnalyticsService
	announcements *AnnouncementService
	reconcile     *ReconcileService
}

func newTestEnv() *testEnv {
	db := memory.NewDB()
	env := &testEnv{
		db:               db,
		studentRepo:      memory.NewStudentRepository(db),
		adminRepo:        memory.NewAdminRepository(db),
		clubRepo:         memory.NewClubRepository(db),
		eventRepo:        memory.NewEventRepository(db),
		membershipRepo:   memory.NewMembershipRepository(db),
		registrationRepo: memory.NewRegistrationRepository(db),
		pointsRepo:       memory.NewPointsRepository(db),
		announcementRepo: memory.NewAnnouncementRepository(db),
	}

	env.auth = NewAuthService(env.studentRepo, env.adminRepo, memory.NewSessionStore(), testSessionTTL)
	env.students = NewStudentService(env.studentRepo)
	env.clubs = NewClubService(env.clubRepo)
	env.events = NewEventService(env.eventRepo, env.clubRepo, "http://localhost:8080")
	env.memberships = NewMembershipService(env.membershipRepo, env.studentRepo, env.clubRepo)
	env.registrations = NewRegistrationService(env.registrationRepo, env.studentRepo, env.eventRepo, env.memberships)
	env.points = NewPointsService(env.pointsRepo, env.studentRepo, env.clubRepo)
	env.analytics = NewAnalyticsService(env.clubRepo, env.eventRepo, env.studentRepo, env.membershipRepo, env.registrationRepo)
	env.announcements = NewAnnouncementService(env.announcementRepo, env.clubRepo, env.membershipRepo)
	env.reconcile = NewReconcileService(env.clubRepo, env.membershipRepo, "30 3 * * *")
	return env
}

func (e *testEnv) createStudent(t *testing.T, name, email, enrollment string) *entity.Student {
	t.Helper()
	student, err := e.auth.StudentSignup(context.Background(), &entity.Student{
		Name:             name,
		Email:            email,
		EnrollmentNumber: enrollment,
		Branch:           "CSE",
	}, "secret123")
	require.NoError(t, err)
	return student
}

func (e *testEnv) createClub(t *testing.T, name string) *entity.Club {
	t.Helper()
	club, err := e.clubs.Create(context.Background(), universityAdmin(), &entity.Club{
		Name:     name,
		Category: "tech",
	})
	require.NoError(t, err)
	return club
}

func (e *testEnv) createEvent(t *testing.T, club *entity.Club, title string) *entity.Event {
	t.Helper()
	event, err := e.events.Create(context.Background(), clubAdmin(club.ID), &entity.Event{
		Title:    title,
		Date:     testEventDate,
		Time:     "18:00",
		Location: "Main Hall",
		Category: "workshop",
		ClubID:   club.ID,
	})
	require.NoError(t, err)
	return event
}

func (e *testEnv) getClub(t *testing.T, id string) *entity.Club {
	t.Helper()
	club, err := e.clubRepo.Get(context.Background(), id)
	require.NoError(t, err)
	return club
}

func universityAdmin() dto.Identity {
	return dto.Identity{
		Kind:      dto.IdentityUniversityAdmin,
		SubjectID: "admin-uni",
		Name:      "university",
	}
}

func clubAdmin(clubID string) dto.Identity {
	return dto.Identity{
		Kind:      dto.IdentityClubAdmin,
		SubjectID: "admin-" + clubID,
		ClubID:    clubID,
		Name:      "club-admin",
	}
}

func studentIdentity(s *entity.Student) dto.Identity {
	return dto.Identity{
		Kind:             dto.IdentityStudent,
		SubjectID:        s.ID,
		EnrollmentNumber: s.EnrollmentNumber,
		Name:             s.Name,
	}
}
