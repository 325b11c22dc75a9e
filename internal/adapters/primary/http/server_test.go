package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/internal/adapters/secondary/memory"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/service"
)

type nopMailer struct{}

func (nopMailer) Send(context.Context, string, string, string) error { return nil }

type testServer struct {
	server *Server

	db          *memory.DB
	studentRepo *memory.StudentRepository
	adminRepo   *memory.AdminRepository
	clubRepo    *memory.ClubRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := memory.NewDB()
	studentRepo := memory.NewStudentRepository(db)
	adminRepo := memory.NewAdminRepository(db)
	clubRepo := memory.NewClubRepository(db)
	eventRepo := memory.NewEventRepository(db)
	membershipRepo := memory.NewMembershipRepository(db)
	registrationRepo := memory.NewRegistrationRepository(db)
	pointsRepo := memory.NewPointsRepository(db)
	achievementRepo := memory.NewAchievementRepository(db)
	leadershipRepo := memory.NewLeadershipRepository(db)
	announcementRepo := memory.NewAnnouncementRepository(db)

	auth := service.NewAuthService(studentRepo, adminRepo, memory.NewSessionStore(), time.Hour)
	memberships := service.NewMembershipService(membershipRepo, studentRepo, clubRepo)

	server := NewServer(Options{
		Addr: "127.0.0.1:0",

		Auth:          auth,
		Students:      service.NewStudentService(studentRepo),
		Clubs:         service.NewClubService(clubRepo),
		Events:        service.NewEventService(eventRepo, clubRepo, "http://localhost:8080"),
		Memberships:   memberships,
		Registrations: service.NewRegistrationService(registrationRepo, studentRepo, eventRepo, memberships),
		Points:        service.NewPointsService(pointsRepo, studentRepo, clubRepo),
		Analytics:     service.NewAnalyticsService(clubRepo, eventRepo, studentRepo, membershipRepo, registrationRepo),
		Announcements: service.NewAnnouncementService(announcementRepo, clubRepo, membershipRepo),
		Achievements:  service.NewAchievementService(achievementRepo),
		Leadership:    service.NewLeadershipService(leadershipRepo),
		Notify: service.NewNotifyService(
			announcementRepo, studentRepo, membershipRepo, eventRepo, registrationRepo,
			nopMailer{}, "0 * * * *", time.Hour,
		),
	})

	return &testServer{
		server:      server,
		db:          db,
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		clubRepo:    clubRepo,
	}
}

func (ts *testServer) request(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	ts.server.echo.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) seedUniversityAdmin(t *testing.T) {
	t.Helper()
	admin := &entity.Admin{Username: "university"}
	require.NoError(t, admin.SetPassword("adminpass"))
	_, err := ts.adminRepo.Create(context.Background(), admin)
	require.NoError(t, err)
}

func (ts *testServer) seedClubAdmin(t *testing.T, username, clubID string) {
	t.Helper()
	admin := &entity.Admin{Username: username, ClubID: &clubID}
	require.NoError(t, admin.SetPassword("adminpass"))
	_, err := ts.adminRepo.Create(context.Background(), admin)
	require.NoError(t, err)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func (ts *testServer) loginUniversity(t *testing.T) *http.Cookie {
	t.Helper()
	rec := ts.request(t, http.MethodPost, "/api/auth/login", `{"username":"university","password":"adminpass"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	return sessionCookie(t, rec)
}

func (ts *testServer) loginClubAdmin(t *testing.T, username string) *http.Cookie {
	t.Helper()
	rec := ts.request(t, http.MethodPost, "/api/auth/club-login", `{"username":"`+username+`","password":"adminpass"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	return sessionCookie(t, rec)
}

func (ts *testServer) signupAndLoginStudent(t *testing.T) *http.Cookie {
	t.Helper()
	rec := ts.request(t, http.MethodPost, "/api/student/signup",
		`{"name":"Asha","email":"asha@uni.edu","enrollmentNumber":"EN001","branch":"CSE","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.request(t, http.MethodPost, "/api/student/login", `{"email":"asha@uni.edu","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	return sessionCookie(t, rec)
}

func (ts *testServer) createClub(t *testing.T, admin *http.Cookie, name string) string {
	t.Helper()
	rec := ts.request(t, http.MethodPost, "/api/admin/clubs", `{"name":"`+name+`","category":"tech"}`, admin)
	require.Equal(t, http.StatusCreated, rec.Code)

	var club entity.Club
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &club))
	return club.ID
}

func TestLoginSetsSessionCookie(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUniversityAdmin(t)

	rec := ts.request(t, http.MethodPost, "/api/auth/login", `{"username":"university","password":"adminpass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUniversityAdmin(t)

	rec := ts.request(t, http.MethodPost, "/api/auth/login", `{"username":"university","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.request(t, http.MethodPost, "/api/auth/login", `{"username":"university"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodGet, "/api/analytics/overview", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.request(t, http.MethodGet, "/api/student/points", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStudentCannotReachAdminRoutes(t *testing.T) {
	ts := newTestServer(t)
	student := ts.signupAndLoginStudent(t)

	rec := ts.request(t, http.MethodGet, "/api/analytics/overview", "", student)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.request(t, http.MethodPost, "/api/admin/clubs", `{"name":"Robotics"}`, student)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestClubCRUDOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUniversityAdmin(t)
	admin := ts.loginUniversity(t)

	clubID := ts.createClub(t, admin, "Robotics")

	rec := ts.request(t, http.MethodGet, "/api/clubs/"+clubID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var club entity.Club
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &club))
	assert.Equal(t, "Robotics", club.Name)

	rec = ts.request(t, http.MethodGet, "/api/clubs/no-such-club", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJoinFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUniversityAdmin(t)
	admin := ts.loginUniversity(t)
	clubID := ts.createClub(t, admin, "Robotics")
	ts.seedClubAdmin(t, "robotics", clubID)
	clubAdminCookie := ts.loginClubAdmin(t, "robotics")
	student := ts.signupAndLoginStudent(t)

	rec := ts.request(t, http.MethodPost, "/api/clubs/"+clubID+"/join", `{"reason":"I build robots"}`, student)
	require.Equal(t, http.StatusCreated, rec.Code)
	var membership entity.ClubMembership
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &membership))
	assert.Equal(t, entity.MembershipPending, membership.Status)

	// A missing reason is a validation error.
	rec = ts.request(t, http.MethodPost, "/api/clubs/"+clubID+"/join", `{}`, student)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The club admin sees and approves the request.
	rec = ts.request(t, http.MethodGet, "/api/admin/club-memberships", "", clubAdminCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(t, http.MethodPatch, "/api/admin/club-memberships/"+membership.ID, `{"status":"approved"}`, clubAdminCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &membership))
	assert.Equal(t, entity.MembershipApproved, membership.Status)

	// A duplicate join while approved maps to 400.
	rec = ts.request(t, http.MethodPost, "/api/clubs/"+clubID+"/join", `{"reason":"again"}`, student)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWrongClubAdminGetsForbidden(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUniversityAdmin(t)
	admin := ts.loginUniversity(t)
	robotics := ts.createClub(t, admin, "Robotics")
	drama := ts.createClub(t, admin, "Drama")
	ts.seedClubAdmin(t, "drama", drama)
	dramaCookie := ts.loginClubAdmin(t, "drama")
	student := ts.signupAndLoginStudent(t)

	rec := ts.request(t, http.MethodPost, "/api/clubs/"+robotics+"/join", `{"reason":"robots"}`, student)
	require.Equal(t, http.StatusCreated, rec.Code)
	var membership entity.ClubMembership
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &membership))

	rec = ts.request(t, http.MethodPatch, "/api/admin/club-memberships/"+membership.ID, `{"status":"approved"}`, dramaCookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	ts := newTestServer(t)
	student := ts.signupAndLoginStudent(t)

	rec := ts.request(t, http.MethodGet, "/api/student/profile", "", student)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(t, http.MethodPost, "/api/student/logout", "", student)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.request(t, http.MethodGet, "/api/student/profile", "", student)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAnnouncementFlowOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	ts.seedUniversityAdmin(t)
	admin := ts.loginUniversity(t)
	student := ts.signupAndLoginStudent(t)

	rec := ts.request(t, http.MethodPost, "/api/announcements", `{"title":"Exams","content":"Library hours extended"}`, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	var announcement entity.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &announcement))

	rec = ts.request(t, http.MethodGet, "/api/student/announcements", "", student)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isRead":false`)

	rec = ts.request(t, http.MethodPost, "/api/student/announcements/"+announcement.ID+"/read", "", student)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.request(t, http.MethodGet, "/api/student/announcements", "", student)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isRead":true`)
}
