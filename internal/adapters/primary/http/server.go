package http

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/campushub/clubhub/internal/ports/primary"
)

// Options bundles everything the HTTP adapter needs: the services it exposes
// and the transport knobs.
type Options struct {
	Addr         string
	Debug        bool
	CookieSecure bool

	Auth          primary.AuthService
	Students      primary.StudentService
	Clubs         primary.ClubService
	Events        primary.EventService
	Memberships   primary.MembershipService
	Registrations primary.RegistrationService
	Points        primary.PointsService
	Analytics     primary.AnalyticsService
	Announcements primary.AnnouncementService
	Achievements  primary.AchievementService
	Leadership    primary.LeadershipService
	Notify        primary.NotifyService
}

type Server struct {
	echo *echo.Echo
	addr string
}

type appValidator struct {
	validate *validator.Validate
}

func (v *appValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Debug = opts.Debug

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &appValidator{validate: validator.New()}
	e.HTTPErrorHandler = appHTTPErrorHandler

	registerAPI(e, opts)

	return &Server{
		echo: e,
		addr: opts.Addr,
	}
}

func (s *Server) Start() error {
	return s.echo.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func registerAPI(e *echo.Echo, opts Options) {
	g := e.Group("/api")
	guard := newSessionGuard(opts.Auth, opts.CookieSecure)

	registerAuthAPI(g, guard, opts.Auth)
	registerStudentAPI(g, guard, opts.Students)
	registerClubAPI(g, guard, opts.Clubs, opts.Achievements, opts.Leadership, opts.Events)
	registerEventAPI(g, guard, opts.Events)
	registerMembershipAPI(g, guard, opts.Memberships)
	registerRegistrationAPI(g, guard, opts.Registrations)
	registerPointsAPI(g, guard, opts.Points)
	registerAnnouncementAPI(g, guard, opts.Announcements, opts.Notify)
	registerAnalyticsAPI(g, guard, opts.Analytics)
}
