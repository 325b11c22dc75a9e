package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/gomail.v2"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/campushub/clubhub/internal/adapters/config"
	httpAdapter "github.com/campushub/clubhub/internal/adapters/primary/http"
	"github.com/campushub/clubhub/internal/adapters/secondary/postgres"
	"github.com/campushub/clubhub/internal/adapters/secondary/redis"
	"github.com/campushub/clubhub/internal/adapters/secondary/smtp"
	"github.com/campushub/clubhub/internal/domain/service"
	"github.com/campushub/clubhub/internal/ports/primary"
	"github.com/campushub/clubhub/internal/ports/secondary"
	"github.com/campushub/clubhub/pkg/logger"
)

type serviceProvider struct {
	// Configuration
	cfg *config.Config

	// Infrastructure
	db         *gorm.DB
	sessions   secondary.SessionStore
	smtpDialer *gomail.Dialer
	smtpClient secondary.SMTPClient

	// Storage layer
	studentRepo      secondary.StudentRepository
	adminRepo        secondary.AdminRepository
	clubRepo         secondary.ClubRepository
	eventRepo        secondary.EventRepository
	membershipRepo   secondary.MembershipRepository
	registrationRepo secondary.RegistrationRepository
	pointsRepo       secondary.PointsRepository
	achievementRepo  secondary.AchievementRepository
	leadershipRepo   secondary.LeadershipRepository
	announcementRepo secondary.AnnouncementRepository

	// Service layer
	authService         primary.AuthService
	studentService      primary.StudentService
	clubService         primary.ClubService
	eventService        primary.EventService
	membershipService   primary.MembershipService
	registrationService primary.RegistrationService
	pointsService       primary.PointsService
	analyticsService    primary.AnalyticsService
	announcementService primary.AnnouncementService
	achievementService  primary.AchievementService
	leadershipService   primary.LeadershipService
	notifyService       primary.NotifyService
	reconcileService    primary.ReconcileService

	// HTTP server
	server *httpAdapter.Server
}

func newServiceProvider() *serviceProvider {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(fmt.Errorf("failed to create config: %w", err))
	}

	return &serviceProvider{
		cfg: cfg,
	}
}

// Infrastructure dependencies

func (s *serviceProvider) DB() *gorm.DB {
	if s.db == nil {
		var gormConfig *gorm.Config
		if s.cfg.Logger.Debug() {
			newLogger := gormLogger.New(
				log.New(os.Stdout, "\r\n", log.LstdFlags),
				gormLogger.Config{
					SlowThreshold: time.Second,
					LogLevel:      gormLogger.Info,
					Colorful:      true,
				},
			)
			gormConfig = &gorm.Config{
				TranslateError: true,
				Logger:         newLogger,
			}
		} else {
			gormConfig = &gorm.Config{
				TranslateError: true,
			}
		}

		database, err := gorm.Open(postgresDriver.Open(s.cfg.Postgres.DSN()), gormConfig)
		if err != nil {
			panic(fmt.Errorf("failed to connect to the database: %w", err))
		}
		logger.Log.Info("Successfully connected to the database")

		sqlDB, err := database.DB()
		if err != nil {
			panic(fmt.Errorf("failed to get underlying sql.DB: %w", err))
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(1 * time.Minute)

		if err = postgres.Migrate(database); err != nil {
			panic(fmt.Errorf("failed to migrate database: %w", err))
		}

		s.db = database
	}

	return s.db
}

func (s *serviceProvider) Sessions() secondary.SessionStore {
	if s.sessions == nil {
		store, err := redis.NewSessionStore(redis.Options{
			Host:     s.cfg.Redis.Host(),
			Port:     s.cfg.Redis.Port(),
			Password: s.cfg.Redis.Password(),
			DB:       s.cfg.Redis.SessionsDB(),
		})
		if err != nil {
			panic(fmt.Errorf("failed to connect to redis: %w", err))
		}
		s.sessions = store
	}

	return s.sessions
}

func (s *serviceProvider) SMTPDialer() *gomail.Dialer {
	if s.smtpDialer == nil {
		s.smtpDialer = gomail.NewDialer(
			s.cfg.SMTP.Host(),
			s.cfg.SMTP.Port(),
			s.cfg.SMTP.Username(),
			s.cfg.SMTP.Password(),
		)
	}

	return s.smtpDialer
}

func (s *serviceProvider) SMTPClient() secondary.SMTPClient {
	if s.smtpClient == nil {
		s.smtpClient = smtp.NewClient(s.SMTPDialer(), s.cfg.SMTP.From())
	}

	return s.smtpClient
}

// Storage layer

func (s *serviceProvider) StudentRepo() secondary.StudentRepository {
	if s.studentRepo == nil {
		s.studentRepo = postgres.NewStudentRepository(s.DB())
	}

	return s.studentRepo
}

func (s *serviceProvider) AdminRepo() secondary.AdminRepository {
	if s.adminRepo == nil {
		s.adminRepo = postgres.NewAdminRepository(s.DB())
	}

	return s.adminRepo
}

func (s *serviceProvider) ClubRepo() secondary.ClubRepository {
	if s.clubRepo == nil {
		s.clubRepo = postgres.NewClubRepository(s.DB())
	}

	return s.clubRepo
}

func (s *serviceProvider) EventRepo() secondary.EventRepository {
	if s.eventRepo == nil {
		s.eventRepo = postgres.NewEventRepository(s.DB())
	}

	return s.eventRepo
}

func (s *serviceProvider) MembershipRepo() secondary.MembershipRepository {
	if s.membershipRepo == nil {
		s.membershipRepo = postgres.NewMembershipRepository(s.DB())
	}

	return s.membershipRepo
}

func (s *serviceProvider) RegistrationRepo() secondary.RegistrationRepository {
	if s.registrationRepo == nil {
		s.registrationRepo = postgres.NewRegistrationRepository(s.DB())
	}

	return s.registrationRepo
}

func (s *serviceProvider) PointsRepo() secondary.PointsRepository {
	if s.pointsRepo == nil {
		s.pointsRepo = postgres.NewPointsRepository(s.DB())
	}

	return s.pointsRepo
}

func (s *serviceProvider) AchievementRepo() secondary.AchievementRepository {
	if s.achievementRepo == nil {
		s.achievementRepo = postgres.NewAchievementRepository(s.DB())
	}

	return s.achievementRepo
}

func (s *serviceProvider) LeadershipRepo() secondary.LeadershipRepository {
	if s.leadershipRepo == nil {
		s.leadershipRepo = postgres.NewLeadershipRepository(s.DB())
	}

	return s.leadershipRepo
}

func (s *serviceProvider) AnnouncementRepo() secondary.AnnouncementRepository {
	if s.announcementRepo == nil {
		s.announcementRepo = postgres.NewAnnouncementRepository(s.DB())
	}

	return s.announcementRepo
}

// Service layer

func (s *serviceProvider) AuthService() primary.AuthService {
	if s.authService == nil {
		s.authService = service.NewAuthService(
			s.StudentRepo(),
			s.AdminRepo(),
			s.Sessions(),
			s.cfg.Session.TTL(),
		)
	}

	return s.authService
}

func (s *serviceProvider) StudentService() primary.StudentService {
	if s.studentService == nil {
		s.studentService = service.NewStudentService(s.StudentRepo())
	}

	return s.studentService
}

func (s *serviceProvider) ClubService() primary.ClubService {
	if s.clubService == nil {
		s.clubService = service.NewClubService(s.ClubRepo())
	}

	return s.clubService
}

func (s *serviceProvider) EventService() primary.EventService {
	if s.eventService == nil {
		s.eventService = service.NewEventService(
			s.EventRepo(),
			s.ClubRepo(),
			s.cfg.App.BaseURL(),
		)
	}

	return s.eventService
}

func (s *serviceProvider) MembershipService() primary.MembershipService {
	if s.membershipService == nil {
		s.membershipService = service.NewMembershipService(
			s.MembershipRepo(),
			s.StudentRepo(),
			s.ClubRepo(),
		)
	}

	return s.membershipService
}

func (s *serviceProvider) RegistrationService() primary.RegistrationService {
	if s.registrationService == nil {
		s.registrationService = service.NewRegistrationService(
			s.RegistrationRepo(),
			s.StudentRepo(),
			s.EventRepo(),
			s.MembershipService(),
		)
	}

	return s.registrationService
}

func (s *serviceProvider) PointsService() primary.PointsService {
	if s.pointsService == nil {
		s.pointsService = service.NewPointsService(
			s.PointsRepo(),
			s.StudentRepo(),
			s.ClubRepo(),
		)
	}

	return s.pointsService
}

func (s *serviceProvider) AnalyticsService() primary.AnalyticsService {
	if s.analyticsService == nil {
		s.analyticsService = service.NewAnalyticsService(
			s.ClubRepo(),
			s.EventRepo(),
			s.StudentRepo(),
			s.MembershipRepo(),
			s.RegistrationRepo(),
		)
	}

	return s.analyticsService
}

func (s *serviceProvider) AnnouncementService() primary.AnnouncementService {
	if s.announcementService == nil {
		s.announcementService = service.NewAnnouncementService(
			s.AnnouncementRepo(),
			s.ClubRepo(),
			s.MembershipRepo(),
		)
	}

	return s.announcementService
}

func (s *serviceProvider) AchievementService() primary.AchievementService {
	if s.achievementService == nil {
		s.achievementService = service.NewAchievementService(s.AchievementRepo())
	}

	return s.achievementService
}

func (s *serviceProvider) LeadershipService() primary.LeadershipService {
	if s.leadershipService == nil {
		s.leadershipService = service.NewLeadershipService(s.LeadershipRepo())
	}

	return s.leadershipService
}

func (s *serviceProvider) NotifyService() primary.NotifyService {
	if s.notifyService == nil {
		s.notifyService = service.NewNotifyService(
			s.AnnouncementRepo(),
			s.StudentRepo(),
			s.MembershipRepo(),
			s.EventRepo(),
			s.RegistrationRepo(),
			s.SMTPClient(),
			s.cfg.App.ReminderCron(),
			s.cfg.App.ReminderWindow(),
		)
	}

	return s.notifyService
}

func (s *serviceProvider) ReconcileService() primary.ReconcileService {
	if s.reconcileService == nil {
		s.reconcileService = service.NewReconcileService(
			s.ClubRepo(),
			s.MembershipRepo(),
			s.cfg.App.ReconcileCron(),
		)
	}

	return s.reconcileService
}

// HTTP server

func (s *serviceProvider) Server() *httpAdapter.Server {
	if s.server == nil {
		s.server = httpAdapter.NewServer(httpAdapter.Options{
			Addr:         s.cfg.Server.Addr(),
			Debug:        s.cfg.Logger.Debug(),
			CookieSecure: s.cfg.Session.CookieSecure(),

			Auth:          s.AuthService(),
			Students:      s.StudentService(),
			Clubs:         s.ClubService(),
			Events:        s.EventService(),
			Memberships:   s.MembershipService(),
			Registrations: s.RegistrationService(),
			Points:        s.PointsService(),
			Analytics:     s.AnalyticsService(),
			Announcements: s.AnnouncementService(),
			Achievements:  s.AchievementService(),
			Leadership:    s.LeadershipService(),
			Notify:        s.NotifyService(),
		})
	}

	return s.server
}

func (s *serviceProvider) Cfg() *config.Config {
	return s.cfg
}
