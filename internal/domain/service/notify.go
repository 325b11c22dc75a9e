package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/ports/secondary"
	"github.com/campushub/clubhub/pkg/logger"
)

// NotifyService sends announcement and event-reminder email. Delivery is
// best effort: a failed recipient is logged and the rest still get their
// mail.
type NotifyService struct {
	announcementRepo secondary.AnnouncementRepository
	studentRepo      secondary.StudentRepository
	membershipRepo   secondary.MembershipRepository
	eventRepo        secondary.EventRepository
	registrationRepo secondary.RegistrationRepository
	smtp             secondary.SMTPClient

	cron           *cron.Cron
	reminderSpec   string
	reminderWindow time.Duration
}

func NewNotifyService(
	announcementRepo secondary.AnnouncementRepository,
	studentRepo secondary.StudentRepository,
	membershipRepo secondary.MembershipRepository,
	eventRepo secondary.EventRepository,
	registrationRepo secondary.RegistrationRepository,
	smtp secondary.SMTPClient,
	reminderSpec string,
	reminderWindow time.Duration,
) *NotifyService {
	return &NotifyService{
		announcementRepo: announcementRepo,
		studentRepo:      studentRepo,
		membershipRepo:   membershipRepo,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		smtp:             smtp,
		cron:             cron.New(),
		reminderSpec:     reminderSpec,
		reminderWindow:   reminderWindow,
	}
}

// NotifyAnnouncement emails the announcement to its audience: every enabled
// student for the "all" target, the approved members for a club target.
func (s *NotifyService) NotifyAnnouncement(ctx context.Context, announcementID string) error {
	announcement, err := s.announcementRepo.Get(ctx, announcementID)
	if err != nil {
		return err
	}

	recipients, err := s.announcementRecipients(ctx, announcement)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Announcement: %s", announcement.Title)
	var firstErr error
	for _, to := range recipients {
		if sendErr := s.smtp.Send(ctx, to, subject, announcement.Content); sendErr != nil {
			logger.Log.Errorf("send announcement %s to %s: %v", announcement.ID, to, sendErr)
			if firstErr == nil {
				firstErr = sendErr
			}
		}
	}
	return firstErr
}

func (s *NotifyService) announcementRecipients(ctx context.Context, a *entity.Announcement) ([]string, error) {
	if a.Target == entity.AnnouncementTargetAll {
		students, err := s.studentRepo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		var emails []string
		for _, student := range students {
			if !student.IsDisabled {
				emails = append(emails, student.Email)
			}
		}
		return emails, nil
	}

	memberships, err := s.membershipRepo.ListByClub(ctx, a.Target)
	if err != nil {
		return nil, err
	}
	var emails []string
	for _, m := range memberships {
		if m.Status == entity.MembershipApproved {
			emails = append(emails, m.Student.Email)
		}
	}
	return emails, nil
}

// StartReminderScheduler schedules the periodic pass over events starting
// within the reminder window.
func (s *NotifyService) StartReminderScheduler() error {
	_, err := s.cron.AddFunc(s.reminderSpec, func() {
		if sendErr := s.sendEventReminders(context.Background()); sendErr != nil {
			logger.Log.Errorf("event reminder pass: %v", sendErr)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule event reminders: %w", err)
	}

	s.cron.Start()
	logger.Log.Info("Event reminder scheduler started")
	return nil
}

func (s *NotifyService) StopReminderScheduler() {
	s.cron.Stop()
	logger.Log.Info("Event reminder scheduler stopped")
}

func (s *NotifyService) sendEventReminders(ctx context.Context) error {
	now := time.Now()
	events, err := s.eventRepo.GetStartingBetween(ctx, now, now.Add(s.reminderWindow))
	if err != nil {
		return err
	}

	for _, event := range events {
		registrations, listErr := s.registrationRepo.ListByEvent(ctx, event.ID)
		if listErr != nil {
			logger.Log.Errorf("list registrations for event %s: %v", event.ID, listErr)
			continue
		}

		subject := fmt.Sprintf("Reminder: %s starts soon", event.Title)
		body := fmt.Sprintf(
			"Hi! This is a reminder that %s by %s starts at %s, %s.",
			event.Title, event.ClubName, event.StartsAt().Format("15:04 on 02 Jan 2006"), event.Location,
		)
		for _, registration := range registrations {
			if sendErr := s.smtp.Send(ctx, registration.Student.Email, subject, body); sendErr != nil {
				logger.Log.Errorf("send reminder for event %s to %s: %v", event.ID, registration.Student.Email, sendErr)
			}
		}
	}
	return nil
}
