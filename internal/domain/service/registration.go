package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/primary"
	"github.com/campushub/clubhub/internal/ports/secondary"
	"github.com/campushub/clubhub/pkg/logger"
)

// RegistrationService owns event registration and attendance. Registering
// for an event also files a pending membership request with the hosting club
// unless the student already has an active one.
type RegistrationService struct {
	repo        secondary.RegistrationRepository
	studentRepo secondary.StudentRepository
	eventRepo   secondary.EventRepository
	memberships primary.MembershipService
}

func NewRegistrationService(
	storage secondary.RegistrationRepository,
	studentRepo secondary.StudentRepository,
	eventRepo secondary.EventRepository,
	memberships primary.MembershipService,
) *RegistrationService {
	return &RegistrationService{
		repo:        storage,
		studentRepo: studentRepo,
		eventRepo:   eventRepo,
		memberships: memberships,
	}
}

func (s *RegistrationService) Register(ctx context.Context, studentID, eventID string) (*entity.EventRegistration, error) {
	student, err := s.studentRepo.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	registration := &entity.EventRegistration{
		ID:               uuid.NewString(),
		EventID:          event.ID,
		EnrollmentNumber: student.EnrollmentNumber,
		StudentID:        student.ID,
		Student: entity.Snapshot{
			AsOf:  time.Now(),
			Name:  student.Name,
			Email: student.Email,
		},
		Department:       student.Branch,
		EventTitle:       event.Title,
		ClubID:           event.ClubID,
		AttendanceStatus: entity.AttendancePending,
	}

	created, err := s.repo.Create(ctx, registration)
	if err != nil {
		return nil, err
	}

	// The membership side effect must not undo a committed registration.
	if _, err = s.memberships.EnsureForEvent(ctx, student, event); err != nil {
		logger.Log.Errorf("auto membership request for event %s, student %s: %v", event.ID, student.ID, err)
	}

	return created, nil
}

func (s *RegistrationService) MarkAttendance(ctx context.Context, actor dto.Identity, registrationID string, status *entity.AttendanceStatus, attended *bool) (*entity.EventRegistration, error) {
	registration, err := s.repo.Get(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if err = s.authorizeClub(actor, registration.ClubID); err != nil {
		return nil, err
	}

	normalized, err := entity.NormalizeAttendance(status, attended)
	if err != nil {
		return nil, err
	}

	return s.repo.MarkAttendance(ctx, registrationID, normalized, actor.SubjectID, time.Now())
}

func (s *RegistrationService) ListForEvent(ctx context.Context, actor dto.Identity, eventID string) ([]entity.EventRegistration, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err = s.authorizeClub(actor, event.ClubID); err != nil {
		return nil, err
	}
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *RegistrationService) ListForStudent(ctx context.Context, enrollment string) ([]entity.EventRegistration, error) {
	return s.repo.ListByEnrollment(ctx, enrollment)
}

// ExportForEvent renders the event's registration sheet as an xlsx workbook
// and returns the buffer plus a download filename.
func (s *RegistrationService) ExportForEvent(ctx context.Context, actor dto.Identity, eventID string) (*bytes.Buffer, string, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, "", err
	}
	if err = s.authorizeClub(actor, event.ClubID); err != nil {
		return nil, "", err
	}

	registrations, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Log.Errorf("close xlsx file: %v", closeErr)
		}
	}()

	sheetName := "Registrations"
	if err = f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("set sheet name: %w", err)
	}

	headers := []string{"Name", "Enrollment", "Email", "Department", "Registered At", "Attendance", "Marked At", "Marked By"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err = f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, "", fmt.Errorf("set header cell: %w", err)
		}
	}

	for row, registration := range registrations {
		markedAt := ""
		if registration.AttendanceMarkedAt != nil {
			markedAt = registration.AttendanceMarkedAt.Format("2006-01-02 15:04")
		}
		data := []any{
			registration.Student.Name,
			registration.EnrollmentNumber,
			registration.Student.Email,
			registration.Department,
			registration.CreatedAt.Format("2006-01-02 15:04"),
			string(registration.AttendanceStatus),
			markedAt,
			registration.AttendanceMarkedBy,
		}
		for i, value := range data {
			cell, _ := excelize.CoordinatesToCellName(i+1, row+2)
			if err = f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, "", fmt.Errorf("set cell value: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err = f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write xlsx: %w", err)
	}

	filename := fmt.Sprintf("registrations_%s.xlsx", event.Date.Format("2006-01-02"))
	return &buf, filename, nil
}

func (s *RegistrationService) authorizeClub(actor dto.Identity, clubID string) error {
	if actor.IsUniversityAdmin() {
		return nil
	}
	if actor.IsClubAdmin() && actor.ClubID == clubID {
		return nil
	}
	return errs.ErrForbidden
}
