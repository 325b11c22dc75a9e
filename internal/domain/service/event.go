package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
	"github.com/campushub/clubhub/internal/ports/secondary"
)

// defaultEventDuration pads the calendar entry when only a start is known.
const defaultEventDuration = 2 * time.Hour

type EventService struct {
	repo     secondary.EventRepository
	clubRepo secondary.ClubRepository
	baseURL  string
}

func NewEventService(storage secondary.EventRepository, clubRepo secondary.ClubRepository, baseURL string) *EventService {
	return &EventService{
		repo:     storage,
		clubRepo: clubRepo,
		baseURL:  baseURL,
	}
}

func (s *EventService) Create(ctx context.Context, actor dto.Identity, event *entity.Event) (*entity.Event, error) {
	if err := s.authorize(actor, event.ClubID); err != nil {
		return nil, err
	}

	club, err := s.clubRepo.Get(ctx, event.ClubID)
	if err != nil {
		return nil, err
	}

	event.ID = uuid.NewString()
	event.ClubName = club.Name
	return s.repo.Create(ctx, event)
}

func (s *EventService) Get(ctx context.Context, id string) (*entity.Event, error) {
	return s.repo.Get(ctx, id)
}

func (s *EventService) GetAll(ctx context.Context) ([]entity.Event, error) {
	return s.repo.GetAll(ctx)
}

func (s *EventService) GetByClubID(ctx context.Context, clubID string) ([]entity.Event, error) {
	return s.repo.GetByClubID(ctx, clubID)
}

func (s *EventService) Update(ctx context.Context, actor dto.Identity, event *entity.Event) (*entity.Event, error) {
	current, err := s.repo.Get(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if err = s.authorize(actor, current.ClubID); err != nil {
		return nil, err
	}

	// Events do not move between clubs.
	event.ClubID = current.ClubID
	event.ClubName = current.ClubName
	event.CreatedAt = current.CreatedAt

	return s.repo.Update(ctx, event)
}

func (s *EventService) Delete(ctx context.Context, actor dto.Identity, id string) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = s.authorize(actor, current.ClubID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Calendar renders the event as a single-entry iCalendar document.
func (s *EventService) Calendar(ctx context.Context, id string) (string, error) {
	event, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	start := event.StartsAt()
	entry := cal.AddEvent(event.ID)
	entry.SetCreatedTime(event.CreatedAt)
	entry.SetStartAt(start)
	entry.SetEndAt(start.Add(defaultEventDuration))
	entry.SetSummary(event.Title)
	entry.SetDescription(event.Description)
	entry.SetLocation(event.Location)
	entry.SetOrganizer(event.ClubName)

	return cal.Serialize(), nil
}

// CheckInQR renders the event's check-in URL as a PNG QR code.
func (s *EventService) CheckInQR(ctx context.Context, id string) ([]byte, error) {
	event, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	checkInURL := fmt.Sprintf("%s/events/%s/check-in", s.baseURL, event.ID)
	png, err := qrcode.Encode(checkInURL, qrcode.Medium, 512)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

func (s *EventService) authorize(actor dto.Identity, clubID string) error {
	if actor.IsUniversityAdmin() {
		return nil
	}
	if actor.IsClubAdmin() && actor.ClubID == clubID {
		return nil
	}
	return errs.ErrForbidden
}
