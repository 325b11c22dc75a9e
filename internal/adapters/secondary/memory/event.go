package memory

import (
	"context"
	"sort"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type EventRepository struct {
	db *DB
}

func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	ensureID(&event.ID)
	ensureTime(&event.CreatedAt)
	r.db.events[event.ID] = *event
	return event, nil
}

func (r *EventRepository) Get(_ context.Context, id string) (*entity.Event, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	e, ok := r.db.events[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &e, nil
}

func (r *EventRepository) GetAll(_ context.Context) ([]entity.Event, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.sortedEvents(func(entity.Event) bool { return true }), nil
}

func (r *EventRepository) GetByClubID(_ context.Context, clubID string) ([]entity.Event, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.sortedEvents(func(e entity.Event) bool { return e.ClubID == clubID }), nil
}

func (r *EventRepository) Update(_ context.Context, event *entity.Event) (*entity.Event, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.events[event.ID]; !ok {
		return nil, errs.ErrNotFound
	}
	r.db.events[event.ID] = *event
	return event, nil
}

func (r *EventRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.events, id)
	return nil
}

func (r *EventRepository) Count(_ context.Context) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return int64(len(r.db.events)), nil
}

func (r *EventRepository) CountUpcoming(_ context.Context, now time.Time) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var count int64
	for _, e := range r.db.events {
		if !e.Date.Before(now) {
			count++
		}
	}
	return count, nil
}

func (r *EventRepository) CountByCategory(_ context.Context) ([]dto.CategoryCount, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[string]int64)
	for _, e := range r.db.events {
		counts[e.Category]++
	}
	return sortedCounts(counts), nil
}

func (r *EventRepository) GetStartingBetween(_ context.Context, from, to time.Time) ([]entity.Event, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.sortedEvents(func(e entity.Event) bool {
		return !e.Date.Before(from) && e.Date.Before(to)
	}), nil
}

func (r *EventRepository) sortedEvents(keep func(entity.Event) bool) []entity.Event {
	var events []entity.Event
	for _, e := range r.db.events {
		if keep(e) {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events
}
