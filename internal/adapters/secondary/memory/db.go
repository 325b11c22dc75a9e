// Package memory implements the secondary ports against in-process maps. It
// backs the test suites and mirrors the postgres adapter's semantics,
// including the duplicate guards and counter side effects.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/clubhub/internal/domain/entity"
)

type DB struct {
	mu sync.RWMutex

	students      map[string]entity.Student
	admins        map[string]entity.Admin
	clubs         map[string]entity.Club
	events        map[string]entity.Event
	memberships   map[string]entity.ClubMembership
	registrations map[string]entity.EventRegistration
	points        map[string]entity.StudentPoints
	achievements  map[string]entity.Achievement
	leaderships   map[string]entity.ClubLeadership
	announcements map[string]entity.Announcement
	reads         map[string]entity.AnnouncementRead
}

func NewDB() *DB {
	return &DB{
		students:      make(map[string]entity.Student),
		admins:        make(map[string]entity.Admin),
		clubs:         make(map[string]entity.Club),
		events:        make(map[string]entity.Event),
		memberships:   make(map[string]entity.ClubMembership),
		registrations: make(map[string]entity.EventRegistration),
		points:        make(map[string]entity.StudentPoints),
		achievements:  make(map[string]entity.Achievement),
		leaderships:   make(map[string]entity.ClubLeadership),
		announcements: make(map[string]entity.Announcement),
		reads:         make(map[string]entity.AnnouncementRead),
	}
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func ensureTime(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC()
	}
}
