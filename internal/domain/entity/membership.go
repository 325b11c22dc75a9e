package entity

import (
	"time"

	"github.com/campushub/clubhub/internal/domain/errs"
)

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
	MembershipRejected MembershipStatus = "rejected"
)

// Active reports whether this status blocks a new request for the same
// (student, club) pair. Rejected records do not block re-requests.
func (s MembershipStatus) Active() bool {
	return s == MembershipPending || s == MembershipApproved
}

// Transition validates an admin decision against the current status. Only
// pending records may move, and only to approved or rejected; this is the
// single place the guard lives so call sites cannot diverge.
func (s MembershipStatus) Transition(target MembershipStatus) (MembershipStatus, error) {
	if target != MembershipApproved && target != MembershipRejected {
		return s, errs.Validationf("status must be %q or %q", MembershipApproved, MembershipRejected)
	}
	if s != MembershipPending {
		return s, errs.Conflictf("membership is %s, only pending requests can be decided", s)
	}
	return target, nil
}

// Snapshot is a denormalized copy of another entity's identity taken at
// action time. It is intentionally not kept in sync with the source record.
type Snapshot struct {
	AsOf  time.Time `json:"asOf"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// ClubMembership is one row per (student, club) relationship attempt. At most
// one active (pending or approved) row may exist per pair; the store enforces
// this with a partial unique index over (enrollment_number, club_id) for the
// active statuses, so concurrent requests cannot both insert.
type ClubMembership struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	ClubID           string   `gorm:"not null;type:uuid;index:idx_membership_pair" json:"clubId"`
	EnrollmentNumber string   `gorm:"not null;index:idx_membership_pair" json:"enrollmentNumber"`
	Student          Snapshot `gorm:"embedded;embeddedPrefix:student_" json:"student"`
	Department       string   `json:"department"`

	Reason   string           `gorm:"not null" json:"reason"`
	Status   MembershipStatus `gorm:"not null;default:pending;index" json:"status"`
	JoinedAt *time.Time       `json:"joinedAt,omitempty"`
}
