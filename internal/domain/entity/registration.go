package entity

import (
	"time"

	"github.com/campushub/clubhub/internal/domain/errs"
)

type AttendanceStatus string

const (
	AttendancePending AttendanceStatus = "pending"
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// NormalizeAttendance resolves the two accepted input forms - an explicit
// status or an `attended` boolean synonym - into one status. Re-marking is
// allowed: the latest mark overwrites the previous one.
func NormalizeAttendance(status *AttendanceStatus, attended *bool) (AttendanceStatus, error) {
	if status != nil {
		switch *status {
		case AttendancePresent, AttendanceAbsent:
			return *status, nil
		default:
			return "", errs.Validationf("attendanceStatus must be %q or %q", AttendancePresent, AttendanceAbsent)
		}
	}
	if attended != nil {
		if *attended {
			return AttendancePresent, nil
		}
		return AttendanceAbsent, nil
	}
	return "", errs.Validationf("either attendanceStatus or attended is required")
}

// EventRegistration is one row per (student, event) registration. The student
// and event fields are snapshots taken at registration time.
type EventRegistration struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	EventID          string   `gorm:"not null;type:uuid;uniqueIndex:idx_registration_pair,priority:2" json:"eventId"`
	EnrollmentNumber string   `gorm:"not null;uniqueIndex:idx_registration_pair,priority:1" json:"enrollmentNumber"`
	StudentID        string   `gorm:"not null;type:uuid;index" json:"studentId"`
	Student          Snapshot `gorm:"embedded;embeddedPrefix:student_" json:"student"`
	Department       string   `json:"department"`
	EventTitle       string   `json:"eventTitle"`
	ClubID           string   `gorm:"not null;type:uuid;index" json:"clubId"`

	Attended           bool             `gorm:"not null;default:false" json:"attended"`
	AttendanceStatus   AttendanceStatus `gorm:"not null;default:pending" json:"attendanceStatus"`
	AttendanceMarkedAt *time.Time       `json:"attendanceMarkedAt,omitempty"`
	AttendanceMarkedBy string           `json:"attendanceMarkedBy,omitempty"`
}
