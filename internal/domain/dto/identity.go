package dto

// IdentityKind distinguishes the resolved session kinds. Anonymous requests
// simply carry no identity.
type IdentityKind string

const (
	IdentityStudent         IdentityKind = "student"
	IdentityClubAdmin       IdentityKind = "club_admin"
	IdentityUniversityAdmin IdentityKind = "university_admin"
)

// Identity is the resolved session payload stored server-side, keyed by the
// opaque session token.
type Identity struct {
	Kind             IdentityKind `json:"kind"`
	SubjectID        string       `json:"subjectId"`
	ClubID           string       `json:"clubId,omitempty"`
	EnrollmentNumber string       `json:"enrollmentNumber,omitempty"`
	Name             string       `json:"name,omitempty"`
}

func (i Identity) IsStudent() bool         { return i.Kind == IdentityStudent }
func (i Identity) IsClubAdmin() bool       { return i.Kind == IdentityClubAdmin }
func (i Identity) IsUniversityAdmin() bool { return i.Kind == IdentityUniversityAdmin }
func (i Identity) IsAdmin() bool           { return i.IsClubAdmin() || i.IsUniversityAdmin() }
