// Package postgres contains the gorm-backed repository implementations.
// Store errors are translated to the domain taxonomy at this boundary so
// services never see gorm sentinels.
package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

// Migrations is the ordered entity list passed to AutoMigrate on startup.
var Migrations = []interface{}{
	&entity.Student{},
	&entity.Admin{},
	&entity.Club{},
	&entity.Event{},
	&entity.ClubMembership{},
	&entity.EventRegistration{},
	&entity.StudentPoints{},
	&entity.Achievement{},
	&entity.ClubLeadership{},
	&entity.Announcement{},
	&entity.AnnouncementRead{},
}

// membershipActiveIndex keeps at most one pending or approved membership per
// (enrollment, club) pair at the store level. AutoMigrate cannot express a
// partial index, so it is created here; the duplicate-key error it raises
// surfaces as errs.ErrConflict through translate.
const membershipActiveIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_membership_active
ON club_memberships (enrollment_number, club_id)
WHERE status IN ('pending', 'approved')`

// Migrate runs the schema migrations plus the partial indexes AutoMigrate
// cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Migrations...); err != nil {
		return err
	}
	return db.Exec(membershipActiveIndex).Error
}

// translate maps gorm errors onto the domain taxonomy. Requires the gorm
// config to enable TranslateError so driver duplicate-key errors surface as
// gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.ErrConflict
	default:
		return err
	}
}
