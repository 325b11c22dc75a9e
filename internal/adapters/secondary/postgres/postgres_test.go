package postgres

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/campushub/clubhub/internal/domain/errs"
)

func TestTranslateMapsStoreErrors(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), errs.ErrNotFound)

	// The partial unique index on active memberships rejects a concurrent
	// duplicate insert with a duplicate-key error; callers must see a
	// domain conflict, never the gorm sentinel.
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), errs.ErrConflict)

	opaque := errors.New("connection reset")
	assert.Equal(t, opaque, translate(opaque))
}

func TestActiveMembershipIndexCoversActiveStatusesOnly(t *testing.T) {
	// The guard must be unique, scoped to the pair columns, and partial over
	// the two active statuses so rejected rows never block a re-request.
	assert.Contains(t, membershipActiveIndex, "UNIQUE INDEX")
	assert.Contains(t, membershipActiveIndex, "(enrollment_number, club_id)")
	assert.Contains(t, membershipActiveIndex, "WHERE status IN ('pending', 'approved')")
	assert.False(t, strings.Contains(membershipActiveIndex, "rejected"))
}
