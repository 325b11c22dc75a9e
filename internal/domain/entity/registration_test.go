package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/internal/domain/errs"
)

func TestNormalizeAttendance(t *testing.T) {
	present := AttendancePresent
	absent := AttendanceAbsent
	pending := AttendancePending
	yes := true
	no := false

	status, err := NormalizeAttendance(&present, nil)
	require.NoError(t, err)
	assert.Equal(t, AttendancePresent, status)

	status, err = NormalizeAttendance(&absent, nil)
	require.NoError(t, err)
	assert.Equal(t, AttendanceAbsent, status)

	status, err = NormalizeAttendance(nil, &yes)
	require.NoError(t, err)
	assert.Equal(t, AttendancePresent, status)

	status, err = NormalizeAttendance(nil, &no)
	require.NoError(t, err)
	assert.Equal(t, AttendanceAbsent, status)

	// The explicit status wins over the boolean synonym.
	status, err = NormalizeAttendance(&absent, &yes)
	require.NoError(t, err)
	assert.Equal(t, AttendanceAbsent, status)

	_, err = NormalizeAttendance(&pending, nil)
	assert.True(t, errs.IsValidation(err))

	_, err = NormalizeAttendance(nil, nil)
	assert.True(t, errs.IsValidation(err))
}
