package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/internal/domain/entity"
	"github.com/campushub/clubhub/internal/domain/errs"
)

func TestStudentDisableToggle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")

	updated, err := env.students.SetDisabled(ctx, universityAdmin(), student.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsDisabled)

	_, _, err = env.auth.StudentLogin(ctx, "asha@uni.edu", "secret123")
	assert.True(t, errors.Is(err, errs.ErrAccountDisabled))

	updated, err = env.students.SetDisabled(ctx, universityAdmin(), student.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsDisabled)

	_, _, err = env.auth.StudentLogin(ctx, "asha@uni.edu", "secret123")
	assert.NoError(t, err)
}

func TestStudentDisableRequiresUniversityAdmin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	club := env.createClub(t, "Robotics")

	_, err := env.students.SetDisabled(ctx, clubAdmin(club.ID), student.ID, true)
	assert.True(t, errors.Is(err, errs.ErrForbidden))

	_, err = env.students.SetDisabled(ctx, studentIdentity(student), student.ID, true)
	assert.True(t, errors.Is(err, errs.ErrForbidden))
}

func TestIssueCertificateAppends(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")

	issued := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	updated, err := env.students.IssueCertificate(ctx, universityAdmin(), student.ID, entity.Certificate{
		Title:      "Best Volunteer",
		Issuer:     "Student Affairs",
		IssuedDate: issued,
	})
	require.NoError(t, err)
	require.Len(t, updated.Certificates, 1)

	updated, err = env.students.IssueCertificate(ctx, universityAdmin(), student.ID, entity.Certificate{
		Title: "Hackathon Winner",
	})
	require.NoError(t, err)
	require.Len(t, updated.Certificates, 2)
	assert.Equal(t, "Best Volunteer", updated.Certificates[0].Title)
	assert.Equal(t, "Hackathon Winner", updated.Certificates[1].Title)

	_, err = env.students.IssueCertificate(ctx, universityAdmin(), student.ID, entity.Certificate{})
	assert.True(t, errs.IsValidation(err))
}

func TestStudentProfilePicture(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	student := env.createStudent(t, "Asha", "asha@uni.edu", "EN001")

	updated, err := env.students.SetProfilePicture(ctx, student.ID, "https://cdn.uni.edu/asha.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.uni.edu/asha.png", updated.ProfilePictureURL)

	profile, err := env.students.Profile(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.uni.edu/asha.png", profile.ProfilePictureURL)
}

func TestStudentListRequiresUniversityAdmin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.createStudent(t, "Asha", "asha@uni.edu", "EN001")
	env.createStudent(t, "Ravi", "ravi@uni.edu", "EN002")
	club := env.createClub(t, "Robotics")

	students, err := env.students.List(ctx, universityAdmin())
	require.NoError(t, err)
	assert.Len(t, students, 2)

	_, err = env.students.List(ctx, clubAdmin(club.ID))
	assert.True(t, errors.Is(err, errs.ErrForbidden))
}
