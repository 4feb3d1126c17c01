package databases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybercell/cybercrime-portal-api/models"
)

func TestAuthenticateSucceedsWithSharedPassword(t *testing.T) {
	dir, err := NewOfficerDirectory("password123")
	require.NoError(t, err)

	identity, err := dir.Authenticate(context.Background(), "admin@mppolice.gov.in", "password123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, identity.Role)
	assert.Equal(t, "ADM001", identity.Badge)

	identity, err = dir.Authenticate(context.Background(), "investigator@mppolice.gov.in", "password123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleInvestigator, identity.Role)
	assert.Equal(t, "Officer Rajesh Kumar", identity.Name)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	dir, err := NewOfficerDirectory("password123")
	require.NoError(t, err)

	_, wrongPassword := dir.Authenticate(context.Background(), "admin@mppolice.gov.in", "wrong")
	_, unknownEmail := dir.Authenticate(context.Background(), "unknown@x.com", "password123")
	_, bothWrong := dir.Authenticate(context.Background(), "unknown@x.com", "wrong")

	// a caller must not be able to tell which field was wrong
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.ErrorIs(t, bothWrong, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthenticateEmailIsExactMatch(t *testing.T) {
	dir, err := NewOfficerDirectory("password123")
	require.NoError(t, err)

	_, err = dir.Authenticate(context.Background(), "ADMIN@mppolice.gov.in", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFindByEmail(t *testing.T) {
	dir, err := NewOfficerDirectory("password123")
	require.NoError(t, err)

	identity, err := dir.FindByEmail(context.Background(), "admin@mppolice.gov.in")
	require.NoError(t, err)
	assert.Equal(t, "Administrator", identity.Name)

	_, err = dir.FindByEmail(context.Background(), "nobody@mppolice.gov.in")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 2, dir.Count(context.Background()))
}
