package auth

import (
	"testing"
	"time"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInIssuesTokenPair(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "buyer@example.com", "password123")

	pair, appErr := SignInUser(db, "buyer@example.com", "password123")
	require.Nil(t, appErr)
	require.NotNil(t, pair)
	assert.NotEmpty(t, pair.Token)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := ParseAccessToken(pair.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])
}

func TestSignInWrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testutil.OpenDB(t)
	testutil.SeedUser(t, db, "buyer@example.com", "password123")

	_, wrongPassword := SignInUser(db, "buyer@example.com", "not-the-password")
	require.NotNil(t, wrongPassword)

	_, unknownEmail := SignInUser(db, "nobody@example.com", "password123")
	require.NotNil(t, unknownEmail)

	// Identical failure: the response must not leak which field was
	// wrong.
	assert.Equal(t, wrongPassword.Message, unknownEmail.Message)
	assert.Equal(t, wrongPassword.Status(), unknownEmail.Status())
	assert.Equal(t, 401, wrongPassword.Status())
}

func TestRefreshTokenRotation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := testutil.OpenDB(t)
	user := testutil.SeedUser(t, db, "buyer@example.com", "password123")

	issued, err := IssueRefreshToken(db, user.ID)
	require.NoError(t, err)
	assert.True(t, issued.Usable(time.Now()))

	var stored models.RefreshToken
	require.NoError(t, db.First(&stored, "token = ?", issued.Token).Error)
	assert.Equal(t, user.ID, stored.UserID)

	require.NoError(t, db.Model(&stored).Update("revoked", true).Error)
	require.NoError(t, db.First(&stored, "token = ?", issued.Token).Error)
	assert.False(t, stored.Usable(time.Now()))
}

func TestRefreshTokenExpiry(t *testing.T) {
	token := models.RefreshToken{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.False(t, token.Usable(time.Now()))

	token.ExpiresAt = time.Now().Add(time.Minute)
	assert.True(t, token.Usable(time.Now()))
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseAccessToken("not-a-token")
	assert.Error(t, err)
}
