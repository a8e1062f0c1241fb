package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/testutil"
)

func setupAuth(t *testing.T) (*gorm.DB, models.User) {
	t.Helper()
	t.Setenv("JWT_ACCESS_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")

	db := testutil.OpenDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleClient,
	}
	require.NoError(t, db.Create(&user).Error)
	return db, user
}

func TestLogin(t *testing.T) {
	db, user := setupAuth(t)

	resp, err := Login(db, user.Email, "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// The refresh token is persisted on the user row.
	var got models.User
	require.NoError(t, db.First(&got, "email = ?", user.Email).Error)
	assert.Equal(t, resp.RefreshToken, got.RefreshToken)
}

func TestLoginWrongPassword(t *testing.T) {
	db, user := setupAuth(t)

	_, err := Login(db, user.Email, "wrong password")
	assert.ErrorIs(t, err, ErrAuth)
}

func TestLoginUnknownUser(t *testing.T) {
	db, _ := setupAuth(t)

	_, err := Login(db, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrAuth)
}

func TestRefreshRotatesPair(t *testing.T) {
	db, user := setupAuth(t)

	first, err := Login(db, user.Email, "correct horse")
	require.NoError(t, err)

	second, err := Refresh(db, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)
	require.NotEmpty(t, second.RefreshToken)

	// The old refresh token is no longer accepted.
	_, err = Refresh(db, first.RefreshToken)
	assert.ErrorIs(t, err, ErrAuth)

	_, err = Refresh(db, second.RefreshToken)
	assert.NoError(t, err)
}

func TestAccessTokenDoesNotRotate(t *testing.T) {
	db, user := setupAuth(t)

	pair, err := Login(db, user.Email, "correct horse")
	require.NoError(t, err)

	resp, err := AccessToken(db, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Empty(t, resp.RefreshToken)

	// The stored refresh token is still valid afterwards.
	_, err = AccessToken(db, pair.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshGarbageToken(t *testing.T) {
	db, _ := setupAuth(t)

	_, err := Refresh(db, "not-a-jwt")
	assert.ErrorIs(t, err, ErrAuth)
}
