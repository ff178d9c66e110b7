package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kashifkhan1545/fingerauth/internal/common"
	"github.com/kashifkhan1545/fingerauth/internal/server/auth"
	"github.com/kashifkhan1545/fingerauth/internal/server/config"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg := &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
	}
	return NewService(NewMemoryRepository(), cfg)
}

func TestRegisterAndLogin_Success(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	user, err := s.Register(ctx, "user@test.com", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter2", string(user.PasswordHash), "password must be stored hashed")

	token, err := s.Login(ctx, "user@test.com", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := auth.GetUserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.Register(ctx, "user@test.com", "hunter2")
	require.NoError(t, err)

	_, err = s.Login(ctx, "user@test.com", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.Login(ctx, "nobody@test.com", "hunter2")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_UnknownUserIndistinguishableFromWrongPassword(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.Register(ctx, "user@test.com", "hunter2")
	require.NoError(t, err)

	_, unknownErr := s.Login(ctx, "nobody@test.com", "hunter2")
	_, wrongErr := s.Login(ctx, "user@test.com", "wrong")
	assert.Equal(t, wrongErr, unknownErr)

	// The unknown-account path burns a real bcrypt comparison; the hash it
	// compares against must carry the same cost as account hashes.
	cost, err := bcrypt.Cost(dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.Register(ctx, "user@test.com", "hunter2")
	require.NoError(t, err)

	_, err = s.Register(ctx, "user@test.com", "other")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}
