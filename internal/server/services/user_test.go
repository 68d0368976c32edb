package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/interviewprep/internal/common"
	"github.com/dmitrijs2005/interviewprep/internal/server/auth"
	"github.com/dmitrijs2005/interviewprep/internal/server/config"
	"github.com/dmitrijs2005/interviewprep/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(repo *memUsers) *UserService {
	cfg := &config.Config{SecretKey: "k", TokenValidityDuration: time.Hour}
	return NewUserService(nil, &fakeRepoManager{users: repo}, cfg)
}

func TestProvision_CreatesThenReuses(t *testing.T) {
	repo := newMemUsers()
	svc := newUserService(repo)

	u1, tok1, err := svc.Provision(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, u1.ID)

	u2, tok2, err := svc.Provision(context.Background(), "Ignored", " alice@example.com ")
	require.NoError(t, err)
	assert.Equal(t, u1.ID, u2.ID)
	assert.Equal(t, "Alice", u2.Name)

	for _, tok := range []string{tok1, tok2} {
		id, err := auth.GetUserIDFromToken(tok, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, u1.ID, id)
	}
}

func TestProvision_Errors(t *testing.T) {
	svc := newUserService(newMemUsers())
	_, _, err := svc.Provision(context.Background(), "A", "  ")
	assert.ErrorIs(t, err, common.ErrorValidation)

	repo := newMemUsers()
	repo.err = errors.New("db down")
	_, _, err = newUserService(repo).Provision(context.Background(), "A", "a@example.com")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestAuthenticate(t *testing.T) {
	svc := newUserService(newMemUsers(&models.User{ID: "u-9", Email: "x@example.com"}))

	tok, err := auth.GenerateToken("u-9", []byte("k"), time.Hour)
	require.NoError(t, err)

	id, err := svc.Authenticate(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-9", id)

	_, err = svc.Authenticate("garbage")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	expired, err := auth.GenerateToken("u-9", []byte("k"), -time.Minute)
	require.NoError(t, err)
	_, err = svc.Authenticate(expired)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}
