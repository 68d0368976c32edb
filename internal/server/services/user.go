package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/interviewprep/internal/common"
	"github.com/dmitrijs2005/interviewprep/internal/server/auth"
	"github.com/dmitrijs2005/interviewprep/internal/server/config"
	"github.com/dmitrijs2005/interviewprep/internal/server/models"
	"github.com/dmitrijs2005/interviewprep/internal/server/repositories/repomanager"
)

// UserService verifies bearer tokens and provisions users together with a
// token for them. Sign-in flows live outside this backend.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Authenticate returns the user ID carried by token. Any verification failure
// is reported as common.ErrorUnauthorized wrapping the cause.
func (s *UserService) Authenticate(token string) (string, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}
	return userID, nil
}

// Provision returns the user with email, creating it when absent, plus a
// freshly minted token.
func (s *UserService) Provision(ctx context.Context, name, email string) (*models.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, "", fmt.Errorf("%w: email is required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.GetByEmail(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		u, err = repo.Create(ctx, &models.User{Name: strings.TrimSpace(name), Email: email})
	}
	if err != nil {
		return nil, "", internalErr("provision user", err)
	}

	token, err := auth.GenerateToken(u.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", internalErr("generate token", err)
	}
	return u, token, nil
}
