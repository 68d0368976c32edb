// Package services contains application services for the interview-prep
// client. This file defines the session service: restoring the identity at
// start-up, importing an out-of-band bearer token, serving the token to the
// HTTP client, liveness probing and logout.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/interviewprep/internal/client/client"
	"github.com/dmitrijs2005/interviewprep/internal/client/identity"
	"github.com/dmitrijs2005/interviewprep/internal/client/models"
	"github.com/dmitrijs2005/interviewprep/internal/client/store"
	"github.com/dmitrijs2005/interviewprep/internal/logging"
)

// ErrEmptyToken is returned by ImportToken for a blank token.
var ErrEmptyToken = errors.New("token must not be empty")

// Store is the part of the durable client store the session service needs.
type Store interface {
	LoadSession(ctx context.Context) (models.Identity, bool)
	SaveSession(ctx context.Context, id models.Identity)
	Token(ctx context.Context) (string, bool)
	Set(ctx context.Context, key, value string)
	ClearAll(ctx context.Context)
}

// SessionService defines session operations for the CLI.
//
// Contract:
//   - Restore: load the persisted session into the identity context.
//   - ImportToken: persist a bearer token obtained outside the client.
//   - Token: the token to send with the next request.
//   - Ping: check server liveness.
//   - Logout: wipe the durable store and the identity context.
type SessionService interface {
	Restore(ctx context.Context) bool
	ImportToken(ctx context.Context, token string) error
	Token(ctx context.Context) string
	Ping(ctx context.Context) error
	Logout(ctx context.Context)
}

type sessionService struct {
	api      client.ProfileAPI
	identity *identity.Context
	store    Store
	log      logging.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(api client.ProfileAPI, ident *identity.Context, st Store, log logging.Logger) SessionService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &sessionService{api: api, identity: ident, store: st, log: log.With("component", "session")}
}

// Restore fills the identity context from the durable store. It reports
// whether a session was found; without one the profile view fetches it.
func (s *sessionService) Restore(ctx context.Context) bool {
	id, ok := s.store.LoadSession(ctx)
	if !ok {
		s.log.Debug(ctx, "no persisted session")
		return false
	}
	s.identity.Replace(id)
	s.log.Debug(ctx, "session restored", "email", id.Email)
	return true
}

// ImportToken stores token under the "token" key and attaches it to the
// identity currently held, if any.
func (s *sessionService) ImportToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	id, ok, gen := s.identity.Snapshot()
	if !ok {
		s.store.Set(ctx, store.KeyToken, token)
		return nil
	}

	id.Token = token
	if s.identity.ReplaceIf(gen, id) {
		s.store.SaveSession(ctx, id)
	} else {
		s.store.Set(ctx, store.KeyToken, token)
	}
	return nil
}

// Token prefers the in-memory identity and falls back to the durable store.
func (s *sessionService) Token(ctx context.Context) string {
	if id, ok := s.identity.Current(); ok && id.Token != "" {
		return id.Token
	}
	t, _ := s.store.Token(ctx)
	return t
}

// Ping proxies a liveness check to the underlying client.
func (s *sessionService) Ping(ctx context.Context) error {
	return s.api.Ping(ctx)
}

// Logout clears the durable store first, then the identity context. It
// cannot fail; store errors are logged by the store.
func (s *sessionService) Logout(ctx context.Context) {
	s.store.ClearAll(ctx)
	s.identity.Clear()
	s.log.Info(ctx, "logged out")
}
