// Package store is the durable client store: a string key/value view over the
// local metadata table. It is fire-and-forget; failures are logged and never
// returned, because the identity context stays authoritative for the running
// session.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/interviewprep/internal/client/models"
	"github.com/dmitrijs2005/interviewprep/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/interviewprep/internal/dbx"
	"github.com/dmitrijs2005/interviewprep/internal/logging"
)

// Keys used by the session helpers.
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// ErrStorageFailed tags every logged durable-store failure.
var ErrStorageFailed = errors.New("durable store failure")

type Store struct {
	db   *sql.DB
	repo metadata.Repository
	log  logging.Logger
}

// New returns a store over the migrated local database.
func New(db *sql.DB, log logging.Logger) *Store {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Store{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		log:  log.With("component", "store"),
	}
}

// Get returns the value under key. A read failure counts as absent.
func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		s.fail(ctx, "get", key, err)
		return "", false
	}
	if v == nil {
		return "", false
	}
	return string(v), true
}

func (s *Store) Set(ctx context.Context, key, value string) {
	if err := s.repo.Set(ctx, key, []byte(value)); err != nil {
		s.fail(ctx, "set", key, err)
	}
}

func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.repo.Delete(ctx, key); err != nil {
		s.fail(ctx, "remove", key, err)
	}
}

func (s *Store) ClearAll(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		s.fail(ctx, "clear", "*", err)
	}
}

// SaveSession persists id under "user" with the token stripped and the token
// itself under "token", in one transaction. An empty token leaves the stored
// one untouched.
func (s *Store) SaveSession(ctx context.Context, id models.Identity) {
	b, err := json.Marshal(id.WithoutToken())
	if err != nil {
		s.fail(ctx, "encode", KeyUser, err)
		return
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyUser, b); err != nil {
			return err
		}
		if id.Token != "" {
			return repo.Set(ctx, KeyToken, []byte(id.Token))
		}
		return nil
	})
	if err != nil {
		s.fail(ctx, "save session", KeyUser, err)
	}
}

// LoadSession rebuilds the identity from "user" and "token". It reports false
// when no user record is stored or the record cannot be decoded.
func (s *Store) LoadSession(ctx context.Context) (models.Identity, bool) {
	raw, ok := s.Get(ctx, KeyUser)
	if !ok || raw == "" {
		return models.Identity{}, false
	}

	var id models.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		s.fail(ctx, "decode", KeyUser, err)
		return models.Identity{}, false
	}

	if token, ok := s.Token(ctx); ok {
		id.Token = token
	}
	return id, true
}

// Token returns the stored bearer token, if any.
func (s *Store) Token(ctx context.Context) (string, bool) {
	t, ok := s.Get(ctx, KeyToken)
	if !ok || t == "" {
		return "", false
	}
	return t, true
}

func (s *Store) fail(ctx context.Context, op, key string, err error) {
	s.log.Warn(ctx, ErrStorageFailed.Error(), "op", op, "key", key, "error", err)
}
