package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/interviewprep/internal/common"
	"github.com/dmitrijs2005/interviewprep/internal/dbx"
	"github.com/dmitrijs2005/interviewprep/internal/server/models"
	"github.com/dmitrijs2005/interviewprep/internal/server/repositories/users"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type memUsers struct {
	mu     sync.Mutex
	byID   map[string]*models.User
	nextID int
	err    error
}

func newMemUsers(us ...*models.User) *memUsers {
	m := &memUsers{byID: map[string]*models.User{}}
	for _, u := range us {
		m.byID[u.ID] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	u.ID = fmt.Sprintf("u-%d", m.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.byID[u.ID] = &cp
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsers) UpdateProfile(_ context.Context, id string, upd models.ProfileUpdate) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.Name, u.Email, u.ProfileImageURL = upd.Name, upd.Email, upd.ProfileImageURL
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

type fakeRepoManager struct {
	users *memUsers
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository { return f.users }

type fakeStorage struct {
	key         string
	contentType string
	data        []byte
	size        int64
	err         error
}

func (f *fakeStorage) Put(_ context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}
	f.key, f.contentType, f.data, f.size = key, contentType, buf.Bytes(), size
	return "https://cdn.test/avatars/" + key, nil
}
