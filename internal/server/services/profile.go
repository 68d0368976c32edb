// Package services contains server-side business logic. ProfileService reads
// and updates profiles and stores uploaded profile images.
package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/interviewprep/internal/common"
	"github.com/dmitrijs2005/interviewprep/internal/logging"
	"github.com/dmitrijs2005/interviewprep/internal/server/models"
	"github.com/dmitrijs2005/interviewprep/internal/server/repositories/repomanager"
)

// ImageStorage persists image bytes and returns their public URL.
type ImageStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

type ProfileService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	storage      ImageStorage
	log          logging.Logger
	maxImageSize int64
	now          func() time.Time
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, st ImageStorage, log logging.Logger, maxImageSize int64) *ProfileService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ProfileService{
		db:           db,
		repomanager:  m,
		storage:      st,
		log:          log.With("component", "profile-service"),
		maxImageSize: maxImageSize,
		now:          time.Now,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, internalErr("get profile", err)
	}
	return u, nil
}

// UpdateProfile replaces the editable fields of the user's profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.User, error) {
	upd.Name = strings.TrimSpace(upd.Name)
	upd.Email = strings.TrimSpace(upd.Email)

	if err := validateUpdate(upd); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrorValidation, err.Error())
	}

	u, err := s.repomanager.Users(s.db).UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, internalErr("update profile", err)
	}

	s.log.Info(ctx, "profile updated", "user", userID)
	return u, nil
}

func validateUpdate(upd models.ProfileUpdate) error {
	return validation.ValidateStruct(&upd,
		validation.Field(&upd.Name, validation.Length(0, 100)),
		validation.Field(&upd.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&upd.ProfileImageURL, validation.Length(0, 2048)),
	)
}

// UploadImage stores an image for userID and returns its URL. The profile
// itself is not changed; the client sends the URL back with UpdateProfile.
func (s *ProfileService) UploadImage(ctx context.Context, userID, fileName string, r io.Reader) (string, error) {
	data, err := s.readImage(r)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmptyImage
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	key := s.imageKey(userID, fileName, contentType)
	url, err := s.storage.Put(ctx, key, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", internalErr("store image", err)
	}

	s.log.Info(ctx, "image stored", "user", userID, "key", key, "size", len(data))
	return url, nil
}

// readImage reads r whole, or at most maxImageSize bytes when a limit is set.
func (s *ProfileService) readImage(r io.Reader) ([]byte, error) {
	if s.maxImageSize <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, internalErr("read image", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxImageSize+1))
	if err != nil {
		return nil, internalErr("read image", err)
	}
	if int64(len(data)) > s.maxImageSize {
		return nil, ErrImageTooLarge
	}
	return data, nil
}

// imageKey builds profiles/<user>/<yyyy>/<mm>/<uuid><ext>.
func (s *ProfileService) imageKey(userID, fileName, contentType string) string {
	d := s.now().UTC()
	return fmt.Sprintf("profiles/%s/%04d/%02d/%s%s", userID, d.Year(), int(d.Month()), uuid.New(), imageExt(fileName, contentType))
}

func imageExt(fileName, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
		if t := mime.TypeByExtension(ext); strings.HasPrefix(t, contentType) {
			return ext
		}
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	return ""
}
