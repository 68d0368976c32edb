// Package httpapi exposes the profile backend over HTTP/JSON:
//
//	GET  /profile  current user's profile
//	PUT  /profile  replace name, email and image URL
//	POST /image    multipart upload (field "image"), returns {"imageUrl": ...}
//	GET  /health   liveness plus database reachability
//
// Every route except /health requires "Authorization: Bearer <token>".
// Errors are returned as {"message": ...}.
package httpapi

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/interviewprep/internal/common"
	"github.com/dmitrijs2005/interviewprep/internal/logging"
	"github.com/dmitrijs2005/interviewprep/internal/server/models"
	"github.com/gorilla/mux"
)

// multipartOverhead is allowed on top of the image limit for headers and
// boundaries.
const multipartOverhead = 64 << 10

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.User, error)
	UploadImage(ctx context.Context, userID, fileName string, r io.Reader) (string, error)
}

type Authenticator interface {
	Authenticate(token string) (string, error)
}

// Pinger reports database reachability; *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	profiles     ProfileService
	auth         Authenticator
	db           Pinger
	log          logging.Logger
	maxImageSize int64
}

func NewHandler(profiles ProfileService, auth Authenticator, db Pinger, log logging.Logger, maxImageSize int64) *Handler {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Handler{
		profiles:     profiles,
		auth:         auth,
		db:           db,
		log:          log.With("component", "httpapi"),
		maxImageSize: maxImageSize,
	}
}

// Router wires the routes and middleware.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)

	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	r.Handle("/profile", h.requireBearer(http.HandlerFunc(h.getProfile))).Methods(http.MethodGet)
	r.Handle("/profile", h.requireBearer(http.HandlerFunc(h.updateProfile))).Methods(http.MethodPut)
	r.Handle("/image", h.requireBearer(http.HandlerFunc(h.uploadImage))).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			h.log.Warn(r.Context(), "health check: database unreachable", "error", err)
			writeMessage(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.profiles.GetProfile(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfile(u))
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}

	u, err := h.profiles.UpdateProfile(r.Context(), userIDFrom(r.Context()), req.toModel())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfile(u))
}

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	if h.maxImageSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxImageSize+multipartOverhead)
	}

	file, header, err := r.FormFile(common.ImageFormField)
	if err != nil {
		h.failUpload(w, r, err)
		return
	}
	defer file.Close()

	url, err := h.profiles.UploadImage(r.Context(), userIDFrom(r.Context()), header.Filename, file)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{ImageURL: url})
}
