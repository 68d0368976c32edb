package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/interviewprep/internal/common"
	"github.com/dmitrijs2005/interviewprep/internal/server/services"
)

const maxJSONBody = 64 << 10

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// fail maps service errors onto status codes. Internal causes are logged and
// never echoed to the caller.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrImageTooLarge):
		writeMessage(w, http.StatusRequestEntityTooLarge, validationMessage(err))
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, common.ErrorUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, http.StatusNotFound, "profile not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeMessage(w, http.StatusConflict, "email is already in use")
	default:
		h.log.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) failUpload(w http.ResponseWriter, r *http.Request, err error) {
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig):
		h.fail(w, r, services.ErrImageTooLarge)
	case errors.Is(err, http.ErrMissingFile):
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("missing %q file", common.ImageFormField))
	default:
		writeMessage(w, http.StatusBadRequest, "malformed multipart body")
	}
}

func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), common.ErrorValidation.Error()+": ")
}
