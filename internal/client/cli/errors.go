package cli

import (
	"errors"

	"github.com/dmitrijs2005/interviewprep/internal/client/client"
	"github.com/dmitrijs2005/interviewprep/internal/client/profile"
	"github.com/dmitrijs2005/interviewprep/internal/client/services"
	"github.com/dmitrijs2005/interviewprep/internal/filex"
)

// describe turns a command error into the line shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, profile.ErrNotMounted):
		return "Open your profile first (type 'profile')"
	case errors.Is(err, profile.ErrNotHydrated):
		return "Profile is not loaded yet, type 'refresh' to retry"
	case errors.Is(err, profile.ErrNotEditable):
		return "Type 'edit' to change your profile"
	case errors.Is(err, profile.ErrSaveInProgress):
		return "A save is already running"
	case errors.Is(err, profile.ErrFetchInProgress):
		return "The profile is still loading"
	case errors.Is(err, profile.ErrSessionEnded):
		return "Your session ended before the request finished"
	case errors.Is(err, profile.ErrUploadFailed):
		return "Image upload failed: " + client.UserMessage(err)
	case errors.Is(err, profile.ErrUpdateFailed):
		return "Profile update failed: " + client.UserMessage(err)
	case errors.Is(err, profile.ErrFetchFailed):
		return "Could not load the profile: " + client.UserMessage(err)
	case errors.Is(err, profile.ErrNotAnImage), errors.Is(err, filex.ErrFileTooLarge):
		return err.Error()
	case errors.Is(err, services.ErrEmptyToken):
		return "Token must not be empty"
	default:
		return "Error: " + err.Error()
	}
}
