package profile

import "errors"

var (
	ErrFetchFailed  = errors.New("failed to load profile")
	ErrUploadFailed = errors.New("failed to upload image")
	ErrUpdateFailed = errors.New("failed to update profile")

	ErrSaveInProgress  = errors.New("save already in progress")
	ErrFetchInProgress = errors.New("profile fetch already in progress")
	ErrNotEditable     = errors.New("profile is not being edited")
	ErrNotHydrated     = errors.New("profile is not loaded yet")
	ErrNotMounted      = errors.New("profile view is not mounted")
	ErrSessionEnded    = errors.New("session ended while the request was in flight")
	ErrNotAnImage      = errors.New("selected file is not an image")
)
