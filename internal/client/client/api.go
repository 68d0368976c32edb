package client

import (
	"context"

	"github.com/dmitrijs2005/interviewprep/internal/client/models"
)

// ProfileAPI is the remote side of the profile lifecycle.
type ProfileAPI interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, in models.ProfileUpdate) (models.Profile, error)
	UploadImage(ctx context.Context, img models.ImageSelection) (string, error)
	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token for the next request; an empty string
// means the request goes out unauthenticated.
type TokenSource func(ctx context.Context) string
