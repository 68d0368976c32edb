// Package models defines the client-side data models: the authenticated
// identity, the wire DTOs exchanged with the profile backend and the draft
// buffer used while editing.
package models

import "github.com/dmitrijs2005/interviewprep/internal/common"

// Identity is the authenticated user as held by the client.
// Empty strings mean "absent".
type Identity struct {
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`

	// Token is the opaque bearer credential. Profile responses never carry it.
	Token string `json:"token,omitempty"`
}

// AvatarURL returns the profile image or the placeholder asset.
func (i Identity) AvatarURL() string {
	if i.ProfileImageURL == "" {
		return common.PlaceholderImageURL
	}
	return i.ProfileImageURL
}

// WithoutToken returns a copy safe to persist under the "user" key.
func (i Identity) WithoutToken() Identity {
	i.Token = ""
	return i
}

// Profile is the body returned by GET /profile and PUT /profile.
type Profile struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// ProfileUpdate is the body sent with PUT /profile.
type ProfileUpdate struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
}

// MergeProfile overlays server profile fields on top of an identity while
// keeping the token the client already holds.
func MergeProfile(p Profile, token string) Identity {
	return Identity{
		Name:            p.Name,
		Email:           p.Email,
		ProfileImageURL: p.ProfileImageURL,
		Token:           token,
	}
}

// ImageUploadResponse is the body returned by POST /image.
type ImageUploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
