package models

import "time"

// User is a stored profile. ProfileImageURL is empty when no image was set.
type User struct {
	ID              string
	Name            string
	Email           string
	ProfileImageURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProfileUpdate is the full set of editable profile fields.
type ProfileUpdate struct {
	Name            string
	Email           string
	ProfileImageURL string
}
