package models

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// Field names the editable keys of a Draft.
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
)

// ImageSelection is a locally picked image that has not been uploaded yet.
type ImageSelection struct {
	FileName    string
	ContentType string
	Data        []byte
}

// DataURI renders the selection as a data: URI suitable for a local preview.
func (s ImageSelection) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", s.ContentType, base64.StdEncoding.EncodeToString(s.Data))
}

// Draft is the transient, editable copy of an Identity.
type Draft struct {
	Name            string
	Email           string
	ProfileImageURL string

	// Pending is set once the user picked a local image; Preview holds its
	// data URI. Neither is sent anywhere until save.
	Pending *ImageSelection
	Preview string
}

// DraftFrom copies the editable subset of an identity.
func DraftFrom(i Identity) Draft {
	return Draft{Name: i.Name, Email: i.Email, ProfileImageURL: i.ProfileImageURL}
}

// Clone returns a deep copy; the pending image bytes are not shared.
func (d Draft) Clone() Draft {
	if d.Pending != nil {
		p := *d.Pending
		p.Data = append([]byte(nil), d.Pending.Data...)
		d.Pending = &p
	}
	return d
}

// Equal reports whether two drafts hold exactly the same content, including
// the pending image bytes.
func (d Draft) Equal(o Draft) bool {
	if d.Name != o.Name || d.Email != o.Email || d.ProfileImageURL != o.ProfileImageURL || d.Preview != o.Preview {
		return false
	}
	if (d.Pending == nil) != (o.Pending == nil) {
		return false
	}
	if d.Pending == nil {
		return true
	}
	return d.Pending.FileName == o.Pending.FileName &&
		d.Pending.ContentType == o.Pending.ContentType &&
		bytes.Equal(d.Pending.Data, o.Pending.Data)
}

// Set updates one editable field. Any text is accepted.
func (d *Draft) Set(f Field, value string) error {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	default:
		return fmt.Errorf("unknown profile field %q", f)
	}
	return nil
}

// ImageSource is what the profile page shows: the local preview first, then
// the hosted image, then the placeholder.
func (d Draft) ImageSource() string {
	if d.Preview != "" {
		return d.Preview
	}
	return Identity{ProfileImageURL: d.ProfileImageURL}.AvatarURL()
}

// Update builds the PUT /profile body using imageURL as the resolved image.
func (d Draft) Update(imageURL string) ProfileUpdate {
	return ProfileUpdate{Name: d.Name, Email: d.Email, ProfileImageURL: imageURL}
}
