package common

// AuthorizationHeaderName carries the bearer token on every authenticated
// request; BearerPrefix is the scheme in front of the token.
const (
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
)

// PlaceholderImageURL is rendered whenever an identity has no profile image.
const PlaceholderImageURL = "/default.jpeg"

// ImageFormField is the multipart field name used by POST /image.
const ImageFormField = "image"
