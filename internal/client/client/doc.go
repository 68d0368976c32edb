// Package client is the transport to the profile backend and the bootstrap of
// the client's local database.
//
// ProfileAPI is the boundary the profile controller depends on; HTTPClient
// implements it over HTTP/JSON with bearer-token injection:
//
//	GET  /profile   -> models.Profile
//	PUT  /profile   -> models.Profile
//	POST /image     -> {"imageUrl": "..."}   (multipart, field "image")
//	GET  /health    -> liveness
//
// Transport failures wrap ErrUnavailable, 401 maps to ErrUnauthorized and any
// other non-2xx status becomes an *APIError carrying the server's message.
package client
