// Package metadata is the client's local key/value table. It backs the
// durable client store: the serialized user record and the bearer token.
package metadata

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned by Set when called with an empty key.
var ErrEmptyKey = errors.New("metadata key must not be empty")

// Repository is a byte-valued key/value store. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
