package metadata

import (
	"context"
)

// Repository is a durable string-keyed byte store.
//
// Get returns (nil, nil) for a missing key. GetMany omits missing keys from
// the result. Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
