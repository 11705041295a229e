package port

import "context"

type Store interface {
	// Get retrieves the raw JSON value stored under key. The boolean is
	// false if the key has never been set.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the raw JSON value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
