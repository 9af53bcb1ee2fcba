package ports

import "context"

// PreferenceStore is the local key/value storage for client preferences.
// Get returns a NotFound AppError when the key has never been written.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
