// Package storage provides the key-value persistence collaborator the
// progress store writes through. Values are opaque strings; callers
// own serialization.
package storage

import "context"

// KV is a minimal persistent key-value store. Get reports absence via
// the bool, not an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
