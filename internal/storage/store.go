// Package storage provides the durable key-value layer behind the
// booking collection.  The whole collection is serialized into a single
// value: it is read once at startup and rewritten in full on every
// booking creation.  Two backends exist: a JSON file on disk (the
// default) and a single Redis key.  Writes are synchronous and
// best-effort; callers log failures and continue.
package storage

// Store persists one opaque value.
type Store interface {
	// Load returns the stored value.  The second result is false when
	// nothing has been stored yet, which is not an error.
	Load() ([]byte, bool, error)
	// Save replaces the stored value.
	Save(data []byte) error
}
