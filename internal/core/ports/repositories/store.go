package repositories

import "context"

// KVStore is the persistence contract: a string-keyed store of
// JSON-serializable values with whole-value replacement semantics. Reads
// return the last written value; writes are immediately visible to subsequent
// reads in the same process. Cross-process consistency is best-effort only
// and surfaces through Subscribe.
type KVStore interface {
	// Get unmarshals the value stored under key into dest. It returns false
	// when the key is absent or the stored value cannot be parsed, leaving
	// dest at the caller's default; a parse failure is not an error.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set replaces the whole value stored under key. There are no partial
	// or merge semantics.
	Set(ctx context.Context, key string, value any) error

	// Subscribe registers fn to be called with the key of every change
	// originating outside the current process. Notifications can race with
	// in-flight local reads; callers must tolerate eventual consistency.
	// The returned cancel function stops delivery.
	Subscribe(ctx context.Context, fn func(key string)) (func(), error)

	// Close releases any underlying connections.
	Close() error
}
