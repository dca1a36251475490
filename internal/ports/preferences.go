package ports

// PreferenceStore persists small string preferences across page sessions.
// It is an opaque key/value service: the page reads a key once when a session
// starts and writes it synchronously on every change.
//
// Get reports ok=false when the key has never been written. Implementations
// must be safe for concurrent use and return a *errors.StoreError for
// infrastructure failures.
type PreferenceStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
