package translate

// Lookup resolves a template key to a human-readable string.
//
// Get must be safe to call from any goroutine and must not fail: an
// unresolvable key returns a deterministic fallback, by convention the
// key itself.
type Lookup interface {
	Get(key string) string
}

// Map is an in-memory Lookup. Missing keys fall back to the key
// itself. The map must not be mutated after it is handed to a
// consumer; concurrent Get calls are then safe without locking.
type Map map[string]string

// Get returns the mapped string, or key when no entry exists.
func (m Map) Get(key string) string {
	if s, ok := m[key]; ok {
		return s
	}
	return key
}
