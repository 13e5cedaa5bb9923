package prefs

// KV is the key-value collaborator backing user preferences. Get
// returns fallback when the key is absent; a stored empty string is
// returned as-is. SetAll writes every pair in one call: either all of
// them land or the call fails.
type KV interface {
	Get(key, fallback string) string
	SetAll(values map[string]string) error
}
