package storage

// Event represents a single journal entry. Two events are the same
// entry when both fields are equal; there is no surrogate id.
type Event struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}
