package prefs

import "fmt"

// Slot keys and their fixed defaults.
const (
	keyLabel1 = "button_label_1"
	keyLabel2 = "button_label_2"

	DefaultLabel1 = "Event 1"
	DefaultLabel2 = "Event 2"
)

// Labels reads and writes the two quick-add slot labels on top of a
// KV collaborator.
type Labels struct {
	kv KV
}

// NewLabels creates a Labels adapter over kv.
func NewLabels(kv KV) *Labels {
	return &Labels{kv: kv}
}

// Get returns the label for slot 1 or 2, falling back to the fixed
// default when the slot was never written. An explicitly stored empty
// label stays empty.
func (l *Labels) Get(slot int) (string, error) {
	switch slot {
	case 1:
		return l.kv.Get(keyLabel1, DefaultLabel1), nil
	case 2:
		return l.kv.Get(keyLabel2, DefaultLabel2), nil
	}
	return "", fmt.Errorf("invalid label slot %d", slot)
}

// Set writes both labels in a single call. Label content is not
// validated; empty labels are permitted.
func (l *Labels) Set(label1, label2 string) error {
	return l.kv.SetAll(map[string]string{
		keyLabel1: label1,
		keyLabel2: label2,
	})
}
