package share

import (
	"fmt"
	"io"
)

// Sharer hands an exported artifact to an output mechanism. Invoking a
// real system share sheet is outside this program; implementations
// only deliver the file handle and its MIME type.
type Sharer interface {
	ShareFile(path, mimeType string) error
}

// Console announces the artifact on a writer, leaving the actual
// sharing to the user.
type Console struct {
	W io.Writer
}

func (c Console) ShareFile(path, mimeType string) error {
	_, err := fmt.Fprintf(c.W, "Export ready: %s (%s)\n", path, mimeType)
	return err
}
