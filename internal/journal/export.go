package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CSVMimeType identifies the export artifact to the share mechanism.
const CSVMimeType = "text/csv"

const csvHeader = "Type,Timestamp"

// ExportCSV renders the current log as CSV text in insertion order and
// returns it with a suggested filename. Fields are joined with a bare
// comma and never quoted or escaped: a type containing a comma
// produces a corrupt row.
func (s *Service) ExportCSV() (text, filename string) {
	events := s.Events()

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, e := range events {
		b.WriteString(e.Type)
		b.WriteByte(',')
		b.WriteString(e.Timestamp)
		b.WriteByte('\n')
	}

	filename = fmt.Sprintf("events_%s.csv", s.now().Format("0601021504"))
	return b.String(), filename
}

// WriteExport writes the CSV artifact into dir and returns its path
// and MIME type. Handing the file to a share mechanism is the
// caller's business. A write failure is stored as an ExportError and
// also returned.
func (s *Service) WriteExport(dir string) (path, mimeType string, err error) {
	text, filename := s.ExportCSV()

	if err := os.MkdirAll(dir, 0755); err != nil {
		opErr := &OpError{Kind: ExportError, Message: err.Error()}
		s.log.WithError(err).Error("creating export directory failed")
		s.setErr(opErr)
		return "", "", opErr
	}

	path = filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		opErr := &OpError{Kind: ExportError, Message: err.Error()}
		s.log.WithError(err).Error("writing export failed")
		s.setErr(opErr)
		return "", "", opErr
	}

	s.log.WithField("path", path).Debug("export written")
	return path, CSVMimeType, nil
}
