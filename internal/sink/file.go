package sink

import (
	"context"
	"fmt"
	"os"
)

// fileSink writes the document to a local file, create-or-truncate.
type fileSink struct {
	path string
}

// NewFileSink creates a sink that writes the document to the given path.
func NewFileSink(path string) Sink {
	return &fileSink{path: path}
}

func (s *fileSink) Name() string {
	return "file"
}

// Write creates or truncates the target file and writes the full document.
// The handle is closed on every path; a close failure after a clean write is
// still reported since the data may not have reached disk.
func (s *fileSink) Write(_ context.Context, doc []byte) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}

	_, writeErr := f.Write(doc)
	closeErr := f.Close()

	if writeErr != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", s.path, closeErr)
	}
	return nil
}
