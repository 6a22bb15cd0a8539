package sink

import (
	"context"
	"fmt"
	"io"
	"os"
)

// stdoutSink writes the document to standard output.
type stdoutSink struct {
	w io.Writer
}

// NewStdoutSink creates the console sink.
func NewStdoutSink() Sink {
	return &stdoutSink{w: os.Stdout}
}

func (s *stdoutSink) Name() string {
	return "stdout"
}

func (s *stdoutSink) Write(_ context.Context, doc []byte) error {
	if _, err := s.w.Write(doc); err != nil {
		return fmt.Errorf("failed to write document to stdout: %w", err)
	}
	return nil
}
