package sink

import "context"

// Sink delivers the rendered fixture document to one destination.
type Sink interface {
	// Write delivers the full document. Implementations must not modify it.
	Write(ctx context.Context, doc []byte) error
	// Name identifies the sink in logs and errors.
	Name() string
}
