package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wharris/fleetgen/internal/fleet"
	"github.com/wharris/fleetgen/internal/render"
	"github.com/wharris/fleetgen/internal/sink"
)

// GeneratorService produces the fleet fixture document and delivers it to
// every configured sink.
type GeneratorService struct {
	sinks  []sink.Sink
	logger *zap.Logger
}

// NewGeneratorService creates a new generator service instance
func NewGeneratorService(sinks []sink.Sink, logger *zap.Logger) *GeneratorService {
	return &GeneratorService{
		sinks:  sinks,
		logger: logger.Named("generator"),
	}
}

// Run performs one generation pass: enumerate the fleet, render the
// document, and write it to each sink in order. The first sink failure
// aborts the run; there is no retry or partial-result mode.
func (s *GeneratorService) Run(ctx context.Context) error {
	logger := s.logger.With(zap.String("runID", uuid.NewString()))

	records := fleet.Generate()
	doc, err := render.Document(records)
	if err != nil {
		return err
	}

	logger.Info("Rendered fleet fixture document",
		zap.Int("records", len(records)),
		zap.Int("bytes", len(doc)))

	for _, dest := range s.sinks {
		if err := dest.Write(ctx, doc); err != nil {
			return fmt.Errorf("sink %s: %w", dest.Name(), err)
		}
		logger.Info("Wrote fixture document", zap.String("sink", dest.Name()))
	}

	return nil
}

// FixtureDocument renders the fixture document without writing it anywhere.
// Used by the fixture server to serve the same bytes the sinks received.
func (s *GeneratorService) FixtureDocument() ([]byte, error) {
	return render.Document(fleet.Generate())
}
