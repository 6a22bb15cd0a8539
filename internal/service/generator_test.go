package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wharris/fleetgen/internal/sink"
)

// captureSink records what was written to it.
type captureSink struct {
	name string
	doc  []byte
	err  error
}

func (c *captureSink) Name() string { return c.name }

func (c *captureSink) Write(_ context.Context, doc []byte) error {
	if c.err != nil {
		return c.err
	}
	c.doc = append([]byte(nil), doc...)
	return nil
}

func TestRunWritesSameBytesToAllSinks(t *testing.T) {
	first := &captureSink{name: "first"}
	second := &captureSink{name: "second"}

	svc := NewGeneratorService([]sink.Sink{first, second}, zap.NewNop())
	require.NoError(t, svc.Run(context.Background()))

	require.NotEmpty(t, first.doc)
	assert.Equal(t, first.doc, second.doc, "every sink must receive identical bytes")
}

func TestRunOutputMatchesFixtureDocument(t *testing.T) {
	capture := &captureSink{name: "capture"}

	svc := NewGeneratorService([]sink.Sink{capture}, zap.NewNop())
	require.NoError(t, svc.Run(context.Background()))

	doc, err := svc.FixtureDocument()
	require.NoError(t, err)
	assert.Equal(t, doc, capture.doc)
}

func TestRunIdempotent(t *testing.T) {
	capture := &captureSink{name: "capture"}
	svc := NewGeneratorService([]sink.Sink{capture}, zap.NewNop())

	require.NoError(t, svc.Run(context.Background()))
	firstRun := capture.doc

	require.NoError(t, svc.Run(context.Background()))
	assert.Equal(t, firstRun, capture.doc, "consecutive runs must produce byte-identical output")
}

func TestRunAbortsOnSinkFailure(t *testing.T) {
	failing := &captureSink{name: "broken", err: errors.New("disk full")}
	after := &captureSink{name: "after"}

	svc := NewGeneratorService([]sink.Sink{failing, after}, zap.NewNop())
	err := svc.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Empty(t, after.doc, "sinks after the failure must not be written")
}
