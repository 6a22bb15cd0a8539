package sink

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/wharris/fleetgen/internal/config"
)

func sinkNames(sinks []Sink) []string {
	names := make([]string, 0, len(sinks))
	for _, s := range sinks {
		names = append(names, s.Name())
	}
	return names
}

func TestProvideSinksDefault(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	sinks, err := ProvideSinks(&config.Config{OutputPath: "env.json"}, lc)
	require.NoError(t, err)

	// Stdout before file, no redis while the URI is empty.
	assert.Equal(t, []string{"stdout", "file"}, sinkNames(sinks))
}

func TestProvideSinksWithRedis(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	lc := fxtest.NewLifecycle(t)

	sinks, err := ProvideSinks(&config.Config{
		OutputPath: "env.json",
		RedisURI:   "redis://" + s.Addr(),
		RedisKey:   "fleet:env",
	}, lc)
	require.NoError(t, err)

	assert.Equal(t, []string{"stdout", "file", "redis"}, sinkNames(sinks))

	// The lifecycle owns the redis client and closes it on stop.
	lc.RequireStart().RequireStop()
}
