package sink

import (
	"context"

	"github.com/wharris/fleetgen/internal/config"
	"go.uber.org/fx"
)

// ProvideSinks builds the ordered sink list from configuration. Stdout comes
// before the file so the document hits the console first, then the output
// file, then any optional destinations.
func ProvideSinks(cfg *config.Config, lc fx.Lifecycle) ([]Sink, error) {
	sinks := []Sink{
		NewStdoutSink(),
		NewFileSink(cfg.OutputPath),
	}

	if cfg.RedisURI != "" {
		redisSink, err := NewRedisSink(cfg.RedisURI, cfg.RedisKey)
		if err != nil {
			return nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return redisSink.Close()
			},
		})

		sinks = append(sinks, redisSink)
	}

	return sinks, nil
}

// Module provides the sink dependencies to the fx container
var Module = fx.Options(
	fx.Provide(ProvideSinks),
)
