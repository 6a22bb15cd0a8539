package service

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/wharris/fleetgen/internal/config"
)

// RunParams contains the dependencies for the one-shot generation run
type RunParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Config     *config.Config
	Service    *GeneratorService
	Logger     *zap.Logger
}

// RegisterRun hooks the generation pass into the fx lifecycle. Unless the
// fixture server is enabled, the application shuts down as soon as the run
// completes; a failed run exits non-zero.
func RegisterRun(p RunParams) {
	logger := p.Logger.Named("run")

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := p.Service.Run(context.Background()); err != nil {
					logger.Error("Fixture generation failed", zap.Error(err))
					_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
					return
				}

				if p.Config.Serve {
					logger.Info("Generation complete, keeping fixture server up")
					return
				}
				_ = p.Shutdowner.Shutdown()
			}()
			return nil
		},
	})
}

// Module provides the generator service to the fx container
var Module = fx.Options(
	fx.Provide(NewGeneratorService),
	fx.Invoke(RegisterRun),
)
