package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"tripcheck/internal/config"
	"tripcheck/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	}),
	fx.Invoke(installGlobal),
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return infra.NewLogger(cfg.IsDevelopment())
}

// installGlobal backs zap.L() for code without an injected logger.
func installGlobal(lc fx.Lifecycle, log *zap.Logger) {
	restore := zap.ReplaceGlobals(log)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			restore()
			_ = log.Sync()
			return nil
		},
	})
}
