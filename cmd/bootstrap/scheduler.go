package bootstrap

import (
	"context"
	"log/slog"

	"dropengine/internal/pkg/config"
	"dropengine/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewCron,
	),
	fx.Invoke(
		RegisterTickLoop,
	),
)

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

func NewCron(logger *slog.Logger) *cron.Cron {
	cl := cronLogger{logger: logger}
	return cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
}

// RegisterTickLoop restores the engine on start and drives Tick from cron.
// A tick that is still inside a response window makes the next one skip.
func RegisterTickLoop(lc fx.Lifecycle, c *cron.Cron, engine *usecase.Engine, cfg config.Config, logger *slog.Logger) error {
	runCtx, cancel := context.WithCancel(context.Background())

	_, err := c.AddFunc(cfg.Drop.TickSpec, func() {
		report := engine.Tick(runCtx)
		attrs := []any{"action", string(report.Action)}
		if report.NextSpawn != nil {
			attrs = append(attrs, "next_spawn", report.NextSpawn.UTC())
		}
		if report.Result != nil {
			attrs = append(attrs, "outcome", report.Result.Outcome.String())
		}
		logger.Debug("Tick", attrs...)
	})
	if err != nil {
		cancel()
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			engine.Start(ctx)
			c.Start()
			logger.Info("Drop scheduler started", "tick_spec", cfg.Drop.TickSpec)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			stopped := c.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
				logger.Warn("Drop scheduler did not stop in time")
			}
			logger.Info("Drop scheduler stopped")
			return nil
		},
	})
	return nil
}
