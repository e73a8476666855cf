package components

import (
	"log/slog"

	"dropengine/internal/infra/metrics"
	"dropengine/internal/infra/notifier"
	"dropengine/internal/infra/reaction"
	"dropengine/internal/pkg/clock"
	"dropengine/internal/pkg/config"
	"dropengine/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		clock.NewRealClock,
		NewNotifier,
		NewReactionHub,
		fx.Annotate(
			func(h *reaction.Hub) *reaction.Hub { return h },
			fx.As(new(usecase.ReactionSource)),
			fx.As(new(usecase.ClaimIngress)),
		),
		NewMetrics,
	),
)

// NewNotifier always logs announcements and also posts them to the webhook
// when one is configured.
func NewNotifier(cfg config.Config, clk clock.Clock, logger *slog.Logger) usecase.Notifier {
	notifiers := []usecase.Notifier{notifier.NewLogNotifier(cfg.Notify.Channel, logger)}
	if cfg.Notify.WebhookURL != "" {
		webhook := notifier.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Notify.Channel, cfg.Notify.Timeout, clk, logger)
		// The webhook mints the handle so downstream consumers see it first.
		notifiers = append([]usecase.Notifier{webhook}, notifiers...)
	}
	return notifier.NewFanout(logger, notifiers...)
}

func NewReactionHub(cfg config.Config, clk clock.Clock, logger *slog.Logger) *reaction.Hub {
	return reaction.NewHub(cfg.Drop.ClaimBuffer, clk, logger)
}

type MetricsResult struct {
	fx.Out

	Metrics  usecase.Metrics
	Gatherer prometheus.Gatherer
}

func NewMetrics() (MetricsResult, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := metrics.New()
	if err := m.Register(registry); err != nil {
		return MetricsResult{}, err
	}
	return MetricsResult{Metrics: m, Gatherer: registry}, nil
}
