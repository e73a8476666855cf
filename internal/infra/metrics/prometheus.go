package metrics

import (
	"dropengine/internal/domain/drop"
	"dropengine/internal/domain/prize"
	"dropengine/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dropengine"

// DropMetrics exports engine activity to Prometheus.
type DropMetrics struct {
	DropsOpened    *prometheus.CounterVec // by trigger: scheduled/forced
	DropOutcomes   *prometheus.CounterVec // by outcome: won/vanished/skipped
	ClaimsRejected prometheus.Counter
	PrizeStock     *prometheus.GaugeVec // by prize id
}

var _ usecase.Metrics = (*DropMetrics)(nil)

func New() *DropMetrics {
	return &DropMetrics{
		DropsOpened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "drops_opened_total",
				Help:      "Drops opened, by trigger",
			},
			[]string{"trigger"},
		),
		DropOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "drop_outcomes_total",
				Help:      "Resolved drops, by outcome",
			},
			[]string{"outcome"},
		),
		ClaimsRejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claims_rejected_total",
				Help:      "Claim attempts rejected by the back-to-back rule",
			},
		),
		PrizeStock: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "prize_stock_remaining",
				Help:      "Remaining stock per prize",
			},
			[]string{"prize_id"},
		),
	}
}

// Register adds every collector to registerer.
func (m *DropMetrics) Register(registerer prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.DropsOpened,
		m.DropOutcomes,
		m.ClaimsRejected,
		m.PrizeStock,
	}
	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *DropMetrics) DropOpened(forced bool) {
	trigger := "scheduled"
	if forced {
		trigger = "forced"
	}
	m.DropsOpened.WithLabelValues(trigger).Inc()
}

func (m *DropMetrics) DropResolved(outcome drop.Outcome) {
	m.DropOutcomes.WithLabelValues(outcome.String()).Inc()
}

func (m *DropMetrics) ClaimRejected() {
	m.ClaimsRejected.Inc()
}

func (m *DropMetrics) StockLevels(levels map[prize.ID]int) {
	for id, remaining := range levels {
		m.PrizeStock.WithLabelValues(id.String()).Set(float64(remaining))
	}
}
