package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dropengine/internal/domain/cycle"
	"dropengine/internal/domain/drop"
	"dropengine/internal/domain/eligibility"
	"dropengine/internal/domain/prize"
	"dropengine/internal/domain/winner"
	"dropengine/internal/infra"
	"dropengine/internal/pkg/clock"
	"dropengine/internal/pkg/config"
	"dropengine/internal/pkg/random"
)

type EngineConfig struct {
	ResponseWindow  time.Duration
	QuotaMin        int
	QuotaMax        int
	SpawnMin        time.Duration
	SpawnMax        time.Duration
	InitialMin      time.Duration
	InitialMax      time.Duration
	ForcedMin       time.Duration
	ForcedMax       time.Duration
	CycleLength     time.Duration
	BypassUsers     []string
	HistoryPageSize int
}

func NewEngineConfig(cfg config.Config) EngineConfig {
	d := cfg.Drop
	return EngineConfig{
		ResponseWindow:  d.ResponseWindow,
		QuotaMin:        d.QuotaMin,
		QuotaMax:        d.QuotaMax,
		SpawnMin:        d.SpawnMin,
		SpawnMax:        d.SpawnMax,
		InitialMin:      d.InitialMin,
		InitialMax:      d.InitialMax,
		ForcedMin:       d.ForcedMin,
		ForcedMax:       d.ForcedMax,
		CycleLength:     d.CycleLength,
		BypassUsers:     d.BypassUsers,
		HistoryPageSize: d.HistoryPage,
	}
}

// Engine owns the prize pool, the winner log and the cycle state.
//
// opMu is the single mutation domain: ticks, drops (including their whole
// response window) and admin operations hold it for their full duration, so
// a drop is always resolved before anything else changes. mu only guards the
// fields for readers, who must not wait out a response window.
type Engine struct {
	opMu sync.Mutex

	mu      sync.RWMutex
	pool    *prize.Pool
	winners *winner.Log
	cycle   cycle.State
	active  *drop.ActiveDrop

	cfg       EngineConfig
	catalog   prize.Catalog
	arbiter   *ClaimArbiter
	store     SnapshotStore
	notifier  Notifier
	reactions ReactionSource
	metrics   Metrics
	clock     clock.Clock
	rng       random.Source
	logger    *slog.Logger
}

func NewEngine(
	cfg EngineConfig,
	catalog prize.Catalog,
	store SnapshotStore,
	notifier Notifier,
	reactions ReactionSource,
	metrics Metrics,
	clk clock.Clock,
	rng random.Source,
	logger *slog.Logger,
) *Engine {
	if metrics == nil {
		metrics = NewNopMetrics()
	}
	e := &Engine{
		pool:      prize.NewPool(catalog),
		winners:   winner.NewLog(nil),
		cfg:       cfg,
		catalog:   catalog.Clone(),
		store:     store,
		notifier:  notifier,
		reactions: reactions,
		metrics:   metrics,
		clock:     clk,
		rng:       rng,
		logger:    logger,
	}
	e.arbiter = NewClaimArbiter(clk, notifier, e, cfg.BypassUsers, metrics, logger)
	return e
}

// Start restores the persisted snapshot. A missing or unreadable snapshot
// falls back to the default catalog and an empty history; it never fails.
func (e *Engine) Start(ctx context.Context) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	snap, err := e.store.Load(ctx)
	if err != nil {
		e.mu.Lock()
		e.resetStateLocked()
		var defaults *Snapshot
		if infra.IsKind(err, infra.KindNotFound) {
			defaults = e.snapshotLocked()
		}
		e.mu.Unlock()

		if defaults != nil {
			e.logger.Info("No snapshot found, starting from default catalog")
			e.persist(ctx, defaults)
		} else {
			e.logger.Warn("Snapshot unusable, starting from default catalog", "error", err)
		}
		e.metrics.StockLevels(e.stockLevels())
		return
	}

	e.mu.Lock()
	dirty := e.applyLocked(snap)
	var toSave *Snapshot
	if dirty {
		toSave = e.snapshotLocked()
	}
	state := e.cycle.Clone()
	count := e.winners.Len()
	e.mu.Unlock()

	if toSave != nil {
		e.persist(ctx, toSave)
	}
	e.metrics.StockLevels(e.stockLevels())
	e.logger.Info("Snapshot restored",
		"winners", count,
		"claims", state.ClaimsThisCycle,
		"quota", intAttr(state.DailyQuota),
		"first_spawn", timeAttr(state.FirstSpawnTime),
		"cycle_reset", timeAttr(state.CycleResetTime),
		"next_spawn", timeAttr(state.NextSpawnTime))
}

// Check implements EligibilityChecker for the arbiter.
func (e *Engine) Check(userID string) (bool, string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return eligibility.Check(e.winners, e.pool.Lookup, userID)
}

func (e *Engine) applyLocked(snap *Snapshot) bool {
	dirty := false

	e.pool = prize.NewPool(e.catalog)
	if pruned := e.pool.MergeOverrides(snap.Stock); len(pruned) > 0 {
		e.logger.Info("Pruned retired prizes from snapshot", "prize_ids", pruned)
		dirty = true
	}

	records := make([]winner.Record, 0, len(snap.Winners))
	for _, w := range snap.Winners {
		rec, err := winner.NewRecord(w.UserID, w.PrizeID, w.PrizeName, w.Timestamp, w.MessageRef, w.ChannelRef)
		if err != nil {
			e.logger.Warn("Skipping invalid winner record", "user_id", w.UserID, "prize_id", w.PrizeID, "error", err)
			continue
		}
		records = append(records, rec)
	}
	e.winners = winner.NewLog(records)

	e.cycle = snap.Cycle.Clone()
	if err := e.cycle.Validate(e.cfg.CycleLength); err != nil {
		e.logger.Warn("Discarding inconsistent cycle metadata", "error", err)
		e.cycle = cycle.State{}
		dirty = true
	}
	return dirty
}

func (e *Engine) resetStateLocked() {
	e.pool = prize.NewPool(e.catalog)
	e.winners = winner.NewLog(nil)
	e.cycle = cycle.State{}
}

func (e *Engine) snapshotLocked() *Snapshot {
	records := e.winners.Records()
	winners := make([]WinnerSnapshot, 0, len(records))
	for _, r := range records {
		winners = append(winners, WinnerSnapshot{
			UserID:     r.UserID(),
			PrizeID:    r.PrizeID(),
			PrizeName:  r.PrizeName(),
			Timestamp:  r.Timestamp(),
			MessageRef: r.MessageRef(),
			ChannelRef: r.ChannelRef(),
		})
	}
	return &Snapshot{
		Stock:   e.pool.StockLevels(),
		Winners: winners,
		Cycle:   e.cycle.Clone(),
	}
}

// persist writes a full snapshot. Failures are logged once and the in-memory
// state stays authoritative until the next successful save. A committed
// change is saved even while shutting down.
func (e *Engine) persist(ctx context.Context, snap *Snapshot) {
	if err := e.store.Save(context.WithoutCancel(ctx), snap); err != nil && !infra.IsRepositoryError(err) {
		e.logger.Error("Failed to save snapshot", "error", err)
	}
}

func (e *Engine) stockLevels() map[prize.ID]int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pool.StockLevels()
}

func (e *Engine) spawnInterval() time.Duration {
	return e.rng.DurationBetween(e.cfg.SpawnMin, e.cfg.SpawnMax)
}

func (e *Engine) initialInterval() time.Duration {
	return e.rng.DurationBetween(e.cfg.InitialMin, e.cfg.InitialMax)
}

func (e *Engine) forcedInterval() time.Duration {
	return e.rng.DurationBetween(e.cfg.ForcedMin, e.cfg.ForcedMax)
}

func (e *Engine) sampleQuota() int {
	return e.rng.IntBetween(e.cfg.QuotaMin, e.cfg.QuotaMax)
}

func timeAttr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func intAttr(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
