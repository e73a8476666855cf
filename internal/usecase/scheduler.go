package usecase

import (
	"context"
	"time"

	"dropengine/internal/domain/drop"
	"dropengine/internal/domain/winner"
	"dropengine/internal/pkg/ptr"
	"dropengine/internal/usecase/readmodel"
)

type TickAction string

const (
	TickIdle           TickAction = "idle"
	TickPoolEmpty      TickAction = "pool_empty"
	TickQuotaExhausted TickAction = "quota_exhausted"
	TickScheduled      TickAction = "scheduled"
	TickWaiting        TickAction = "waiting"
	TickDropped        TickAction = "dropped"
)

const (
	reasonPoolEmpty      = "prize pool is empty"
	reasonAnnounceFailed = "drop announcement failed"
)

type TickReport struct {
	Action     TickAction
	CycleReset bool
	NextSpawn  *time.Time
	Result     *drop.Result
}

// DropCommands is the scheduling and admin surface of the engine.
type DropCommands interface {
	Tick(ctx context.Context) TickReport
	ForceDrop(ctx context.Context) drop.Result
	ResetPool(ctx context.Context)
	ResetHistory(ctx context.Context)
	ResetCycleNow(ctx context.Context) readmodel.CycleView
}

var _ DropCommands = (*Engine)(nil)

// Tick makes one scheduling decision. When a drop is due it runs the whole
// response window before returning.
func (e *Engine) Tick(ctx context.Context) TickReport {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	if ctx.Err() != nil {
		return TickReport{Action: TickIdle}
	}

	now := e.clock.Now()
	var report TickReport

	e.mu.Lock()
	dirty := false
	if e.cycle.ResetIfDue(now, e.spawnInterval()) {
		dirty = true
		report.CycleReset = true
		e.logger.Info("Cycle reset", "next_spawn", timeAttr(e.cycle.NextSpawnTime))
	}

	switch {
	case !e.pool.HasDrawable():
		report.Action = TickPoolEmpty
	case e.cycle.QuotaExhausted():
		if !sameTime(e.cycle.NextSpawnTime, e.cycle.CycleResetTime) {
			e.cycle.PinToReset()
			dirty = true
		}
		report.Action = TickQuotaExhausted
	case e.cycle.NextSpawnTime == nil:
		e.cycle.ScheduleNext(now.Add(e.initialInterval()))
		dirty = true
		report.Action = TickScheduled
		e.logger.Info("Initial spawn scheduled", "next_spawn", timeAttr(e.cycle.NextSpawnTime))
	case !e.cycle.SpawnDue(now):
		report.Action = TickWaiting
	default:
		report.Action = TickDropped
	}

	var snap *Snapshot
	if dirty {
		snap = e.snapshotLocked()
	}
	report.NextSpawn = ptr.Clone(e.cycle.NextSpawnTime)
	e.mu.Unlock()

	if snap != nil {
		e.persist(ctx, snap)
	}
	if report.Action != TickDropped {
		return report
	}

	result := e.runDrop(ctx, false)
	report.Result = &result
	if result.Outcome == drop.OutcomeSkipped {
		// the spawn stays due, so the next tick retries
		e.logger.Warn("Scheduled drop skipped", "reason", result.Reason)
		return report
	}
	report.NextSpawn = e.reschedule(ctx, false)
	return report
}

// ForceDrop opens a drop immediately, ignoring the quota gate. A winner still
// counts toward the cycle's claims.
func (e *Engine) ForceDrop(ctx context.Context) drop.Result {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	now := e.clock.Now()
	e.mu.Lock()
	var snap *Snapshot
	if e.cycle.ResetIfDue(now, e.spawnInterval()) {
		snap = e.snapshotLocked()
	}
	e.mu.Unlock()
	if snap != nil {
		e.persist(ctx, snap)
	}

	result := e.runDrop(ctx, true)
	if result.Outcome == drop.OutcomeSkipped {
		e.logger.Info("Forced drop skipped", "reason", result.Reason)
		return result
	}
	e.reschedule(ctx, true)
	return result
}

// ResetPool restores every prize to its catalog stock. Nothing else changes.
func (e *Engine) ResetPool(ctx context.Context) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.Lock()
	e.pool.ResetToDefaults()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.persist(ctx, snap)
	e.metrics.StockLevels(snap.Stock)
	e.logger.Info("Prize pool reset to defaults")
}

// ResetHistory clears the winner log.
func (e *Engine) ResetHistory(ctx context.Context) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	e.mu.Lock()
	cleared := e.winners.Len()
	e.winners.Clear()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.persist(ctx, snap)
	e.logger.Info("Winner history cleared", "records", cleared)
}

// ResetCycleNow starts a fresh cycle anchored at now with a new quota and
// next spawn.
func (e *Engine) ResetCycleNow(ctx context.Context) readmodel.CycleView {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	now := e.clock.Now()
	e.mu.Lock()
	e.cycle.Restart(now, e.cfg.CycleLength, e.sampleQuota(), e.spawnInterval())
	snap := e.snapshotLocked()
	view := e.cycleViewLocked(now)
	e.mu.Unlock()

	e.persist(ctx, snap)
	e.logger.Info("Cycle manually restarted",
		"first_spawn", timeAttr(view.FirstSpawnTime),
		"cycle_reset", timeAttr(view.CycleResetTime),
		"quota", intAttr(view.DailyQuota),
		"next_spawn", timeAttr(view.NextSpawnTime))
	return view
}

// runDrop publishes a drop, runs its response window and commits the
// outcome. The caller holds opMu.
func (e *Engine) runDrop(ctx context.Context, forced bool) drop.Result {
	e.mu.RLock()
	drawable := e.pool.HasDrawable()
	e.mu.RUnlock()
	if !drawable {
		return e.skip(reasonPoolEmpty)
	}

	ann, err := e.notifier.AnnounceDrop(ctx, e.cfg.ResponseWindow)
	if err != nil {
		e.logger.Error("Failed to announce drop", "error", err)
		return e.skip(reasonAnnounceFailed)
	}
	active, err := drop.Open(ann.Handle, ann.ChannelRef, e.clock.Now(), e.cfg.ResponseWindow, forced)
	if err != nil {
		e.logger.Error("Notifier returned an unusable drop handle", "error", err)
		return e.skip(reasonAnnounceFailed)
	}

	attempts := e.reactions.Open(active.Handle())
	defer e.reactions.Close(active.Handle())

	e.mu.Lock()
	e.active = active
	var snap *Snapshot
	if !e.cycle.Started() {
		e.cycle.Start(active.OpenedAt(), e.cfg.CycleLength, e.sampleQuota())
		snap = e.snapshotLocked()
		e.logger.Info("First spawn of new cycle",
			"first_spawn", timeAttr(e.cycle.FirstSpawnTime),
			"cycle_reset", timeAttr(e.cycle.CycleResetTime),
			"quota", intAttr(e.cycle.DailyQuota))
	}
	e.mu.Unlock()
	if snap != nil {
		e.persist(ctx, snap)
	}

	e.metrics.DropOpened(forced)
	e.logger.Info("Drop opened",
		"drop_handle", active.Handle().String(),
		"window_seconds", active.WindowSeconds(),
		"forced", forced)

	verdict := e.arbiter.Resolve(ctx, active, attempts)
	result := e.settle(ctx, active, verdict)

	e.mu.Lock()
	active.Resolve()
	e.active = nil
	e.mu.Unlock()

	e.metrics.DropResolved(result.Outcome)
	return result
}

// settle commits a verdict. A won drop draws its prize fresh, depletes it,
// appends the winner and counts the claim, then saves before announcing.
func (e *Engine) settle(ctx context.Context, active *drop.ActiveDrop, verdict Verdict) drop.Result {
	handle := active.Handle()
	if !verdict.Won() {
		e.logger.Info("Drop vanished", "drop_handle", handle.String(), "rejected", verdict.Rejected)
		return e.vanish(ctx, handle, verdict, "")
	}

	e.mu.Lock()
	won, ok := e.pool.Draw(e.rng)
	if !ok {
		e.mu.Unlock()
		e.logger.Warn("Winner accepted but no prize could be drawn", "drop_handle", handle.String(), "user_id", verdict.WinnerID)
		return e.vanish(ctx, handle, verdict, reasonPoolEmpty)
	}
	rec, err := winner.NewRecord(verdict.WinnerID, won.ID, won.DisplayName, e.clock.Now(), handle.String(), active.Channel())
	if err == nil {
		e.winners.Append(rec)
	} else {
		e.logger.Error("Failed to build winner record", "user_id", verdict.WinnerID, "error", err)
	}
	e.cycle.RecordClaim()
	snap := e.snapshotLocked()
	claims, quota := e.cycle.ClaimsThisCycle, intAttr(e.cycle.DailyQuota)
	e.mu.Unlock()

	e.persist(ctx, snap)
	e.metrics.StockLevels(snap.Stock)
	e.logger.Info("Drop won",
		"drop_handle", handle.String(),
		"user_id", verdict.WinnerID,
		"prize_id", won.ID.String(),
		"bypassed", verdict.Bypassed,
		"claims", claims,
		"quota", quota)

	if err := e.notifier.AnnounceWinner(ctx, handle, verdict.WinnerID, won); err != nil {
		e.logger.Error("Failed to announce winner", "drop_handle", handle.String(), "user_id", verdict.WinnerID, "error", err)
	}

	return drop.Result{
		Outcome:  drop.OutcomeWon,
		Handle:   handle,
		WinnerID: verdict.WinnerID,
		Prize:    &won,
		Rejected: verdict.Rejected,
	}
}

// vanish tells the channel nobody won and returns the vanished result.
func (e *Engine) vanish(ctx context.Context, handle drop.Handle, verdict Verdict, reason string) drop.Result {
	if err := e.notifier.AnnounceVanished(ctx, handle); err != nil {
		e.logger.Error("Failed to announce vanished drop", "drop_handle", handle.String(), "error", err)
	}
	return drop.Result{Outcome: drop.OutcomeVanished, Handle: handle, Rejected: verdict.Rejected, Reason: reason}
}

// reschedule arms the next spawn after a drop, or pins it to the cycle reset
// once the quota is used up.
func (e *Engine) reschedule(ctx context.Context, forced bool) *time.Time {
	now := e.clock.Now()

	e.mu.Lock()
	if e.cycle.QuotaExhausted() {
		e.cycle.PinToReset()
		e.logger.Info("Cycle quota reached",
			"claims", e.cycle.ClaimsThisCycle,
			"quota", intAttr(e.cycle.DailyQuota),
			"next_spawn", timeAttr(e.cycle.NextSpawnTime))
	} else {
		interval := e.spawnInterval()
		if forced {
			interval = e.forcedInterval()
		}
		e.cycle.ScheduleNext(now.Add(interval))
		e.logger.Info("Next spawn scheduled", "next_spawn", timeAttr(e.cycle.NextSpawnTime))
	}
	next := ptr.Clone(e.cycle.NextSpawnTime)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.persist(ctx, snap)
	return next
}

func (e *Engine) skip(reason string) drop.Result {
	e.metrics.DropResolved(drop.OutcomeSkipped)
	return drop.Skipped(reason)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
