package usecase

import (
	"sort"
	"time"

	"dropengine/internal/domain/drop"
	"dropengine/internal/pkg/ptr"
	"dropengine/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

// DropQueries is the read-only surface. None of these wait on an open
// response window.
type DropQueries interface {
	Status() []readmodel.PrizeStockView
	History(page int) readmodel.HistoryPage
	CycleStatus() readmodel.CycleView
	NextSpawn() *time.Time
	ActiveDrop() *readmodel.ActiveDropView
}

var _ DropQueries = (*Engine)(nil)

// Status lists every catalog prize ordered by rarity tier, then name.
func (e *Engine) Status() []readmodel.PrizeStockView {
	e.mu.RLock()
	entries := e.pool.Entries()
	e.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := entries[i].Rarity.Rank(), entries[j].Rarity.Rank()
		if ri != rj {
			return ri < rj
		}
		return entries[i].DisplayName < entries[j].DisplayName
	})

	views := make([]readmodel.PrizeStockView, 0, len(entries))
	if err := copier.Copy(&views, &entries); err != nil {
		e.logger.Error("Failed to map prize stock", "error", err)
	}
	return views
}

func (e *Engine) History(page int) readmodel.HistoryPage {
	size := e.cfg.HistoryPageSize
	if size < 1 {
		size = 5
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	total := e.winners.Len()
	totalPages := (total + size - 1) / size
	page = min(max(page, 1), max(totalPages, 1))
	records, _ := e.winners.Page(page, size)

	out := readmodel.HistoryPage{
		Entries:    make([]readmodel.WinnerView, 0, len(records)),
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
	for _, r := range records {
		view := readmodel.WinnerView{
			UserID:     r.UserID(),
			PrizeID:    r.PrizeID().String(),
			PrizeName:  r.PrizeName(),
			Timestamp:  r.Timestamp(),
			MessageRef: r.MessageRef(),
			ChannelRef: r.ChannelRef(),
		}
		if def, ok := e.pool.Lookup(r.PrizeID()); ok {
			view.PrizeName = def.DisplayName
			view.Rarity = def.Rarity.String()
		}
		out.Entries = append(out.Entries, view)
	}
	return out
}

func (e *Engine) CycleStatus() readmodel.CycleView {
	now := e.clock.Now()
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cycleViewLocked(now)
}

func (e *Engine) NextSpawn() *time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ptr.Clone(e.cycle.NextSpawnTime)
}

// ActiveDrop returns the open drop, or nil between drops.
func (e *Engine) ActiveDrop() *readmodel.ActiveDropView {
	e.mu.RLock()
	active := e.active
	e.mu.RUnlock()
	if active == nil {
		return nil
	}
	return activeDropView(active)
}

func (e *Engine) cycleViewLocked(now time.Time) readmodel.CycleView {
	state := e.cycle.Clone()
	view := readmodel.CycleView{
		Phase:           state.Phase(),
		ClaimsThisCycle: state.ClaimsThisCycle,
		DailyQuota:      state.DailyQuota,
		FirstSpawnTime:  state.FirstSpawnTime,
		CycleResetTime:  state.CycleResetTime,
		NextSpawnTime:   state.NextSpawnTime,
	}
	if state.DailyQuota != nil {
		view.Remaining = ptr.Of(max(*state.DailyQuota-state.ClaimsThisCycle, 0))
	}
	view.ResetIn = secondsUntil(now, state.CycleResetTime)
	view.NextSpawnIn = secondsUntil(now, state.NextSpawnTime)
	return view
}

func activeDropView(d *drop.ActiveDrop) *readmodel.ActiveDropView {
	return &readmodel.ActiveDropView{
		Handle:        d.Handle().String(),
		ChannelRef:    d.Channel(),
		OpenedAt:      d.OpenedAt(),
		Deadline:      d.Deadline(),
		WindowSeconds: d.WindowSeconds(),
		Forced:        d.Forced(),
	}
}

func secondsUntil(now time.Time, t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	return ptr.Of(max(int64(t.Sub(now)/time.Second), 0))
}
