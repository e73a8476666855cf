//go:build unit || e2e

package builder

import (
	"time"

	"dropengine/internal/domain/cycle"
	"dropengine/internal/domain/prize"
	"dropengine/internal/domain/winner"
	"dropengine/internal/usecase"
)

var BaseTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type WinnerBuilder struct {
	UserID     string
	PrizeID    string
	PrizeName  string
	Timestamp  time.Time
	MessageRef string
	ChannelRef string
}

func NewWinnerBuilder() *WinnerBuilder {
	return &WinnerBuilder{
		UserID:     "user-1",
		PrizeID:    "bit_frame",
		PrizeName:  "Bit Frame of Your Choice",
		Timestamp:  BaseTime,
		MessageRef: "msg-1",
		ChannelRef: "drops",
	}
}

func (b *WinnerBuilder) WithUser(userID string) *WinnerBuilder {
	b.UserID = userID
	return b
}

func (b *WinnerBuilder) WithPrize(id string) *WinnerBuilder {
	b.PrizeID = id
	b.PrizeName = id
	return b
}

func (b *WinnerBuilder) At(t time.Time) *WinnerBuilder {
	b.Timestamp = t
	return b
}

func (b *WinnerBuilder) BuildDomain() (winner.Record, error) {
	return winner.NewRecord(b.UserID, prize.ID(b.PrizeID), b.PrizeName, b.Timestamp, b.MessageRef, b.ChannelRef)
}

func (b *WinnerBuilder) BuildSnapshot() usecase.WinnerSnapshot {
	return usecase.WinnerSnapshot{
		UserID:     b.UserID,
		PrizeID:    prize.ID(b.PrizeID),
		PrizeName:  b.PrizeName,
		Timestamp:  b.Timestamp,
		MessageRef: b.MessageRef,
		ChannelRef: b.ChannelRef,
	}
}

type SnapshotBuilder struct {
	snap usecase.Snapshot
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{snap: usecase.Snapshot{Stock: map[prize.ID]int{}}}
}

func (b *SnapshotBuilder) WithStock(id string, remaining int) *SnapshotBuilder {
	b.snap.Stock[prize.ID(id)] = remaining
	return b
}

func (b *SnapshotBuilder) WithWinner(w *WinnerBuilder) *SnapshotBuilder {
	b.snap.Winners = append(b.snap.Winners, w.BuildSnapshot())
	return b
}

// WithCycle anchors a started cycle at first with the given quota and claims.
func (b *SnapshotBuilder) WithCycle(first time.Time, length time.Duration, quota, claims int) *SnapshotBuilder {
	b.snap.Cycle.Start(first, length, quota)
	b.snap.Cycle.ClaimsThisCycle = claims
	return b
}

func (b *SnapshotBuilder) WithNextSpawn(at time.Time) *SnapshotBuilder {
	b.snap.Cycle.ScheduleNext(at)
	return b
}

func (b *SnapshotBuilder) WithRawCycle(state cycle.State) *SnapshotBuilder {
	b.snap.Cycle = state
	return b
}

func (b *SnapshotBuilder) Build() *usecase.Snapshot {
	out := b.snap
	out.Stock = make(map[prize.ID]int, len(b.snap.Stock))
	for id, n := range b.snap.Stock {
		out.Stock[id] = n
	}
	out.Winners = append([]usecase.WinnerSnapshot(nil), b.snap.Winners...)
	out.Cycle = b.snap.Cycle.Clone()
	return &out
}
