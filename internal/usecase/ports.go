package usecase

import (
	"context"
	"time"

	"dropengine/internal/domain/cycle"
	"dropengine/internal/domain/drop"
	"dropengine/internal/domain/prize"
)

// Notifier renders and delivers announcements. Delivery is best-effort: the
// engine logs failures and never rolls back a committed claim because of one.
// AnnounceWinner receives the prize with its stock already depleted.
type Notifier interface {
	AnnounceDrop(ctx context.Context, window time.Duration) (drop.Announcement, error)
	AnnounceRejectedClaim(ctx context.Context, handle drop.Handle, userID, reason string) error
	AnnounceWinner(ctx context.Context, handle drop.Handle, userID string, won prize.Definition) error
	AnnounceVanished(ctx context.Context, handle drop.Handle) error
}

// ReactionSource supplies claim attempts for one open drop, in arrival order.
type ReactionSource interface {
	Open(handle drop.Handle) <-chan drop.Attempt
	Close(handle drop.Handle)
}

// ClaimIngress accepts claim attempts from outside the engine and feeds the
// open drop's stream.
type ClaimIngress interface {
	Submit(userID string, handle drop.Handle) (drop.Attempt, error)
}

type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
}

type Metrics interface {
	DropOpened(forced bool)
	DropResolved(outcome drop.Outcome)
	ClaimRejected()
	StockLevels(levels map[prize.ID]int)
}

// Snapshot is the persisted engine state: stock overrides, the winner log and
// the cycle metadata.
type Snapshot struct {
	Stock   map[prize.ID]int
	Winners []WinnerSnapshot
	Cycle   cycle.State
}

type WinnerSnapshot struct {
	UserID     string
	PrizeID    prize.ID
	PrizeName  string
	Timestamp  time.Time
	MessageRef string
	ChannelRef string
}

type nopMetrics struct{}

func NewNopMetrics() Metrics { return nopMetrics{} }

func (nopMetrics) DropOpened(bool)              {}
func (nopMetrics) DropResolved(drop.Outcome)    {}
func (nopMetrics) ClaimRejected()               {}
func (nopMetrics) StockLevels(map[prize.ID]int) {}
