package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dropengine/internal/domain/drop"
	"dropengine/internal/domain/prize"
	"dropengine/internal/pkg/errs"
	"dropengine/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// dropPublisher lets a fan-out deliver an announcement whose handle was
// minted by another notifier.
type dropPublisher interface {
	PublishDrop(ctx context.Context, ann drop.Announcement, window time.Duration) error
}

func newHandle() drop.Handle {
	return drop.Handle(uuid.NewString())
}

// Stars renders a rarity tier as a star count, one per tier.
func Stars(r prize.Rarity) int {
	return r.Rank() + 1
}

// Fanout sends every announcement to all notifiers concurrently. The first
// notifier mints the drop handle; the rest receive the same announcement.
type Fanout struct {
	notifiers []usecase.Notifier
	logger    *slog.Logger
}

var _ usecase.Notifier = (*Fanout)(nil)

func NewFanout(logger *slog.Logger, notifiers ...usecase.Notifier) *Fanout {
	return &Fanout{notifiers: notifiers, logger: logger}
}

// AnnounceDrop fails only when the first notifier fails. Later notifiers are
// best-effort.
func (f *Fanout) AnnounceDrop(ctx context.Context, window time.Duration) (drop.Announcement, error) {
	if len(f.notifiers) == 0 {
		return drop.Announcement{Handle: newHandle()}, nil
	}

	ann, err := f.notifiers[0].AnnounceDrop(ctx, window)
	if err != nil {
		return drop.Announcement{}, err
	}

	for _, n := range f.notifiers[1:] {
		var perr error
		if p, ok := n.(dropPublisher); ok {
			perr = p.PublishDrop(ctx, ann, window)
		} else {
			_, perr = n.AnnounceDrop(ctx, window)
		}
		if perr != nil {
			f.logger.Warn("Secondary notifier failed to announce drop", "drop_handle", ann.Handle.String(), "error", perr)
		}
	}
	return ann, nil
}

func (f *Fanout) AnnounceRejectedClaim(ctx context.Context, handle drop.Handle, userID, reason string) error {
	return f.each(func(n usecase.Notifier) error {
		return n.AnnounceRejectedClaim(ctx, handle, userID, reason)
	})
}

func (f *Fanout) AnnounceWinner(ctx context.Context, handle drop.Handle, userID string, won prize.Definition) error {
	return f.each(func(n usecase.Notifier) error {
		return n.AnnounceWinner(ctx, handle, userID, won)
	})
}

func (f *Fanout) AnnounceVanished(ctx context.Context, handle drop.Handle) error {
	return f.each(func(n usecase.Notifier) error {
		return n.AnnounceVanished(ctx, handle)
	})
}

func (f *Fanout) each(fn func(usecase.Notifier) error) error {
	var (
		mu     sync.Mutex
		joined []error
		g      errgroup.Group
	)
	for _, n := range f.notifiers {
		g.Go(func() error {
			if err := fn(n); err != nil {
				mu.Lock()
				joined = append(joined, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	if len(joined) == 0 {
		return nil
	}
	return errs.Join(joined...)
}
