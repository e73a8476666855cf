package reaction

import (
	"errors"
	"log/slog"
	"sync"

	"dropengine/internal/domain/drop"
	"dropengine/internal/pkg/clock"
	"dropengine/internal/pkg/errs"
	"dropengine/internal/usecase"
)

var (
	ErrNoActiveDrop   = errs.ErrNoActiveDrop
	ErrHandleMismatch = errs.ErrHandleMismatch
	ErrBackpressure   = errs.ErrClaimBackpressure
	ErrEmptyUser      = errors.New("claim has no user id")
)

// Hub is the in-memory claim ingress. At most one handle is open; attempts
// for it are queued in arrival order on a bounded channel.
type Hub struct {
	mu     sync.Mutex
	handle drop.Handle
	ch     chan drop.Attempt
	buffer int
	clock  clock.Clock
	logger *slog.Logger
}

var _ usecase.ReactionSource = (*Hub)(nil)

func NewHub(buffer int, clk clock.Clock, logger *slog.Logger) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{buffer: buffer, clock: clk, logger: logger}
}

// Open starts accepting attempts for handle. A previously open handle is
// closed first.
func (h *Hub) Open(handle drop.Handle) <-chan drop.Attempt {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ch != nil {
		h.logger.Warn("Closing stale claim stream", "drop_handle", h.handle.String())
		close(h.ch)
	}
	h.handle = handle
	h.ch = make(chan drop.Attempt, h.buffer)
	return h.ch
}

// Close stops accepting attempts for handle. Closing a handle that is not
// open does nothing.
func (h *Hub) Close(handle drop.Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ch == nil || h.handle != handle {
		return
	}
	close(h.ch)
	h.ch = nil
	h.handle = ""
}

// Submit stamps and queues one claim attempt. It never blocks.
func (h *Hub) Submit(userID string, handle drop.Handle) (drop.Attempt, error) {
	if userID == "" {
		return drop.Attempt{}, ErrEmptyUser
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ch == nil {
		return drop.Attempt{}, ErrNoActiveDrop
	}
	if handle != h.handle {
		return drop.Attempt{}, ErrHandleMismatch
	}

	attempt := drop.Attempt{UserID: userID, At: h.clock.Now(), Handle: handle}
	select {
	case h.ch <- attempt:
		return attempt, nil
	default:
		h.logger.Warn("Claim buffer full, dropping attempt", "drop_handle", handle.String(), "user_id", userID)
		return drop.Attempt{}, ErrBackpressure
	}
}

// Current returns the open handle, if any.
func (h *Hub) Current() (drop.Handle, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.handle, h.ch != nil
}
