package drop

import (
	"errors"
	"time"

	"dropengine/internal/domain/prize"
)

var (
	ErrEmptyHandle   = errors.New("drop handle cannot be empty")
	ErrInvalidWindow = errors.New("response window must be positive")
)

// Handle identifies the announcement a drop was published as. It is opaque
// to the engine.
type Handle string

func (h Handle) String() string {
	return string(h)
}

// Announcement is what the notifier returns for a published drop.
type Announcement struct {
	Handle     Handle
	ChannelRef string
}

// ActiveDrop is the single open offer. Its deadline is fixed when it opens.
type ActiveDrop struct {
	handle   Handle
	channel  string
	openedAt time.Time
	window   time.Duration
	forced   bool
	resolved bool
}

func Open(handle Handle, channel string, openedAt time.Time, window time.Duration, forced bool) (*ActiveDrop, error) {
	if handle == "" {
		return nil, ErrEmptyHandle
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	return &ActiveDrop{
		handle:   handle,
		channel:  channel,
		openedAt: openedAt,
		window:   window,
		forced:   forced,
	}, nil
}

func (d *ActiveDrop) Deadline() time.Time {
	return d.openedAt.Add(d.window)
}

func (d *ActiveDrop) Resolve() {
	d.resolved = true
}

func (d *ActiveDrop) Handle() Handle        { return d.handle }
func (d *ActiveDrop) Channel() string       { return d.channel }
func (d *ActiveDrop) OpenedAt() time.Time   { return d.openedAt }
func (d *ActiveDrop) Window() time.Duration { return d.window }
func (d *ActiveDrop) WindowSeconds() int    { return int(d.window / time.Second) }
func (d *ActiveDrop) Forced() bool          { return d.forced }
func (d *ActiveDrop) Resolved() bool        { return d.resolved }

// Attempt is one claim signal, already filtered to the open drop upstream.
type Attempt struct {
	UserID string
	At     time.Time
	Handle Handle
}

type Outcome string

const (
	OutcomeWon      Outcome = "won"
	OutcomeVanished Outcome = "vanished"
	// OutcomeSkipped means no drop was opened at all.
	OutcomeSkipped Outcome = "skipped"
)

func (o Outcome) String() string {
	return string(o)
}

type Result struct {
	Outcome  Outcome
	Handle   Handle
	WinnerID string
	Prize    *prize.Definition
	Rejected int
	Reason   string
}

func Skipped(reason string) Result {
	return Result{Outcome: OutcomeSkipped, Reason: reason}
}
