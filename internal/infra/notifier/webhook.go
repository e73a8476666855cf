package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"dropengine/internal/domain/drop"
	"dropengine/internal/domain/prize"
	"dropengine/internal/pkg/clock"
	"dropengine/internal/pkg/errs"
	"dropengine/internal/usecase"
)

const (
	EventDrop     = "drop"
	EventRejected = "rejected"
	EventWinner   = "winner"
	EventVanished = "vanished"
)

var ErrWebhookStatus = errs.New("webhook returned non-2xx status")

// Event is the JSON body posted for every announcement.
type Event struct {
	Type          string        `json:"type"`
	Handle        string        `json:"handle"`
	ChannelRef    string        `json:"channel_ref,omitempty"`
	UserID        string        `json:"user_id,omitempty"`
	Prize         *PrizePayload `json:"prize,omitempty"`
	WindowSeconds int           `json:"window_seconds,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	At            time.Time     `json:"at"`
}

type PrizePayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Rarity    string `json:"rarity"`
	Stars     int    `json:"stars"`
	Remaining int    `json:"remaining"`
}

// WebhookNotifier posts each announcement to a single URL. Any non-2xx
// response is an error; nothing is retried.
type WebhookNotifier struct {
	url     string
	channel string
	client  *http.Client
	clock   clock.Clock
	logger  *slog.Logger
}

var _ usecase.Notifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url, channel string, timeout time.Duration, clk clock.Clock, logger *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:     url,
		channel: channel,
		client:  &http.Client{Timeout: timeout},
		clock:   clk,
		logger:  logger.With("notifier", "webhook"),
	}
}

func (n *WebhookNotifier) AnnounceDrop(ctx context.Context, window time.Duration) (drop.Announcement, error) {
	ann := drop.Announcement{Handle: newHandle(), ChannelRef: n.channel}
	if err := n.PublishDrop(ctx, ann, window); err != nil {
		return drop.Announcement{}, err
	}
	return ann, nil
}

func (n *WebhookNotifier) PublishDrop(ctx context.Context, ann drop.Announcement, window time.Duration) error {
	return n.post(ctx, Event{
		Type:          EventDrop,
		Handle:        ann.Handle.String(),
		ChannelRef:    ann.ChannelRef,
		WindowSeconds: int(window / time.Second),
	})
}

func (n *WebhookNotifier) AnnounceRejectedClaim(ctx context.Context, handle drop.Handle, userID, reason string) error {
	return n.post(ctx, Event{
		Type:       EventRejected,
		Handle:     handle.String(),
		ChannelRef: n.channel,
		UserID:     userID,
		Reason:     reason,
	})
}

func (n *WebhookNotifier) AnnounceWinner(ctx context.Context, handle drop.Handle, userID string, won prize.Definition) error {
	return n.post(ctx, Event{
		Type:       EventWinner,
		Handle:     handle.String(),
		ChannelRef: n.channel,
		UserID:     userID,
		Prize: &PrizePayload{
			ID:        won.ID.String(),
			Name:      won.DisplayName,
			Rarity:    won.Rarity.String(),
			Stars:     Stars(won.Rarity),
			Remaining: won.Remaining,
		},
	})
}

func (n *WebhookNotifier) AnnounceVanished(ctx context.Context, handle drop.Handle) error {
	return n.post(ctx, Event{
		Type:       EventVanished,
		Handle:     handle.String(),
		ChannelRef: n.channel,
	})
}

func (n *WebhookNotifier) post(ctx context.Context, ev Event) error {
	ev.At = n.clock.Now()
	body, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "encode webhook event")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errs.Wrapf(err, "deliver %s event", ev.Type)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(errs.New(fmt.Sprintf("%s event: status %d", ev.Type, resp.StatusCode)), ErrWebhookStatus)
	}
	n.logger.DebugContext(ctx, "Webhook delivered", "type", ev.Type, "drop_handle", ev.Handle)
	return nil
}
