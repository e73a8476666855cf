package notifier

import (
	"context"
	"log/slog"
	"time"

	"dropengine/internal/domain/drop"
	"dropengine/internal/domain/prize"
	"dropengine/internal/usecase"
)

// LogNotifier writes announcements to the structured log. It never fails.
type LogNotifier struct {
	channel string
	logger  *slog.Logger
}

var _ usecase.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(channel string, logger *slog.Logger) *LogNotifier {
	return &LogNotifier{channel: channel, logger: logger.With("notifier", "log")}
}

func (n *LogNotifier) AnnounceDrop(ctx context.Context, window time.Duration) (drop.Announcement, error) {
	ann := drop.Announcement{Handle: newHandle(), ChannelRef: n.channel}
	return ann, n.PublishDrop(ctx, ann, window)
}

func (n *LogNotifier) PublishDrop(ctx context.Context, ann drop.Announcement, window time.Duration) error {
	n.logger.InfoContext(ctx, "A mystery drop appeared",
		"drop_handle", ann.Handle.String(),
		"channel", ann.ChannelRef,
		"window_seconds", int(window/time.Second))
	return nil
}

func (n *LogNotifier) AnnounceRejectedClaim(ctx context.Context, handle drop.Handle, userID, reason string) error {
	n.logger.InfoContext(ctx, "Claim rejected",
		"drop_handle", handle.String(),
		"user_id", userID,
		"reason", reason)
	return nil
}

func (n *LogNotifier) AnnounceWinner(ctx context.Context, handle drop.Handle, userID string, won prize.Definition) error {
	n.logger.InfoContext(ctx, "Drop claimed",
		"drop_handle", handle.String(),
		"user_id", userID,
		"prize_id", won.ID.String(),
		"prize_name", won.DisplayName,
		"rarity", won.Rarity.String(),
		"stars", Stars(won.Rarity),
		"remaining", won.Remaining)
	return nil
}

func (n *LogNotifier) AnnounceVanished(ctx context.Context, handle drop.Handle) error {
	n.logger.InfoContext(ctx, "Nobody claimed the drop, it vanished", "drop_handle", handle.String())
	return nil
}
