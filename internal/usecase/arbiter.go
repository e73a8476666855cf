package usecase

import (
	"context"
	"log/slog"

	"dropengine/internal/domain/drop"
	"dropengine/internal/pkg/clock"
)

// EligibilityChecker answers whether a user may win the open drop right now.
type EligibilityChecker interface {
	Check(userID string) (ok bool, reason string)
}

// Verdict is how a response window ended. An empty WinnerID means the drop
// vanished.
type Verdict struct {
	WinnerID string
	Bypassed bool
	Rejected int
}

func (v Verdict) Won() bool {
	return v.WinnerID != ""
}

// ClaimArbiter resolves one drop's response window against the attempt
// stream. The first acceptable attempt wins; winner selection is never
// randomized.
type ClaimArbiter struct {
	clock       clock.Clock
	notifier    Notifier
	eligibility EligibilityChecker
	bypass      map[string]struct{}
	metrics     Metrics
	logger      *slog.Logger
}

func NewClaimArbiter(
	clk clock.Clock,
	notifier Notifier,
	eligibility EligibilityChecker,
	bypassUsers []string,
	metrics Metrics,
	logger *slog.Logger,
) *ClaimArbiter {
	bypass := make(map[string]struct{}, len(bypassUsers))
	for _, id := range bypassUsers {
		if id != "" {
			bypass[id] = struct{}{}
		}
	}
	if metrics == nil {
		metrics = NewNopMetrics()
	}
	return &ClaimArbiter{
		clock:       clk,
		notifier:    notifier,
		eligibility: eligibility,
		bypass:      bypass,
		metrics:     metrics,
		logger:      logger,
	}
}

// Resolve consumes attempts until one is accepted or the deadline passes.
// The deadline is computed once from the drop's open time; rejections never
// extend it. ctx cancellation is treated as shutdown and ends the window
// without a winner.
func (a *ClaimArbiter) Resolve(ctx context.Context, active *drop.ActiveDrop, attempts <-chan drop.Attempt) Verdict {
	deadline := active.Deadline()
	expired := a.clock.After(deadline.Sub(a.clock.Now()))

	var verdict Verdict
	for {
		select {
		case <-expired:
			return verdict

		case <-ctx.Done():
			a.logger.Warn("Drop window interrupted by shutdown",
				"drop_handle", active.Handle().String(),
				"error", ctx.Err())
			return verdict

		case attempt, ok := <-attempts:
			if !ok {
				// source closed; only the deadline can end the window now
				attempts = nil
				continue
			}
			if attempt.Handle != "" && attempt.Handle != active.Handle() {
				continue
			}
			if attempt.At.After(deadline) {
				return verdict
			}

			if a.isBypass(attempt.UserID) {
				verdict.WinnerID = attempt.UserID
				verdict.Bypassed = true
				return verdict
			}

			allowed, reason := a.eligibility.Check(attempt.UserID)
			if allowed {
				verdict.WinnerID = attempt.UserID
				return verdict
			}

			verdict.Rejected++
			a.metrics.ClaimRejected()
			a.logger.Info("Claim rejected",
				"drop_handle", active.Handle().String(),
				"user_id", attempt.UserID,
				"reason", reason)
			if err := a.notifier.AnnounceRejectedClaim(ctx, active.Handle(), attempt.UserID, reason); err != nil {
				a.logger.Error("Failed to announce rejected claim",
					"drop_handle", active.Handle().String(),
					"user_id", attempt.UserID,
					"error", err)
			}
		}
	}
}

func (a *ClaimArbiter) isBypass(userID string) bool {
	_, ok := a.bypass[userID]
	return ok
}
