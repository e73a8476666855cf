package readmodel

import (
	"time"

	"dropengine/internal/domain/cycle"
)

// PrizeStockView is filled by field name from prize.Definition. ForcesSkip
// takes the value of Definition.ForcesSkip.
type PrizeStockView struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Rarity      string  `json:"rarity"`
	Weight      float64 `json:"weight"`
	Remaining   int     `json:"remaining"`
	ForcesSkip  bool    `json:"mandatory_skip"`
}

type WinnerView struct {
	UserID     string    `json:"user_id"`
	PrizeID    string    `json:"prize_id"`
	PrizeName  string    `json:"prize_name"`
	Rarity     string    `json:"rarity,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	MessageRef string    `json:"message_ref,omitempty"`
	ChannelRef string    `json:"channel_ref,omitempty"`
}

// HistoryPage is one page of the winner log, newest first. Page is clamped
// into [1, TotalPages].
type HistoryPage struct {
	Entries    []WinnerView `json:"entries"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	Total      int          `json:"total"`
}

type CycleView struct {
	Phase           cycle.Phase `json:"phase"`
	ClaimsThisCycle int         `json:"claims_this_cycle"`
	DailyQuota      *int        `json:"daily_quota,omitempty"`
	Remaining       *int        `json:"remaining,omitempty"`
	FirstSpawnTime  *time.Time  `json:"first_spawn_time,omitempty"`
	CycleResetTime  *time.Time  `json:"cycle_reset_time,omitempty"`
	NextSpawnTime   *time.Time  `json:"next_spawn_time,omitempty"`
	ResetIn         *int64      `json:"reset_in_seconds,omitempty"`
	NextSpawnIn     *int64      `json:"next_spawn_in_seconds,omitempty"`
}

type ActiveDropView struct {
	Handle        string    `json:"handle"`
	ChannelRef    string    `json:"channel_ref,omitempty"`
	OpenedAt      time.Time `json:"opened_at"`
	Deadline      time.Time `json:"deadline"`
	WindowSeconds int       `json:"window_seconds"`
	Forced        bool      `json:"forced"`
}
