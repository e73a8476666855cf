package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"dropengine/internal/domain/cycle"
	"dropengine/internal/domain/prize"
	"dropengine/internal/usecase"
)

// document is the persisted layout. Unknown keys are ignored on decode and
// missing sections fall back to their zero values.
type document struct {
	Prizes  map[string]prizeDoc `json:"prizes"`
	Winners []winnerDoc         `json:"winners"`
	Meta    metaDoc             `json:"meta"`
}

type prizeDoc struct {
	Remaining int `json:"remaining"`
}

// winnerDoc also reads the older key names prize_key, message_id and
// channel_id, which encodeSnapshot never writes.
type winnerDoc struct {
	UserID     ref          `json:"user_id"`
	PrizeID    string       `json:"prize_id"`
	PrizeKey   string       `json:"prize_key,omitempty"`
	PrizeName  string       `json:"prize_name"`
	Timestamp  epochSeconds `json:"timestamp"`
	MessageRef ref          `json:"message_ref,omitempty"`
	MessageID  ref          `json:"message_id,omitempty"`
	ChannelRef ref          `json:"channel_ref,omitempty"`
	ChannelID  ref          `json:"channel_id,omitempty"`
}

func (w winnerDoc) prizeID() string {
	return firstNonEmpty(w.PrizeID, w.PrizeKey)
}

// metaDoc falls back to sent_today and max_boxes_today when the current keys
// are absent.
type metaDoc struct {
	ClaimsThisCycle *int          `json:"claims_this_cycle"`
	SentToday       *int          `json:"sent_today,omitempty"`
	DailyQuota      *int          `json:"daily_quota"`
	MaxBoxesToday   *int          `json:"max_boxes_today,omitempty"`
	FirstSpawnTime  *epochSeconds `json:"first_spawn_time"`
	CycleResetTime  *epochSeconds `json:"cycle_reset_time"`
	NextSpawnTime   *epochSeconds `json:"next_spawn_time"`
}

func (m metaDoc) claims() int {
	switch {
	case m.ClaimsThisCycle != nil:
		return *m.ClaimsThisCycle
	case m.SentToday != nil:
		return *m.SentToday
	default:
		return 0
	}
}

func (m metaDoc) quota() *int {
	if m.DailyQuota != nil {
		return m.DailyQuota
	}
	return m.MaxBoxesToday
}

// ref is an opaque identifier. Platform ids may be stored as JSON numbers;
// the literal is kept as written so large ids stay exact.
type ref string

func (r *ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*r = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = ref(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier %s: %w", b, err)
	}
	*r = ref(n.String())
	return nil
}

func firstNonEmpty[T ~string](values ...T) T {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// epochSeconds is written as integer Unix seconds. It also reads fractional
// seconds and RFC 3339 strings, which older snapshots contain.
type epochSeconds int64

func (e epochSeconds) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(e))
}

func (e *epochSeconds) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("timestamp %q: %w", s, err)
		}
		*e = epochSeconds(t.Unix())
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("timestamp %v is not finite", f)
	}
	*e = epochSeconds(math.Floor(f))
	return nil
}

func (e epochSeconds) Time() time.Time {
	return time.Unix(int64(e), 0).UTC()
}

func toEpoch(t time.Time) epochSeconds {
	return epochSeconds(t.Unix())
}

func toEpochPtr(t *time.Time) *epochSeconds {
	if t == nil {
		return nil
	}
	e := toEpoch(*t)
	return &e
}

func fromEpochPtr(e *epochSeconds) *time.Time {
	if e == nil {
		return nil
	}
	t := e.Time()
	return &t
}

func encodeSnapshot(snap *usecase.Snapshot) ([]byte, error) {
	doc := document{
		Prizes:  make(map[string]prizeDoc, len(snap.Stock)),
		Winners: make([]winnerDoc, 0, len(snap.Winners)),
		Meta: metaDoc{
			ClaimsThisCycle: &snap.Cycle.ClaimsThisCycle,
			DailyQuota:      snap.Cycle.DailyQuota,
			FirstSpawnTime:  toEpochPtr(snap.Cycle.FirstSpawnTime),
			CycleResetTime:  toEpochPtr(snap.Cycle.CycleResetTime),
			NextSpawnTime:   toEpochPtr(snap.Cycle.NextSpawnTime),
		},
	}
	for id, remaining := range snap.Stock {
		doc.Prizes[id.String()] = prizeDoc{Remaining: remaining}
	}
	for _, w := range snap.Winners {
		doc.Winners = append(doc.Winners, winnerDoc{
			UserID:     ref(w.UserID),
			PrizeID:    w.PrizeID.String(),
			PrizeName:  w.PrizeName,
			Timestamp:  toEpoch(w.Timestamp),
			MessageRef: ref(w.MessageRef),
			ChannelRef: ref(w.ChannelRef),
		})
	}
	return json.MarshalIndent(doc, "", "    ")
}

func decodeSnapshot(data []byte) (*usecase.Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	snap := &usecase.Snapshot{
		Stock:   make(map[prize.ID]int, len(doc.Prizes)),
		Winners: make([]usecase.WinnerSnapshot, 0, len(doc.Winners)),
		Cycle: cycle.State{
			ClaimsThisCycle: doc.Meta.claims(),
			DailyQuota:      doc.Meta.quota(),
			FirstSpawnTime:  fromEpochPtr(doc.Meta.FirstSpawnTime),
			CycleResetTime:  fromEpochPtr(doc.Meta.CycleResetTime),
			NextSpawnTime:   fromEpochPtr(doc.Meta.NextSpawnTime),
		},
	}
	for id, p := range doc.Prizes {
		snap.Stock[prize.ID(id)] = p.Remaining
	}
	for _, w := range doc.Winners {
		snap.Winners = append(snap.Winners, usecase.WinnerSnapshot{
			UserID:     string(w.UserID),
			PrizeID:    prize.ID(w.prizeID()),
			PrizeName:  w.PrizeName,
			Timestamp:  w.Timestamp.Time(),
			MessageRef: string(firstNonEmpty(w.MessageRef, w.MessageID)),
			ChannelRef: string(firstNonEmpty(w.ChannelRef, w.ChannelID)),
		})
	}
	return snap, nil
}
