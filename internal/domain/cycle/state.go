package cycle

import (
	"errors"
	"time"

	"dropengine/internal/pkg/ptr"
)

var (
	ErrInvalidQuota    = errors.New("daily quota must be positive")
	ErrClaimsOverQuota = errors.New("claims exceed daily quota")
	ErrResetMismatch   = errors.New("cycle reset time must equal first spawn time plus cycle length")
	ErrPartialCycle    = errors.New("daily quota, first spawn time and cycle reset time must be set together")
	ErrNegativeClaims  = errors.New("claims must not be negative")
)

type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseActive     Phase = "active"
	PhaseExhausted  Phase = "exhausted"
)

// State is the rolling claim window. A cycle is anchored to its first spawn,
// not to a wall-clock boundary.
type State struct {
	FirstSpawnTime  *time.Time
	CycleResetTime  *time.Time
	DailyQuota      *int
	ClaimsThisCycle int
	NextSpawnTime   *time.Time
}

// Validate checks a restored state against the cycle invariants. A started
// cycle carries its quota and both anchors; an unstarted one has none of them
// and no claims.
func (s *State) Validate(length time.Duration) error {
	if s.ClaimsThisCycle < 0 {
		return ErrNegativeClaims
	}
	set := 0
	for _, present := range []bool{s.DailyQuota != nil, s.FirstSpawnTime != nil, s.CycleResetTime != nil} {
		if present {
			set++
		}
	}
	switch set {
	case 0:
		if s.ClaimsThisCycle > 0 {
			return ErrPartialCycle
		}
		return nil
	case 3:
	default:
		return ErrPartialCycle
	}

	if *s.DailyQuota < 1 {
		return ErrInvalidQuota
	}
	if s.ClaimsThisCycle > *s.DailyQuota {
		return ErrClaimsOverQuota
	}
	if !s.FirstSpawnTime.Add(length).Equal(*s.CycleResetTime) {
		return ErrResetMismatch
	}
	return nil
}

// ResetIfDue clears the cycle once its reset time has passed and arms the
// next spawn. It reports whether a reset happened.
func (s *State) ResetIfDue(now time.Time, nextSpawnIn time.Duration) bool {
	if s.CycleResetTime == nil || now.Before(*s.CycleResetTime) {
		return false
	}
	s.clear()
	s.NextSpawnTime = ptr.Of(now.Add(nextSpawnIn))
	return true
}

// Started reports whether the current cycle has had its first spawn.
func (s *State) Started() bool {
	return s.FirstSpawnTime != nil
}

// Start anchors a new cycle at now.
func (s *State) Start(now time.Time, length time.Duration, quota int) {
	s.FirstSpawnTime = ptr.Of(now)
	s.CycleResetTime = ptr.Of(now.Add(length))
	s.DailyQuota = ptr.Of(quota)
}

// Restart discards the current cycle and starts a fresh one at now.
func (s *State) Restart(now time.Time, length time.Duration, quota int, nextSpawnIn time.Duration) {
	s.clear()
	s.Start(now, length, quota)
	s.NextSpawnTime = ptr.Of(now.Add(nextSpawnIn))
}

func (s *State) QuotaExhausted() bool {
	return s.DailyQuota != nil && s.ClaimsThisCycle >= *s.DailyQuota
}

// RecordClaim counts one won drop, never beyond the quota.
func (s *State) RecordClaim() {
	if s.QuotaExhausted() {
		return
	}
	s.ClaimsThisCycle++
}

// PinToReset parks the next spawn at the cycle reset time.
func (s *State) PinToReset() {
	s.NextSpawnTime = ptr.Clone(s.CycleResetTime)
}

func (s *State) ScheduleNext(at time.Time) {
	s.NextSpawnTime = &at
}

func (s *State) SpawnDue(now time.Time) bool {
	return s.NextSpawnTime != nil && !now.Before(*s.NextSpawnTime)
}

func (s *State) Phase() Phase {
	switch {
	case !s.Started():
		return PhaseNotStarted
	case s.QuotaExhausted():
		return PhaseExhausted
	default:
		return PhaseActive
	}
}

func (s *State) Clone() State {
	return State{
		FirstSpawnTime:  ptr.Clone(s.FirstSpawnTime),
		CycleResetTime:  ptr.Clone(s.CycleResetTime),
		DailyQuota:      ptr.Clone(s.DailyQuota),
		ClaimsThisCycle: s.ClaimsThisCycle,
		NextSpawnTime:   ptr.Clone(s.NextSpawnTime),
	}
}

func (s *State) clear() {
	s.ClaimsThisCycle = 0
	s.DailyQuota = nil
	s.FirstSpawnTime = nil
	s.CycleResetTime = nil
}
