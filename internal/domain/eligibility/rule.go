// Package eligibility holds the back-to-back abuse rule: a user who wins a
// mandatory-skip prize must sit out exactly the next drop.
package eligibility

import (
	"dropengine/internal/domain/prize"
	"dropengine/internal/domain/winner"
)

const ReasonMandatorySkip = "must skip one drop after winning a top-tier prize"

// PrizeLookup resolves a prize id to its current catalog definition.
type PrizeLookup func(id prize.ID) (prize.Definition, bool)

// CanClaim looks only at the single most recent win, globally. A user is
// blocked when that win is theirs and its prize forces a skip. Prizes no
// longer in the catalog never block.
func CanClaim(last winner.Record, hasLast bool, lookup PrizeLookup, userID string) bool {
	if !hasLast {
		return true
	}
	if last.UserID() != userID {
		return true
	}
	def, ok := lookup(last.PrizeID())
	if !ok {
		return true
	}
	return !def.ForcesSkip()
}

// Check wraps CanClaim and returns the rejection reason when blocked.
func Check(log *winner.Log, lookup PrizeLookup, userID string) (bool, string) {
	last, ok := log.Last()
	if CanClaim(last, ok, lookup, userID) {
		return true, ""
	}
	return false, ReasonMandatorySkip
}
