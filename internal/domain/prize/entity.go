package prize

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID         = errors.New("prize id cannot be empty")
	ErrEmptyName       = errors.New("prize display name cannot be empty")
	ErrInvalidWeight   = errors.New("prize weight cannot be negative")
	ErrNegativeStock   = errors.New("prize stock cannot be negative")
	ErrConflictingRule = errors.New("prize cannot be both mandatory-skip and always-ok back-to-back")
	ErrUnknownPrize    = errors.New("unknown prize id")
	ErrDuplicateID     = errors.New("duplicate prize id in catalog")
)

type ID string

func (id ID) String() string {
	return string(id)
}

// Definition is one catalog entry. Remaining is the only field that changes
// at runtime.
type Definition struct {
	ID                 ID
	DisplayName        string
	Rarity             Rarity
	Weight             float64
	Remaining          int
	MandatorySkip      bool
	AlwaysOKBackToBack bool
}

func NewDefinition(
	id, displayName string,
	rarity Rarity,
	weight float64,
	remaining int,
	mandatorySkip, alwaysOKBackToBack bool,
) (Definition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Definition{}, ErrEmptyID
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return Definition{}, ErrEmptyName
	}
	if !rarity.IsValid() {
		return Definition{}, ErrInvalidRarity
	}
	if weight < 0 {
		return Definition{}, ErrInvalidWeight
	}
	if remaining < 0 {
		return Definition{}, ErrNegativeStock
	}
	if mandatorySkip && alwaysOKBackToBack {
		return Definition{}, ErrConflictingRule
	}

	return Definition{
		ID:                 ID(id),
		DisplayName:        displayName,
		Rarity:             rarity,
		Weight:             weight,
		Remaining:          remaining,
		MandatorySkip:      mandatorySkip,
		AlwaysOKBackToBack: alwaysOKBackToBack,
	}, nil
}

func (d Definition) Available() bool {
	return d.Remaining > 0
}

// Drawable reports whether the entry can enter the cumulative weight table.
func (d Definition) Drawable() bool {
	return d.Available() && d.Weight > 0
}

// ForcesSkip reports whether winning this prize makes the winner sit out the
// next drop.
func (d Definition) ForcesSkip() bool {
	return d.MandatorySkip && !d.AlwaysOKBackToBack
}
