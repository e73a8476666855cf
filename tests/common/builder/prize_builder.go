//go:build unit || e2e

package builder

import (
	"dropengine/internal/domain/prize"
)

type PrizeBuilder struct {
	ID                 string
	DisplayName        string
	Rarity             prize.Rarity
	Weight             float64
	Remaining          int
	MandatorySkip      bool
	AlwaysOKBackToBack bool
}

func NewPrizeBuilder() *PrizeBuilder {
	return &PrizeBuilder{
		ID:          "test_prize",
		DisplayName: "Test Prize",
		Rarity:      prize.RarityCommon,
		Weight:      10,
		Remaining:   3,
	}
}

func (b *PrizeBuilder) With(mutate func(*PrizeBuilder)) *PrizeBuilder {
	mutate(b)
	return b
}

func (b *PrizeBuilder) WithID(id string) *PrizeBuilder {
	b.ID = id
	b.DisplayName = id
	return b
}

func (b *PrizeBuilder) WithRarity(r prize.Rarity) *PrizeBuilder {
	b.Rarity = r
	return b
}

func (b *PrizeBuilder) WithWeight(w float64) *PrizeBuilder {
	b.Weight = w
	return b
}

func (b *PrizeBuilder) WithRemaining(n int) *PrizeBuilder {
	b.Remaining = n
	return b
}

func (b *PrizeBuilder) AsMandatorySkip() *PrizeBuilder {
	b.MandatorySkip = true
	b.AlwaysOKBackToBack = false
	return b
}

func (b *PrizeBuilder) AsAlwaysOK() *PrizeBuilder {
	b.AlwaysOKBackToBack = true
	b.MandatorySkip = false
	return b
}

func (b *PrizeBuilder) BuildDomain() (prize.Definition, error) {
	return prize.NewDefinition(b.ID, b.DisplayName, b.Rarity, b.Weight, b.Remaining, b.MandatorySkip, b.AlwaysOKBackToBack)
}

// Build skips validation so tests can construct edge-case entries.
func (b *PrizeBuilder) Build() prize.Definition {
	return prize.Definition{
		ID:                 prize.ID(b.ID),
		DisplayName:        b.DisplayName,
		Rarity:             b.Rarity,
		Weight:             b.Weight,
		Remaining:          b.Remaining,
		MandatorySkip:      b.MandatorySkip,
		AlwaysOKBackToBack: b.AlwaysOKBackToBack,
	}
}

// Catalog builds a catalog from the given builders in order.
func Catalog(builders ...*PrizeBuilder) prize.Catalog {
	out := make(prize.Catalog, 0, len(builders))
	for _, b := range builders {
		out = append(out, b.Build())
	}
	return out
}
