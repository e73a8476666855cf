package prize

import "errors"

var ErrInvalidRarity = errors.New("invalid rarity tier")

type Rarity string

const (
	RarityCommon     Rarity = "Common"
	RarityUncommon   Rarity = "Uncommon"
	RarityRare       Rarity = "Rare"
	RarityUltraRare  Rarity = "Ultra Rare"
	RaritySecretRare Rarity = "Secret Rare"
)

var rarityRank = map[Rarity]int{
	RarityCommon:     0,
	RarityUncommon:   1,
	RarityRare:       2,
	RarityUltraRare:  3,
	RaritySecretRare: 4,
}

func NewRarity(s string) (Rarity, error) {
	r := Rarity(s)
	if !r.IsValid() {
		return "", ErrInvalidRarity
	}
	return r, nil
}

func (r Rarity) String() string {
	return string(r)
}

func (r Rarity) IsValid() bool {
	_, ok := rarityRank[r]
	return ok
}

// Rank orders tiers from most to least common. Unknown tiers sort last.
func (r Rarity) Rank() int {
	if rank, ok := rarityRank[r]; ok {
		return rank
	}
	return len(rarityRank)
}
