package prize

// Catalog is the ordered set of prize definitions the pool is built from.
type Catalog []Definition

// DefaultCatalog is the static prize table. Persisted stock overrides are
// merged over it at startup.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "bit_frame", DisplayName: "Bit Frame of Your Choice", Rarity: RarityCommon, Weight: 30, Remaining: 10, AlwaysOKBackToBack: true},
		{ID: "free_dye_job", DisplayName: "Free Regular Dye Job", Rarity: RarityCommon, Weight: 30, Remaining: 7, AlwaysOKBackToBack: true},
		{ID: "bit_roulette", DisplayName: "Bit Roulette", Rarity: RarityUncommon, Weight: 20, Remaining: 5, AlwaysOKBackToBack: true},
		{ID: "rewind_choice", DisplayName: "Rewind My Choice", Rarity: RarityRare, Weight: 10, Remaining: 3, MandatorySkip: true},
		{ID: "one_free_box", DisplayName: "One Free Mystery Box", Rarity: RarityUltraRare, Weight: 7, Remaining: 2, MandatorySkip: true},
		{ID: "golden_door", DisplayName: "Golden Door", Rarity: RaritySecretRare, Weight: 3, Remaining: 1, MandatorySkip: true},
	}
}

func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	return append(make(Catalog, 0, len(c)), c...)
}

func (c Catalog) Validate() error {
	seen := make(map[ID]struct{}, len(c))
	for _, d := range c {
		if _, err := NewDefinition(string(d.ID), d.DisplayName, d.Rarity, d.Weight, d.Remaining, d.MandatorySkip, d.AlwaysOKBackToBack); err != nil {
			return err
		}
		if _, dup := seen[d.ID]; dup {
			return ErrDuplicateID
		}
		seen[d.ID] = struct{}{}
	}
	return nil
}
