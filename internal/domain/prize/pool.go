package prize

import (
	"dropengine/internal/pkg/random"
)

// Pool is the stock-limited prize inventory. It is not safe for concurrent
// use; the engine serializes access.
type Pool struct {
	defaults Catalog
	entries  Catalog
	index    map[ID]int
}

func NewPool(defaults Catalog) *Pool {
	p := &Pool{defaults: defaults.Clone()}
	p.ResetToDefaults()
	return p
}

// AvailableEntries returns the entries with remaining stock, in catalog order.
func (p *Pool) AvailableEntries() []Definition {
	out := make([]Definition, 0, len(p.entries))
	for _, e := range p.entries {
		if e.Available() {
			out = append(out, e)
		}
	}
	return out
}

// HasDrawable reports whether WeightedPick can draw anything, which also
// requires a positive weight.
func (p *Pool) HasDrawable() bool {
	for _, e := range p.entries {
		if e.Drawable() {
			return true
		}
	}
	return false
}

// WeightedPick draws one available entry with probability weight/total. The
// boolean is false only when nothing can be drawn.
func (p *Pool) WeightedPick(src random.Source) (Definition, bool) {
	table := make([]Definition, 0, len(p.entries))
	total := 0.0
	for _, e := range p.entries {
		if e.Drawable() {
			table = append(table, e)
			total += e.Weight
		}
	}
	if len(table) == 0 {
		return Definition{}, false
	}

	draw := src.Float64() * total
	cumulative := 0.0
	for _, e := range table {
		cumulative += e.Weight
		if cumulative >= draw {
			return e, true
		}
	}
	// rounding drift past the final boundary
	return table[len(table)-1], true
}

// Draw picks an entry like WeightedPick and takes one unit of its stock. It
// returns the entry after depletion.
func (p *Pool) Draw(src random.Source) (Definition, bool) {
	won, ok := p.WeightedPick(src)
	if !ok {
		return Definition{}, false
	}
	if _, err := p.Deplete(won.ID); err != nil {
		return Definition{}, false
	}
	return p.entries[p.index[won.ID]], true
}

// Deplete takes one unit of stock from id, floored at zero, and returns the
// entry as it was before depletion.
func (p *Pool) Deplete(id ID) (Definition, error) {
	i, ok := p.index[id]
	if !ok {
		return Definition{}, ErrUnknownPrize
	}
	before := p.entries[i]
	if p.entries[i].Remaining > 0 {
		p.entries[i].Remaining--
	}
	return before, nil
}

// ResetToDefaults restores every entry to the catalog defaults.
func (p *Pool) ResetToDefaults() {
	p.entries = p.defaults.Clone()
	p.index = make(map[ID]int, len(p.entries))
	for i, e := range p.entries {
		p.index[e.ID] = i
	}
}

// MergeOverrides applies persisted stock levels over the current entries.
// Ids that are no longer in the catalog are ignored and returned.
func (p *Pool) MergeOverrides(stock map[ID]int) []ID {
	var pruned []ID
	for id, remaining := range stock {
		i, ok := p.index[id]
		if !ok {
			pruned = append(pruned, id)
			continue
		}
		if remaining < 0 {
			remaining = 0
		}
		p.entries[i].Remaining = remaining
	}
	return pruned
}

func (p *Pool) Lookup(id ID) (Definition, bool) {
	i, ok := p.index[id]
	if !ok {
		return Definition{}, false
	}
	return p.entries[i], true
}

// Entries returns every entry, in catalog order.
func (p *Pool) Entries() []Definition {
	return p.entries.Clone()
}

func (p *Pool) StockLevels() map[ID]int {
	out := make(map[ID]int, len(p.entries))
	for _, e := range p.entries {
		out[e.ID] = e.Remaining
	}
	return out
}
