package core

// Fall records one symbol dropped by FillHoles. Symbol holds its new position.
type Fall struct {
	Symbol  Symbol
	FromRow int
}

// FillHoles drops symbols down into empty playable cells. Each hole takes
// the nearest movable symbol above it in the same column; locks and cells
// without tiles are passed over. The result lists one slice per column that
// changed, ordered from the lowest hole upwards.
func (b *Board) FillHoles() [][]Fall {
	var columns [][]Fall
	for c := 0; c < b.Columns(); c++ {
		var falls []Fall
		for r := 0; r < b.Rows(); r++ {
			if !b.tiles.At(c, r).Playable() || b.index.At(c, r) != NoSymbol {
				continue
			}
			for up := r + 1; up < b.Rows(); up++ {
				id := b.index.At(c, up)
				s := b.slot(id)
				if s == nil || !s.Type.IsMovable() {
					continue
				}
				b.index.Set(c, up, NoSymbol)
				b.index.Set(c, r, id)
				s.Row = r
				falls = append(falls, Fall{Symbol: *s, FromRow: up})
				break
			}
		}
		if len(falls) > 0 {
			columns = append(columns, falls)
		}
	}
	return columns
}

// TopUpSymbols spawns a random symbol in every empty playable cell, scanning
// each column from the top. A new type always differs from the one spawned
// just before it in this call when the palette allows. The result lists one
// slice per column that changed, in spawn order.
func (b *Board) TopUpSymbols() [][]Symbol {
	var columns [][]Symbol
	prev := SymbolNone
	for c := 0; c < b.Columns(); c++ {
		var spawned []Symbol
		for r := b.Rows() - 1; r >= 0; r-- {
			if !b.tiles.At(c, r).Playable() || b.index.At(c, r) != NoSymbol {
				continue
			}
			t := b.pickRefill(prev)
			prev = t
			spawned = append(spawned, b.spawn(c, r, t))
		}
		if len(spawned) > 0 {
			columns = append(columns, spawned)
		}
	}
	return columns
}

func (b *Board) pickRefill(prev SymbolType) SymbolType {
	candidates := make([]SymbolType, 0, len(b.palette))
	for _, t := range b.palette {
		if t != prev {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		candidates = b.palette
	}
	return candidates[b.rng.Intn(len(candidates))]
}
