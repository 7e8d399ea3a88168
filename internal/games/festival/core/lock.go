package core

// RemoveLocks releases every lock with an edge neighbour that is a playable
// cell left without a symbol. Released locks are removed and their tiles
// become normal. The result holds at most one ChainLocks chain.
func (b *Board) RemoveLocks() []Chain {
	var released []Symbol
	for c := 0; c < b.Columns(); c++ {
		for r := 0; r < b.Rows(); r++ {
			s, ok := b.SymbolAt(c, r)
			if !ok || s.Type != Lock || !b.hasHoleBeside(c, r) {
				continue
			}
			released = append(released, s)
		}
	}
	if len(released) == 0 {
		return nil
	}

	for _, s := range released {
		b.remove(s.Column, s.Row)
		b.tiles.Set(s.Column, s.Row, TileNormal)
	}
	chains := []Chain{{Type: ChainLocks, Symbols: released}}
	b.score(chains)
	return chains
}

func (b *Board) hasHoleBeside(c, r int) bool {
	for _, d := range orthogonal {
		nc, nr := c+d[0], r+d[1]
		if !b.InBounds(nc, nr) {
			continue
		}
		if b.tiles.At(nc, nr).Playable() && b.index.At(nc, nr) == NoSymbol {
			return true
		}
	}
	return false
}
