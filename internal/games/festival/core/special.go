package core

// CreateSpecialSymbols places an enhanced symbol at the first cell of every
// four-long run in chains. A cell that is already occupied is skipped.
func (b *Board) CreateSpecialSymbols(chains []Chain) []Symbol {
	var created []Symbol
	for _, ch := range chains {
		if !ch.Type.PromotesSpecial() || ch.Len() == 0 {
			continue
		}
		first := ch.First()
		if !b.tiles.At(first.Column, first.Row).Playable() || b.index.At(first.Column, first.Row) != NoSymbol {
			continue
		}
		created = append(created, b.spawn(first.Column, first.Row, first.Type.Base().Enhanced()))
	}
	return created
}

// ExplodeSpecialSymbols detonates every enhanced member of chains. Each
// symbol still on the board in the eight surrounding cells is removed as its
// own chain: ChainEnhanced when it is itself enhanced, ChainSingle otherwise.
// A lock caught in a blast is released and its tile becomes normal.
// Only the new chains are returned; feed them back in while they contain
// ChainEnhanced entries to continue the reaction.
func (b *Board) ExplodeSpecialSymbols(chains []Chain) []Chain {
	members := make(map[SymbolID]bool)
	for _, ch := range chains {
		for _, s := range ch.Symbols {
			members[s.ID] = true
		}
	}

	var wave []Chain
	for _, ch := range chains {
		for _, s := range ch.Symbols {
			if !s.Type.IsEnhanced() {
				continue
			}
			for _, d := range surrounding {
				c, r := s.Column+d[0], s.Row+d[1]
				if !b.InBounds(c, r) || members[b.index.At(c, r)] {
					continue
				}
				victim, ok := b.remove(c, r)
				if !ok {
					continue
				}
				if victim.Type == Lock {
					b.tiles.Set(c, r, TileNormal)
				}
				t := ChainSingle
				if victim.Type.IsEnhanced() {
					t = ChainEnhanced
				}
				wave = append(wave, Chain{Type: t, Symbols: []Symbol{victim}})
			}
		}
	}
	b.score(wave)
	return wave
}

// RemoveSpecialSymbols removes every enhanced symbol left on the board, each
// as a single-member ChainEnhanced. Pass the result to ExplodeSpecialSymbols
// to detonate them.
func (b *Board) RemoveSpecialSymbols() []Chain {
	var swept []Chain
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Columns(); c++ {
			if !b.typeAt(c, r).IsEnhanced() {
				continue
			}
			s, _ := b.remove(c, r)
			swept = append(swept, Chain{Type: ChainEnhanced, Symbols: []Symbol{s}})
		}
	}
	b.score(swept)
	return swept
}

// EnhanceSymbols turns up to n random ordinary symbols into their enhanced
// variants in place and returns them.
func (b *Board) EnhanceSymbols(n int) []Symbol {
	var candidates []Symbol
	for _, s := range b.Symbols() {
		if s.Type.IsBase() {
			candidates = append(candidates, s)
		}
	}
	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}

	enhanced := make([]Symbol, 0, max(n, 0))
	for _, s := range candidates[:max(n, 0)] {
		slot := b.slot(s.ID)
		slot.Type = slot.Type.Enhanced()
		enhanced = append(enhanced, *slot)
	}
	return enhanced
}

// detonate runs the blast reaction started by wave until no enhanced symbol
// is caught. It returns every chain the reaction produced after wave.
func (b *Board) detonate(wave []Chain) []Chain {
	var all []Chain
	for len(wave) > 0 {
		wave = b.ExplodeSpecialSymbols(wave)
		all = append(all, wave...)
		if !hasEnhanced(wave) {
			break
		}
	}
	return all
}
