package core

// RemoveMatches finds every horizontal and vertical run of three or more,
// removes the members from the board and returns the scored chains. A symbol
// at an L or T intersection appears in both of its chains.
func (b *Board) RemoveMatches() []Chain {
	chains := append(b.detectHorizontalMatches(), b.detectVerticalMatches()...)
	b.removeChains(chains)
	b.score(chains)
	return chains
}

func (b *Board) detectHorizontalMatches() []Chain {
	var chains []Chain
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Columns()-2; {
			t := b.typeAt(c, r)
			if !t.IsMatchable() || !b.typeAt(c+1, r).MatchableTo(t) || !b.typeAt(c+2, r).MatchableTo(t) {
				c++
				continue
			}

			end := c + 3
			for end < b.Columns() && b.typeAt(end, r).MatchableTo(t) {
				end++
			}

			chain := Chain{Type: runType(end-c, true)}
			for i := c; i < end; i++ {
				s, _ := b.SymbolAt(i, r)
				chain.Symbols = append(chain.Symbols, s)
			}
			chains = append(chains, chain)
			c = end
		}
	}
	return chains
}

func (b *Board) detectVerticalMatches() []Chain {
	var chains []Chain
	for c := 0; c < b.Columns(); c++ {
		for r := 0; r < b.Rows()-2; {
			t := b.typeAt(c, r)
			if !t.IsMatchable() || !b.typeAt(c, r+1).MatchableTo(t) || !b.typeAt(c, r+2).MatchableTo(t) {
				r++
				continue
			}

			end := r + 3
			for end < b.Rows() && b.typeAt(c, end).MatchableTo(t) {
				end++
			}

			chain := Chain{Type: runType(end-r, false)}
			for i := r; i < end; i++ {
				s, _ := b.SymbolAt(c, i)
				chain.Symbols = append(chain.Symbols, s)
			}
			chains = append(chains, chain)
			r = end
		}
	}
	return chains
}

func runType(length int, horizontal bool) ChainType {
	switch {
	case length >= 5:
		return ChainFive
	case length == 4 && horizontal:
		return ChainHorizontal4
	case length == 4:
		return ChainVertical4
	case horizontal:
		return ChainHorizontal3
	default:
		return ChainVertical3
	}
}

// removeChains clears every member still at its recorded cell.
func (b *Board) removeChains(chains []Chain) {
	for _, ch := range chains {
		for _, s := range ch.Symbols {
			if b.index.At(s.Column, s.Row) == s.ID {
				b.remove(s.Column, s.Row)
			}
		}
	}
}
