package core

import "sort"

// LevelTarget holds remaining per-type counts. A type absent from the map is
// not a goal of the level. Enhanced symbols count towards their base type.
type LevelTarget map[SymbolType]int

// Clone returns an independent copy.
func (t LevelTarget) Clone() LevelTarget {
	out := make(LevelTarget, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Consume decrements the counters once per symbol in chains. A symbol at the
// crossing of a horizontal and a vertical run belongs to both chains but is
// consumed once. Counts may go negative.
func (t LevelTarget) Consume(chains []Chain) {
	seen := make(map[SymbolID]bool)
	for _, c := range chains {
		for _, s := range c.Symbols {
			if s.ID != NoSymbol {
				if seen[s.ID] {
					continue
				}
				seen[s.ID] = true
			}
			base := s.Type.Base()
			if _, ok := t[base]; ok {
				t[base]--
			}
		}
	}
}

// Reached reports whether every present counter is at or below zero.
func (t LevelTarget) Reached() bool {
	for _, v := range t {
		if v > 0 {
			return false
		}
	}
	return true
}

// Types returns the goal types in declaration order.
func (t LevelTarget) Types() []SymbolType {
	types := make([]SymbolType, 0, len(t))
	for k := range t {
		types = append(types, k)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// LevelGoal combines star thresholds with the collection target.
type LevelGoal struct {
	FirstStar  int
	SecondStar int
	ThirdStar  int
	Target     LevelTarget
}

// Clone returns a copy whose target can be mutated independently.
func (g LevelGoal) Clone() LevelGoal {
	g.Target = g.Target.Clone()
	return g
}

// Stars returns how many thresholds score reaches (0-3).
func (g LevelGoal) Stars(score int) int {
	stars := 0
	for _, threshold := range []int{g.FirstStar, g.SecondStar, g.ThirdStar} {
		if score >= threshold {
			stars++
		}
	}
	return stars
}
