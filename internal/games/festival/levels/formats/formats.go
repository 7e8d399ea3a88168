// Package formats provides pluggable level file format parsers.
// Every format decodes into File and is converted to a core.LevelSpec by ToSpec.
package formats

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

// File is the on-disk layout of a level, shared by all formats.
type File struct {
	Tiles           [][]int  `json:"tiles" yaml:"tiles"`
	Moves           int      `json:"moves" yaml:"moves"`
	PossibleSymbols []string `json:"possibleSymbols,omitempty" yaml:"possibleSymbols,omitempty"`
	LevelGoal       Goal     `json:"levelGoal" yaml:"levelGoal"`
	BgMusic         string   `json:"bgMusic,omitempty" yaml:"bgMusic,omitempty"`
}

// Goal holds the star thresholds and the collection target.
type Goal struct {
	FirstStarScore  int            `json:"firstStarScore" yaml:"firstStarScore"`
	SecondStarScore int            `json:"secondStarScore" yaml:"secondStarScore"`
	ThirdStarScore  int            `json:"thirdStarScore" yaml:"thirdStarScore"`
	LevelTarget     map[string]int `json:"levelTarget" yaml:"levelTarget"`
}

// ToSpec converts the file into a level. Unknown tile values and symbol
// names are rejected here; semantic checks are left to LevelSpec.Validate.
func (f File) ToSpec(id string) (core.LevelSpec, error) {
	spec := core.LevelSpec{
		ID:              id,
		Moves:           f.Moves,
		BackgroundMusic: f.BgMusic,
		Goal: core.LevelGoal{
			FirstStar:  f.LevelGoal.FirstStarScore,
			SecondStar: f.LevelGoal.SecondStarScore,
			ThirdStar:  f.LevelGoal.ThirdStarScore,
			Target:     make(core.LevelTarget, len(f.LevelGoal.LevelTarget)),
		},
	}

	spec.Tiles = make([][]core.TileType, len(f.Tiles))
	for i, row := range f.Tiles {
		spec.Tiles[i] = make([]core.TileType, len(row))
		for j, v := range row {
			t, ok := core.ParseTileType(v)
			if !ok {
				return core.LevelSpec{}, fmt.Errorf("tile %d at row %d column %d: unknown tile value", v, i, j)
			}
			spec.Tiles[i][j] = t
		}
	}

	for _, name := range f.PossibleSymbols {
		t, ok := core.ParseSymbolType(name)
		if !ok {
			return core.LevelSpec{}, fmt.Errorf("possibleSymbols: unknown symbol %q", name)
		}
		spec.Symbols = append(spec.Symbols, t)
	}

	names := make([]string, 0, len(f.LevelGoal.LevelTarget))
	for name := range f.LevelGoal.LevelTarget {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t, ok := core.ParseSymbolType(name)
		if !ok {
			return core.LevelSpec{}, fmt.Errorf("levelTarget: unknown symbol %q", name)
		}
		spec.Goal.Target[t] = f.LevelGoal.LevelTarget[name]
	}

	return spec, nil
}

// FromSpec is the inverse of ToSpec, used when exporting levels.
func FromSpec(spec core.LevelSpec) File {
	f := File{
		Moves:   spec.Moves,
		BgMusic: spec.BackgroundMusic,
		LevelGoal: Goal{
			FirstStarScore:  spec.Goal.FirstStar,
			SecondStarScore: spec.Goal.SecondStar,
			ThirdStarScore:  spec.Goal.ThirdStar,
			LevelTarget:     make(map[string]int, len(spec.Goal.Target)),
		},
	}
	f.Tiles = make([][]int, len(spec.Tiles))
	for i, row := range spec.Tiles {
		f.Tiles[i] = make([]int, len(row))
		for j, t := range row {
			f.Tiles[i][j] = int(t)
		}
	}
	for _, t := range spec.Symbols {
		f.PossibleSymbols = append(f.PossibleSymbols, t.String())
	}
	for t, n := range spec.Goal.Target {
		f.LevelGoal.LevelTarget[t.String()] = n
	}
	return f
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}
