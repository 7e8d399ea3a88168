package core

import "fmt"

// ValidationError describes why a level cannot be played.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a level can produce a board.
// Checks:
//   - the tile grid is non-empty, rectangular and uses known tile values
//   - at least one cell is playable and the move budget is positive
//   - the spawn palette holds at least two ordinary types
//   - the target names spawnable types or locks with positive counts
//   - star thresholds are positive and non-decreasing
func (s LevelSpec) Validate() error {
	if err := s.validateTiles(); err != nil {
		return err
	}
	if s.Moves <= 0 {
		return ValidationError{
			Code:    "NO_MOVES",
			Message: fmt.Sprintf("move budget must be positive, got %d", s.Moves),
		}
	}
	if err := s.validatePalette(); err != nil {
		return err
	}
	if err := s.validateGoal(); err != nil {
		return err
	}
	return nil
}

func (s LevelSpec) validateTiles() error {
	if s.Rows() == 0 || s.Columns() == 0 {
		return ValidationError{Code: "EMPTY_GRID", Message: "level has no tiles"}
	}

	playable := 0
	for i, row := range s.Tiles {
		if len(row) != s.Columns() {
			return ValidationError{
				Code:    "RAGGED_GRID",
				Message: fmt.Sprintf("row %d has %d cells, expected %d", i, len(row), s.Columns()),
			}
		}
		for j, t := range row {
			if t > TileLock {
				return ValidationError{
					Code:    "BAD_TILE",
					Message: fmt.Sprintf("unknown tile value %d at row %d column %d", t, i, j),
				}
			}
			if t.Playable() {
				playable++
			}
		}
	}

	if playable == 0 {
		return ValidationError{Code: "NO_PLAYABLE", Message: "level has no playable cells"}
	}
	return nil
}

func (s LevelSpec) validatePalette() error {
	for _, t := range s.Symbols {
		if !t.IsBase() {
			return ValidationError{
				Code:    "BAD_SYMBOL",
				Message: fmt.Sprintf("symbol %s cannot be spawned", t),
			}
		}
	}
	if n := len(s.Palette()); n < 2 {
		return ValidationError{
			Code:    "SMALL_PALETTE",
			Message: fmt.Sprintf("need at least 2 symbol types, got %d", n),
		}
	}
	return nil
}

func (s LevelSpec) validateGoal() error {
	if len(s.Goal.Target) == 0 {
		return ValidationError{Code: "NO_TARGET", Message: "level target is empty"}
	}
	for _, t := range s.Goal.Target.Types() {
		if !t.IsBase() && t != Lock {
			return ValidationError{
				Code:    "BAD_TARGET",
				Message: fmt.Sprintf("target type %s is not collectable", t),
			}
		}
		if t != Lock && !inPalette(s.Palette(), t) {
			return ValidationError{
				Code:    "BAD_TARGET",
				Message: fmt.Sprintf("target type %s never spawns", t),
			}
		}
		if s.Goal.Target[t] <= 0 {
			return ValidationError{
				Code:    "BAD_TARGET",
				Message: fmt.Sprintf("target count for %s must be positive", t),
			}
		}
	}

	g := s.Goal
	if g.FirstStar <= 0 || g.SecondStar < g.FirstStar || g.ThirdStar < g.SecondStar {
		return ValidationError{
			Code: "BAD_STARS",
			Message: fmt.Sprintf("star thresholds must be positive and ascending, got %d/%d/%d",
				g.FirstStar, g.SecondStar, g.ThirdStar),
		}
	}
	return nil
}

func inPalette(palette []SymbolType, t SymbolType) bool {
	for _, p := range palette {
		if p == t {
			return true
		}
	}
	return false
}
