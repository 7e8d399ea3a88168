package festival

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/festival-crush/internal/config"
	"github.com/vovakirdan/festival-crush/internal/games/festival/levels"
)

func TestLoadLevelByID(t *testing.T) {
	lvl, err := LoadLevelByID("", "Ox_Level_2")
	if err != nil {
		t.Fatalf("LoadLevelByID failed: %v", err)
	}
	if lvl.Chapter != levels.Ox || lvl.Number != 2 {
		t.Errorf("loaded %s %d", lvl.Chapter, lvl.Number)
	}

	if _, err := LoadLevelByID("", "Dragon_Level_99"); !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckLevels(t *testing.T) {
	root, problems, err := CheckLevels("")
	if err != nil {
		t.Fatalf("CheckLevels failed: %v", err)
	}
	if root != "embedded" || len(problems) != 0 {
		t.Errorf("embedded pack: root %q, problems %v", root, problems)
	}

	dir := filepath.Join("levels", "testdata", "levels")
	root, problems, err = CheckLevels(dir)
	if err != nil {
		t.Fatalf("CheckLevels failed: %v", err)
	}
	if root != dir || len(problems) != 2 {
		t.Errorf("testdata: root %q, %d problems", root, len(problems))
	}
}

func TestLoadConfigFallsBack(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	cfg := LoadConfig(missing, "easy", nil)
	if cfg.Difficulty.ExtraMoves != 5 {
		t.Errorf("ExtraMoves = %d, expected 5", cfg.Difficulty.ExtraMoves)
	}
	if cfg.Scoring != config.DefaultFestivalConfig().Scoring {
		t.Errorf("scoring not defaulted: %+v", cfg.Scoring)
	}

	cfg = LoadConfig(missing, "impossible", nil)
	if cfg.Difficulty.ExtraMoves != config.DefaultFestivalConfig().Difficulty.ExtraMoves {
		t.Errorf("unknown preset changed moves: %d", cfg.Difficulty.ExtraMoves)
	}
}

func TestDefaultOptionsConsumesStartLevel(t *testing.T) {
	SetStartLevel("Ox_Level_1")

	if got := DefaultOptions().StartLevel; got != "Ox_Level_1" {
		t.Errorf("StartLevel = %q", got)
	}
	if got := DefaultOptions().StartLevel; got != "" {
		t.Errorf("StartLevel not consumed: %q", got)
	}
}
