package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{LevelID: "Rat_Level_1", Player: "local", Score: 1000, Stars: 1, Won: true},
		{LevelID: "Rat_Level_1", Player: "local", Score: 500},
		{LevelID: "Rat_Level_1", Player: "guest", Score: 2400, Stars: 2, Won: true, MovesLeft: 3},
		{LevelID: "Ox_Level_1", Player: "local", Score: 5000, Stars: 3, Won: true},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	entries, err := store.TopScores("Rat_Level_1", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(entries))
	}

	// Should be sorted descending
	if entries[0].Score != 2400 || entries[1].Score != 1000 || entries[2].Score != 500 {
		t.Errorf("Results not in expected order: %v", entries)
	}
	top := entries[0]
	if top.Player != "guest" || top.Stars != 2 || !top.Won || top.MovesLeft != 3 {
		t.Errorf("Top entry fields not stored: %+v", top)
	}
	if entries[2].Won {
		t.Error("Lost attempt stored as won")
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	oxEntries, err := store.TopScores("Ox_Level_1", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(oxEntries) != 1 {
		t.Errorf("Expected 1 Ox result, got %d", len(oxEntries))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{LevelID: "test", Score: (i + 1) * 100})
	}

	// Request only top 3
	entries, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(entries))
	}
	if entries[0].Score != 500 || entries[1].Score != 400 || entries[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", entries)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("Rat_Level_1")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for unplayed level, got %d", high)
	}

	store.SaveResult(Result{LevelID: "Rat_Level_1", Score: 100})
	store.SaveResult(Result{LevelID: "Rat_Level_1", Score: 300})
	store.SaveResult(Result{LevelID: "Rat_Level_1", Score: 200})

	high, err = store.HighScore("Rat_Level_1")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{LevelID: "Rat_Level_1", Score: 100})
	store.SaveResult(Result{LevelID: "Rat_Level_1", Score: 200})
	store.SaveResult(Result{LevelID: "Ox_Level_1", Score: 300})

	if err := store.ClearResults("Rat_Level_1"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	ratEntries, _ := store.AllResults("Rat_Level_1")
	if len(ratEntries) != 0 {
		t.Errorf("Expected 0 Rat results after clear, got %d", len(ratEntries))
	}
	oxEntries, _ := store.AllResults("Ox_Level_1")
	if len(oxEntries) != 1 {
		t.Errorf("Ox results should not be affected by clearing Rat")
	}
}

func TestStoreAllResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveResult(Result{LevelID: "test", Score: i * 10})
	}

	entries, err := store.AllResults("test")
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}
	if len(entries) != 20 {
		t.Errorf("Expected 20 results, got %d", len(entries))
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetLevelStats("Rat_Level_1")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Plays != 0 || empty.Cleared() || !empty.LastPlayed.IsZero() {
		t.Errorf("Unplayed level stats = %+v", empty)
	}

	store.SaveResult(Result{LevelID: "Rat_Level_1", Score: 900, Stars: 0})
	store.SaveResult(Result{LevelID: "Rat_Level_1", Score: 2100, Stars: 2, Won: true})
	// Stars of a lost attempt never count.
	store.SaveResult(Result{LevelID: "Rat_Level_1", Score: 3300, Stars: 3})

	stats, err := store.GetLevelStats("Rat_Level_1")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Plays != 3 || stats.Wins != 1 || !stats.Cleared() {
		t.Errorf("Plays %d Wins %d", stats.Plays, stats.Wins)
	}
	if stats.HighScore != 3300 || stats.BestStars != 2 {
		t.Errorf("HighScore %d BestStars %d", stats.HighScore, stats.BestStars)
	}
	if stats.AvgScore != 2100 {
		t.Errorf("AvgScore = %v, expected 2100", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	store.SaveResult(Result{LevelID: "Ox_Level_1", Score: 50})
	all, err := store.GetAllLevelsStats()
	if err != nil {
		t.Fatalf("GetAllLevelsStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(all))
	}
	if all["Rat_Level_1"].BestStars != 2 || all["Ox_Level_1"].Cleared() {
		t.Errorf("All stats = %+v / %+v", all["Rat_Level_1"], all["Ox_Level_1"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
