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

	runs := []Run{
		{Mode: "classic", Depth: 100, Reason: "spiked"},
		{Mode: "classic", Depth: 50, Reason: "crushed"},
		{Mode: "classic", Depth: 200, Reason: "crushed", Revives: 2, Skin: "prime"},
		{Mode: "boss", Depth: 51, Reason: "boss_defeated", Victory: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	top, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted by depth descending
	want := []int{200, 100, 50}
	for i, d := range want {
		if top[i].Depth != d {
			t.Errorf("top[%d].Depth = %d, expected %d", i, top[i].Depth, d)
		}
	}
	if top[0].Revives != 2 || top[0].Skin != "prime" || top[0].Reason != "crushed" {
		t.Errorf("top run lost its fields: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	boss, err := store.TopRuns("boss", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(boss) != 1 || !boss[0].Victory {
		t.Errorf("boss runs = %+v, expected one victory", boss)
	}
}

func TestStoreSaveRunValidation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Depth: 3}); err == nil {
		t.Error("SaveRun without a mode should fail")
	}
	if _, err := store.SaveRun(Run{Mode: "classic", Depth: -1}); err == nil {
		t.Error("SaveRun with a negative depth should fail")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveRun(Run{Mode: "infinite", Depth: i * 10, Reason: "crushed"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("infinite", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Depth != 190 {
		t.Errorf("Expected deepest run 190, got %d", top[0].Depth)
	}

	// Non-positive limits fall back to 10
	top, err = store.TopRuns("infinite", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(top))
	}
}

func TestStoreTopRunsTies(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(Run{Mode: "classic", Depth: 30, Reason: "spiked"})
	store.SaveRun(Run{Mode: "classic", Depth: 30, Reason: "crushed"})

	top, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 || top[0].ID != first {
		t.Errorf("tied runs should keep insertion order, got %+v", top)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	modes := []string{"classic", "boss", "infinite"}
	for i, m := range modes {
		store.SaveRun(Run{Mode: m, Depth: i, Reason: "crushed"})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Mode != "infinite" || recent[1].Mode != "boss" {
		t.Errorf("RecentRuns(2) = %+v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for no runs, got %d", high)
	}

	store.SaveRun(Run{Mode: "classic", Depth: 42, Reason: "spiked"})
	store.SaveRun(Run{Mode: "classic", Depth: 17, Reason: "spiked"})
	store.SaveRun(Run{Mode: "boss", Depth: 99, Reason: "boss_hit"})

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected high score 42, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Mode: "classic", Depth: 10, Reason: "spiked"})
	store.SaveRun(Run{Mode: "boss", Depth: 20, Reason: "boss_hit"})

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("classic", 10); len(runs) != 0 {
		t.Errorf("Expected no classic runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("boss", 10); len(runs) != 1 {
		t.Errorf("ClearRuns should not touch other modes, got %d boss runs", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("boss")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{Mode: "boss", Depth: 30, Reason: "boss_hit"})
	store.SaveRun(Run{Mode: "boss", Depth: 51, Reason: "boss_defeated", Victory: true})
	store.SaveRun(Run{Mode: "classic", Depth: 5, Reason: "crushed"})

	stats, err := store.Stats("boss")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestDepth != 51 || stats.Victories != 1 {
		t.Errorf("Stats(boss) = %+v", stats)
	}
	if stats.AvgDepth != 40.5 {
		t.Errorf("AvgDepth = %v, expected 40.5", stats.AvgDepth)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["classic"].Runs != 1 {
		t.Errorf("AllStats() = %v", all)
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
