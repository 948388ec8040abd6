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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestBestDefaultsToZero(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best("english", "normal")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unseen pair, got %d", best)
	}
}

func TestSaveBestOnlyMovesUpward(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		save int
		want int
	}{
		{10, 10},
		{5, 10},  // worse run must not lower the best
		{10, 10}, // equal run must not churn the row
		{25, 25},
	}
	for _, step := range steps {
		if err := store.SaveBest("english", "normal", step.save); err != nil {
			t.Fatalf("SaveBest(%d) failed: %v", step.save, err)
		}
		best, err := store.Best("english", "normal")
		if err != nil {
			t.Fatalf("Best() failed: %v", err)
		}
		if best != step.want {
			t.Errorf("After SaveBest(%d): best = %d, want %d", step.save, best, step.want)
		}
	}
}

func TestBestsAreKeyedByLanguageAndDifficulty(t *testing.T) {
	store := openTestStore(t)

	store.SaveBest("english", "normal", 30)
	store.SaveBest("english", "hard", 12)
	store.SaveBest("suomi", "normal", 8)

	tests := []struct {
		lang, diff string
		want       int
	}{
		{"english", "normal", 30},
		{"english", "hard", 12},
		{"suomi", "normal", 8},
		{"suomi", "hard", 0},
	}
	for _, tt := range tests {
		got, err := store.Best(tt.lang, tt.diff)
		if err != nil {
			t.Fatalf("Best(%s, %s) failed: %v", tt.lang, tt.diff, err)
		}
		if got != tt.want {
			t.Errorf("Best(%s, %s) = %d, want %d", tt.lang, tt.diff, got, tt.want)
		}
	}
}

func TestAllBestsOrdering(t *testing.T) {
	store := openTestStore(t)

	store.SaveBest("suomi", "normal", 8)
	store.SaveBest("english", "hard", 12)
	store.SaveBest("english", "normal", 30)

	entries, err := store.AllBests()
	if err != nil {
		t.Fatalf("AllBests() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	// ordered by language, then difficulty
	if entries[0].Language != "english" || entries[0].Difficulty != "hard" {
		t.Errorf("First entry = %s/%s, want english/hard", entries[0].Language, entries[0].Difficulty)
	}
	if entries[2].Language != "suomi" {
		t.Errorf("Last entry language = %s, want suomi", entries[2].Language)
	}
}

func TestRecordAndListSessions(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if err := store.RecordSession("english", "normal", i, i*2, i*3, float64(i)*60); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}

	entries, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(entries))
	}
	if entries[0].Score != 5 {
		t.Errorf("Most recent session score = %d, want 5", entries[0].Score)
	}
	if entries[0].Hits != 10 || entries[0].Shots != 15 {
		t.Errorf("Session hits/shots = %d/%d, want 10/15", entries[0].Hits, entries[0].Shots)
	}
	if entries[0].Duration != 300 {
		t.Errorf("Session duration = %v, want 300", entries[0].Duration)
	}
}

func TestClearBests(t *testing.T) {
	store := openTestStore(t)

	store.SaveBest("english", "normal", 30)
	store.SaveBest("suomi", "normal", 8)

	if err := store.ClearBests("english"); err != nil {
		t.Fatalf("ClearBests() failed: %v", err)
	}

	if best, _ := store.Best("english", "normal"); best != 0 {
		t.Errorf("english best = %d after clear, want 0", best)
	}
	if best, _ := store.Best("suomi", "normal"); best != 8 {
		t.Errorf("suomi best = %d, should be untouched", best)
	}

	if err := store.ClearBests(""); err != nil {
		t.Fatalf("ClearBests(all) failed: %v", err)
	}
	entries, _ := store.AllBests()
	if len(entries) != 0 {
		t.Errorf("Expected empty table after full clear, got %d entries", len(entries))
	}
}
