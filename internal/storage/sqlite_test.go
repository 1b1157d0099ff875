package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// openTestStore opens a fresh database in a temporary directory.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(difficulty string, score, lines, level int) core.ScoreRecord {
	return core.ScoreRecord{
		GameID:     "tetris",
		Score:      score,
		Lines:      lines,
		Level:      level,
		Difficulty: difficulty,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(record("classic", 1200, 12, 2)); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1200 {
		t.Errorf("HighScore() after reopen = %d, expected 1200", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, rec := range []core.ScoreRecord{
		record("classic", 100, 1, 1),
		record("classic", 50, 0, 1),
		record("classic", 2400, 14, 2),
		record("expert", 500, 2, 1),
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", rec, err)
		}
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{2400, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, want)
		}
	}

	top := scores[0]
	if top.Lines != 14 || top.Level != 2 {
		t.Errorf("top entry lines/level = %d/%d, expected 14/2", top.Lines, top.Level)
	}
	if top.GameID != "tetris" || top.Difficulty != "classic" {
		t.Errorf("top entry = %+v, expected tetris/classic", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}
}

func TestStoreSaveKeepsTimestamp(t *testing.T) {
	store := openTestStore(t)

	at := time.Date(2024, 3, 9, 18, 30, 5, 0, time.UTC)
	rec := record("relaxed", 300, 3, 1)
	rec.CreatedAt = at
	rec.Player = "alice"

	if _, err := store.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("relaxed", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	if !scores[0].CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, expected %v", scores[0].CreatedAt, at)
	}
	if scores[0].Player != "alice" {
		t.Errorf("Player = %q, expected alice", scores[0].Player)
	}
}

func TestStoreSaveRequiresDifficulty(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(core.ScoreRecord{GameID: "tetris", Score: 10}); err == nil {
		t.Error("SaveScore() without difficulty should fail")
	}
}

func TestStoreRecordScore(t *testing.T) {
	store := openTestStore(t)

	var recorder core.ScoreRecorder = store
	if err := recorder.RecordScore(record("expert", 900, 3, 1)); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}

	high, err := store.HighScore("expert")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 900 {
		t.Errorf("HighScore() = %d, expected 900", high)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		store.SaveScore(record("classic", i*10, i, 1))
	}

	scores, err := store.TopScores("classic", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Top score should be 190, got %d", scores[0].Score)
	}

	// A non-positive limit falls back to the default.
	scores, err = store.TopScores("classic", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != DefaultLimit {
		t.Errorf("Expected %d scores, got %d", DefaultLimit, len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore(record("classic", 100, 1, 1))
	store.SaveScore(record("classic", 300, 3, 1))
	store.SaveScore(record("expert", 9000, 20, 3))

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(record("classic", 100, 1, 1))
	store.SaveScore(record("expert", 200, 1, 1))

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("classic", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(scores))
	}

	scores, _ = store.TopScores("expert", 10)
	if len(scores) != 1 {
		t.Errorf("Expert scores should be untouched, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("relaxed")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", empty)
	}

	store.SaveScore(record("relaxed", 100, 4, 1))
	store.SaveScore(record("relaxed", 300, 14, 2))
	store.SaveScore(record("classic", 50, 0, 1))

	stats, err := store.GetGameStats("relaxed")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalLines != 18 || stats.BestLines != 14 || stats.BestLevel != 2 {
		t.Errorf("lines/level stats = %d/%d/%d, expected 18/14/2",
			stats.TotalLines, stats.BestLines, stats.BestLevel)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(record("relaxed", 100, 1, 1))
	store.SaveScore(record("expert", 900, 3, 1))
	store.SaveScore(record("expert", 300, 1, 1))

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 difficulties, got %d", len(all))
	}
	if all["expert"].GamesCount != 2 || all["expert"].HighScore != 900 {
		t.Errorf("expert stats = %+v", all["expert"])
	}
	if _, ok := all["classic"]; ok {
		t.Error("classic was never played and should be absent")
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", want, want},
		{"string", "2025-01-02 03:04:05", want},
		{"bytes", []byte("2025-01-02 03:04:05"), want},
		{"garbage", "yesterday", time.Time{}},
		{"null", nil, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}
