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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("blockstack", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("river", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("blockstack", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
		}
	}

	riverScores, err := store.TopScores("river", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(riverScores) != 1 {
		t.Errorf("got %d river scores, want 1", len(riverScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("blockstack", (i+1)*100)
	}

	scores, err := store.TopScores("blockstack", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores with limit 3, want 3", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blockstack")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("high score for unplayed game = %d, want 0", high)
	}

	store.SaveScore("blockstack", 100)
	store.SaveScore("blockstack", 300)
	store.SaveScore("blockstack", 200)

	high, err = store.HighScore("blockstack")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("high score = %d, want 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blockstack", 100)
	store.SaveScore("blockstack", 200)
	store.SaveScore("river", 300)

	if err := store.ClearScores("blockstack"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("blockstack", 10)
	if len(cleared) != 0 {
		t.Errorf("got %d blockstack scores after clear, want 0", len(cleared))
	}
	kept, _ := store.TopScores("river", 10)
	if len(kept) != 1 {
		t.Error("clearing blockstack touched river scores")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("oracle", i*10)
	}

	scores, err := store.AllScores("oracle")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("got %d scores, want 20", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("wargame", 100)
	store.SaveScore("wargame", 200)
	store.SaveScore("wargame", 60)

	stats, err := store.GetGameStats("wargame")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("games count = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 200 {
		t.Errorf("high score = %d, want 200", stats.HighScore)
	}
	if stats.TotalScore != 360 {
		t.Errorf("total = %d, want 360", stats.TotalScore)
	}
	if stats.AvgScore != 120 {
		t.Errorf("avg = %v, want 120", stats.AvgScore)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blockstack", 100)
	store.SaveScore("blockstack", 300)
	store.SaveScore("crakers", 50)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got stats for %d games, want 2", len(stats))
	}
	if stats["blockstack"].HighScore != 300 || stats["blockstack"].GamesCount != 2 {
		t.Errorf("blockstack stats = %+v", stats["blockstack"])
	}
	if stats["crakers"].GamesCount != 1 {
		t.Errorf("crakers stats = %+v", stats["crakers"])
	}
}
