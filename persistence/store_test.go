package persistence

import (
	"errors"
	"testing"
	"time"
)

type fakeItems struct {
	data    map[string][]byte
	loadErr error
	saveErr error
}

func newFakeItems() *fakeItems {
	return &fakeItems{data: map[string][]byte{}}
}

func (f *fakeItems) LoadItem(key string) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.data[key], nil
}

func (f *fakeItems) SaveItem(key string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[key] = data
	return nil
}

var kickoffTime = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func TestInsertSortsDescendingAndTruncates(t *testing.T) {
	var board []Entry
	scores := []int{3, 7, 1, 7, 5, 0, 9}
	for i, s := range scores {
		board = Insert(board, Entry{Score: s, Opponent: i}, 5)
	}

	if len(board) != 5 {
		t.Fatalf("len = %d, want 5", len(board))
	}
	want := []int{9, 7, 7, 5, 3}
	for i, e := range board {
		if e.Score != want[i] {
			t.Fatalf("board[%d].Score = %d, want %d (board %+v)", i, e.Score, want[i], board)
		}
	}
	// equal scores keep insertion order
	if board[1].Opponent != 1 || board[2].Opponent != 3 {
		t.Fatalf("tie order = %d, %d, want 1, 3", board[1].Opponent, board[2].Opponent)
	}
}

func TestInsertDoesNotAliasInput(t *testing.T) {
	board := []Entry{{Score: 1}}
	_ = Insert(board, Entry{Score: 5}, 50)
	if board[0].Score != 1 {
		t.Fatalf("input board modified: %+v", board)
	}
}

func TestRecordNeverLowersHighScore(t *testing.T) {
	s := NewMemoryStore()
	for i, score := range []int{2, 6, 4, 0, 6} {
		if err := Record(s, Entry{Score: score, At: kickoffTime}, 50); err != nil {
			t.Fatalf("Record #%d: %v", i, err)
		}
	}
	if s.HighScore() != 6 {
		t.Fatalf("HighScore = %d, want 6", s.HighScore())
	}
	if n := len(s.Leaderboard()); n != 5 {
		t.Fatalf("leaderboard length = %d, want 5", n)
	}
}

func TestRecordKeepsLeaderboardBounded(t *testing.T) {
	s := NewMemoryStore()
	for i := 0; i < 120; i++ {
		if err := Record(s, Entry{Score: i % 13}, 50); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	board := s.Leaderboard()
	if len(board) != 50 {
		t.Fatalf("leaderboard length = %d, want 50", len(board))
	}
	for i := 1; i < len(board); i++ {
		if board[i].Score > board[i-1].Score {
			t.Fatalf("board not sorted at %d: %d > %d", i, board[i].Score, board[i-1].Score)
		}
	}
}

func TestGDataStoreRoundTrip(t *testing.T) {
	items := newFakeItems()
	s := &GDataStore{items: items}

	if s.HighScore() != 0 || s.Leaderboard() != nil {
		t.Fatalf("empty store returned data")
	}
	if err := Record(s, Entry{Score: 4, Opponent: 2, At: kickoffTime}, 50); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if s.HighScore() != 4 {
		t.Fatalf("HighScore = %d, want 4", s.HighScore())
	}
	board := s.Leaderboard()
	if len(board) != 1 || board[0].Opponent != 2 || !board[0].At.Equal(kickoffTime) {
		t.Fatalf("Leaderboard = %+v", board)
	}
}

func TestGDataStoreMalformedDataFallsBack(t *testing.T) {
	items := newFakeItems()
	items.data[keyHighScore] = []byte("lots")
	items.data[keyLeaderboard] = []byte("{not json")
	s := &GDataStore{items: items}

	if s.HighScore() != 0 {
		t.Fatalf("HighScore = %d, want 0", s.HighScore())
	}
	if s.Leaderboard() != nil {
		t.Fatalf("Leaderboard = %+v, want nil", s.Leaderboard())
	}
}

func TestGDataStoreReadErrorFallsBack(t *testing.T) {
	items := newFakeItems()
	items.loadErr = errors.New("disk on fire")
	s := &GDataStore{items: items}

	if s.HighScore() != 0 || s.Leaderboard() != nil {
		t.Fatalf("read failure did not fall back to defaults")
	}
}

func TestRecordReportsWriteErrors(t *testing.T) {
	items := newFakeItems()
	items.saveErr = errors.New("read-only")
	s := &GDataStore{items: items}

	err := Record(s, Entry{Score: 1}, 50)
	if err == nil || !errors.Is(err, items.saveErr) {
		t.Fatalf("err = %v, want wrapped save error", err)
	}
}

func TestClear(t *testing.T) {
	items := newFakeItems()
	s := &GDataStore{items: items}
	_ = Record(s, Entry{Score: 3}, 50)

	if err := Clear(s); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.HighScore() != 0 || len(s.Leaderboard()) != 0 {
		t.Fatalf("store not cleared: %d %+v", s.HighScore(), s.Leaderboard())
	}
	if string(items.data[keyLeaderboard]) != "[]" {
		t.Fatalf("cleared leaderboard = %q, want []", items.data[keyLeaderboard])
	}
}
