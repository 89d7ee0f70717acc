package persistence

// MemoryStore keeps everything in memory. It is used when saving is disabled
// and in tests. It is not safe for concurrent use.
type MemoryStore struct {
	high  int
	board []Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) HighScore() int {
	return m.high
}

func (m *MemoryStore) SetHighScore(score int) error {
	m.high = score
	return nil
}

func (m *MemoryStore) Leaderboard() []Entry {
	out := make([]Entry, len(m.board))
	copy(out, m.board)
	return out
}

func (m *MemoryStore) SetLeaderboard(entries []Entry) error {
	m.board = make([]Entry, len(entries))
	copy(m.board, entries)
	return nil
}
