// Package persistence stores the high score and the leaderboard between runs.
package persistence

import (
	"errors"
	"sort"
	"time"
)

// ErrUnavailable is returned when the backing storage cannot be opened.
var ErrUnavailable = errors.New("persistence unavailable")

// Entry is one finished match on the leaderboard.
type Entry struct {
	Score    int       `json:"score"`
	Opponent int       `json:"opponent"`
	At       time.Time `json:"at"`
}

// Store is the typed persistence collaborator. Reads never fail: a store that
// cannot read its data reports a zero high score and an empty leaderboard.
type Store interface {
	HighScore() int
	SetHighScore(score int) error
	Leaderboard() []Entry
	SetLeaderboard(entries []Entry) error
}

// Insert returns a new leaderboard with e added, sorted by score descending
// and cut to limit entries. Entries with equal scores keep their order, so a
// new entry ranks below older ones with the same score.
func Insert(board []Entry, e Entry, limit int) []Entry {
	out := make([]Entry, 0, len(board)+1)
	out = append(out, board...)
	out = append(out, e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Record commits a finished match: the high score is raised if e beats it and
// e is added to the leaderboard. Both writes are attempted even if one fails.
func Record(s Store, e Entry, limit int) error {
	var errs []error
	if e.Score > s.HighScore() {
		if err := s.SetHighScore(e.Score); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.SetLeaderboard(Insert(s.Leaderboard(), e, limit)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Clear resets the high score and empties the leaderboard.
func Clear(s Store) error {
	return errors.Join(s.SetHighScore(0), s.SetLeaderboard(nil))
}
