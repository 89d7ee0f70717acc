package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata"
)

const (
	keyHighScore   = "high_score"
	keyLeaderboard = "leaderboard"
)

// itemStorage is the part of *gdata.Manager the store needs.
type itemStorage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// GDataStore persists the high score and leaderboard with gdata, which picks
// the platform's user data directory (or browser local storage).
type GDataStore struct {
	items itemStorage
}

// Open opens the gdata storage for appName.
func Open(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	log.Printf("Persistence opened for %q", appName)
	return &GDataStore{items: m}, nil
}

// HighScore returns the saved high score, or 0 if none is saved or it cannot
// be read.
func (s *GDataStore) HighScore() int {
	data, err := s.items.LoadItem(keyHighScore)
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return 0
	}
	if data == nil {
		return 0
	}
	high, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || high < 0 {
		log.Printf("Warning: Could not parse saved high score %q", data)
		return 0
	}
	return high
}

func (s *GDataStore) SetHighScore(score int) error {
	if err := s.items.SaveItem(keyHighScore, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// Leaderboard returns the saved leaderboard, or nil if none is saved or it
// cannot be read.
func (s *GDataStore) Leaderboard() []Entry {
	data, err := s.items.LoadItem(keyLeaderboard)
	if err != nil {
		log.Printf("Warning: Could not load leaderboard: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("Warning: Could not parse saved leaderboard: %v", err)
		return nil
	}
	return entries
}

func (s *GDataStore) SetLeaderboard(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := s.items.SaveItem(keyLeaderboard, data); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}
