package event

import (
	"sync"
)

// Store keeps events partitioned by game key and reporting user, in arrival
// order. The inbound flow appends while the summarizer reads, so reads hand
// out copies under the read lock.
type Store struct {
	mu    sync.RWMutex
	games map[string]map[string][]Event
}

func NewStore() *Store {
	return &Store{games: make(map[string]map[string][]Event)}
}

// Add appends an event reported by user under the event's game key.
func (s *Store) Add(user string, e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game := e.GameKey()
	users, ok := s.games[game]
	if !ok {
		users = make(map[string][]Event)
		s.games[game] = users
	}
	users[user] = append(users[user], e)
}

// Events returns a copy of the events reported by user for a game, in the
// order they arrived.
func (s *Store) Events(game, user string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users, ok := s.games[game]
	if !ok {
		return nil
	}
	events := users[user]
	out := make([]Event, len(events))
	copy(out, events)
	return out
}
