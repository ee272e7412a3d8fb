package lifesync

import "sync"

// SessionStore holds the current token pair and notifies subscribers when it
// changes. Safe for concurrent use.
type SessionStore struct {
	mu          sync.RWMutex
	tokens      TokenPair
	established bool
	subscribers []chan TokenPair
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Get returns the current token pair; ok is false when no session is active.
func (s *SessionStore) Get() (TokenPair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens, s.established
}

// Set stores a new token pair and notifies subscribers.
func (s *SessionStore) Set(tokens TokenPair) {
	s.mu.Lock()
	s.tokens = tokens
	s.established = true
	s.mu.Unlock()

	s.notify(tokens)
}

// Clear drops the active session and notifies subscribers with a zero pair.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	s.tokens = TokenPair{}
	s.established = false
	s.mu.Unlock()

	s.notify(TokenPair{})
}

// Subscribe returns a channel that receives the token pair on every change.
// Slow subscribers miss intermediate updates rather than blocking the store.
func (s *SessionStore) Subscribe() <-chan TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan TokenPair, 1)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

func (s *SessionStore) notify(tokens TokenPair) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- tokens:
		default:
			// Drop the stale value and replace it with the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- tokens:
			default:
			}
		}
	}
}
