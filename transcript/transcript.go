// Package transcript keeps the ordered history of one room session.
// Append-only: no entry is ever edited or removed. The only whole-sale
// mutation is Replace, which backs the session controller's import path.
package transcript

import "github.com/StaticAccess/Lynai/domain"

// Subscriber is notified after every append, in append order.
type Subscriber func(domain.Message)

// Store records messages strictly in arrival order.
//
// Store is not safe for concurrent mutation; the session controller
// serializes every write on its event loop. Snapshots taken with All
// are safe to hold across later appends.
type Store struct {
	messages []domain.Message
	subs     []Subscriber
}

func NewStore() *Store {
	return &Store{}
}

// Append records one message. O(1) amortized, never fails.
func (s *Store) Append(msg domain.Message) {
	s.messages = append(s.messages, msg)
	for _, sub := range s.subs {
		sub(msg)
	}
}

// All returns a snapshot reflecting append order.
func (s *Store) All() []domain.Message {
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Len() int {
	return len(s.messages)
}

// Subscribe registers a callback fired after every subsequent append.
func (s *Store) Subscribe(sub Subscriber) {
	s.subs = append(s.subs, sub)
}

// Replace swaps the entire history for the imported one. Import is a
// full replace, never a merge; live messages arriving afterwards append
// behind the imported entries. Subscribers are not replayed.
func (s *Store) Replace(messages []domain.Message) {
	s.messages = make([]domain.Message, len(messages))
	copy(s.messages, messages)
}
