// Package store owns the in-memory message collection. The store is the
// only state in the process; contents are discarded on exit.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/johndosdos/msgstore/internal/model"
)

// ErrNotFound is returned when no message exists for a given id.
var ErrNotFound = errors.New("store: message not found")

// MemoryStore maps message ids to records and remembers insertion order
// so List returns messages in creation order. Safe for concurrent use;
// net/http serves requests in parallel.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]model.Message
	order []string
}

func New() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]model.Message),
	}
}

// Insert adds a new message. The caller is responsible for id uniqueness;
// ids come from the generator and are never reused.
func (s *MemoryStore) Insert(msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[msg.ID] = msg
	s.order = append(s.order, msg.ID)
}

// List returns every stored message in insertion order. The returned
// slice is a copy and is never nil.
func (s *MemoryStore) List() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]model.Message, 0, len(s.order))
	for _, id := range s.order {
		messages = append(messages, s.items[id])
	}

	return messages
}

func (s *MemoryStore) Get(id string) (model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.items[id]
	if !ok {
		return model.Message{}, ErrNotFound
	}

	return msg, nil
}

// Update replaces the message content and stamps UpdatedAt, preserving
// ID and CreatedAt. The whole operation runs under one lock acquisition
// so concurrent updates resolve last-writer-wins.
func (s *MemoryStore) Update(id, content string, now time.Time) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.items[id]
	if !ok {
		return model.Message{}, ErrNotFound
	}

	msg.Content = content
	msg.UpdatedAt = now
	s.items[id] = msg

	return msg, nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}

	delete(s.items, id)
	for i, ord := range s.order {
		if ord == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}
