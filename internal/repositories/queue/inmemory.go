package queue

import (
	"context"
	"sync"

	"github.com/SnickALt21/juego-pardo/internal/entities"
	"github.com/SnickALt21/juego-pardo/internal/errors"
)

// InMemoryRepository implements Repository using an in-memory waiting
// room: a map for id lookups plus a slice preserving insertion order
// for the FIFO first-fit scan. A single mutex makes MatchOrAdd the
// atomic critical section the matchmaking contract requires.
type InMemoryRepository struct {
	mu    sync.Mutex
	store map[string]*entities.QueueEntry
	order []string
}

// NewInMemory creates a new in-memory waiting-room store
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.QueueEntry),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// MatchOrAdd scans waiting entries in insertion order for the first
// whose level is within the window (inclusive, symmetric) and whose id
// differs from the joiner's. On a match the opponent is removed and the
// joiner is never inserted. Otherwise the joiner is enqueued; a second
// join by a waiting player refreshes the existing entry in place.
func (r *InMemoryRepository) MatchOrAdd(_ context.Context, input *MatchOrAddInput) (*MatchOrAddOutput, error) {
	if input == nil || input.Entry == nil {
		return nil, errors.InvalidArgument("entry is required")
	}
	if input.Entry.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.LevelWindow < 0 {
		return nil, errors.InvalidArgument("level window must not be negative")
	}

	entry := *input.Entry

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, id := range r.order {
		if id == entry.PlayerID {
			continue
		}
		waiting := r.store[id]
		if abs(waiting.Level-entry.Level) > input.LevelWindow {
			continue
		}

		opponent := *waiting
		delete(r.store, id)
		r.order = append(r.order[:i], r.order[i+1:]...)

		return &MatchOrAddOutput{Matched: true, Opponent: &opponent}, nil
	}

	if _, waiting := r.store[entry.PlayerID]; !waiting {
		r.order = append(r.order, entry.PlayerID)
	}
	r.store[entry.PlayerID] = &entry

	return &MatchOrAddOutput{Matched: false}, nil
}

// Remove cancels a waiting entry
func (r *InMemoryRepository) Remove(_ context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFound("player is not in the queue")
	}

	removed := *entry
	delete(r.store, input.PlayerID)
	for i, id := range r.order {
		if id == input.PlayerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return &RemoveOutput{Entry: &removed}, nil
}

// List returns the waiting entries in insertion order
func (r *InMemoryRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]entities.QueueEntry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, *r.store[id])
	}

	return &ListOutput{Entries: entries}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
