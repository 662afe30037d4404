// Package queue provides the PvP matchmaking waiting-room store
package queue

//go:generate mockgen -destination=mock/mock_repository.go -package=queuemock github.com/SnickALt21/juego-pardo/internal/repositories/queue Repository

import (
	"context"

	"github.com/SnickALt21/juego-pardo/internal/entities"
)

// MatchOrAddInput defines the request for the atomic join operation
type MatchOrAddInput struct {
	// Entry is the joining player's waiting-room entry
	Entry *entities.QueueEntry

	// LevelWindow is the inclusive level distance for a valid pairing
	LevelWindow int
}

// MatchOrAddOutput defines the response for the atomic join operation
type MatchOrAddOutput struct {
	// Matched reports whether an opponent was found and removed
	Matched bool

	// Opponent is the removed waiting entry when Matched is true
	Opponent *entities.QueueEntry
}

// RemoveInput defines the request for cancelling a waiting entry
type RemoveInput struct {
	PlayerID string
}

// RemoveOutput defines the response for cancelling a waiting entry
type RemoveOutput struct {
	Entry *entities.QueueEntry
}

// ListInput defines the request for listing waiting entries
type ListInput struct{}

// ListOutput defines the response for listing waiting entries
type ListOutput struct {
	// Entries in insertion (FIFO) order
	Entries []entities.QueueEntry
}

// Repository is the waiting-room store. MatchOrAdd is the single
// critical section of the matchmaking core: the scan, the removal of a
// matched opponent, and the insertion of an unmatched newcomer must be
// atomic with respect to concurrent joins.
type Repository interface {
	MatchOrAdd(ctx context.Context, input *MatchOrAddInput) (*MatchOrAddOutput, error)
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}
