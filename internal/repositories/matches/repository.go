// Package matches stores the records of completed PvP pairings so the
// surrounding service can look a match up after the fact.
package matches

//go:generate mockgen -destination=mock/mock_repository.go -package=matchesmock github.com/SnickALt21/juego-pardo/internal/repositories/matches Repository

import (
	"context"

	"github.com/SnickALt21/juego-pardo/internal/entities"
)

// SaveInput defines the request for storing a match record
type SaveInput struct {
	Record *entities.MatchRecord
}

// SaveOutput defines the response for storing a match record
type SaveOutput struct {
	Success bool
}

// GetInput defines the request for looking up a match by match id
type GetInput struct {
	MatchID string
}

// GetOutput defines the response for looking up a match
type GetOutput struct {
	Record *entities.MatchRecord
}

// Repository stores completed pairings
type Repository interface {
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
}
