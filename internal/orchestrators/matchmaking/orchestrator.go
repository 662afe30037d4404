// Package matchmaking implements the PvP waiting room: first-fit
// pairing by level proximity over an injectable queue store.
package matchmaking

//go:generate mockgen -destination=mock/mock_service.go -package=matchmakingmock github.com/SnickALt21/juego-pardo/internal/orchestrators/matchmaking Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SnickALt21/juego-pardo/internal/entities"
	"github.com/SnickALt21/juego-pardo/internal/errors"
	"github.com/SnickALt21/juego-pardo/internal/pkg/clock"
	"github.com/SnickALt21/juego-pardo/internal/pkg/idgen"
	"github.com/SnickALt21/juego-pardo/internal/repositories/matches"
	"github.com/SnickALt21/juego-pardo/internal/repositories/queue"
)

const (
	// Minimum player level for PvP
	minPvPLevel = 10

	// Inclusive level distance for a valid pairing
	levelWindow = 5
)

// Service defines the interface for matchmaking operations
type Service interface {
	// JoinQueue pairs the player with a compatible waiting opponent,
	// or enqueues them when none is waiting.
	JoinQueue(ctx context.Context, input *JoinQueueInput) (*JoinQueueOutput, error)

	// LeaveQueue cancels a waiting entry
	LeaveQueue(ctx context.Context, input *LeaveQueueInput) (*LeaveQueueOutput, error)
}

// Config holds the dependencies for the matchmaking orchestrator.
// Matches is optional; when nil, completed pairings are not recorded.
type Config struct {
	Queue       queue.Repository
	Matches     matches.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Queue == nil {
		vb.RequiredField("Queue")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	queue   queue.Repository
	matches matches.Repository
	clock   clock.Clock
	idGen   idgen.Generator
}

// NewOrchestrator creates a new matchmaking orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		queue:   cfg.Queue,
		matches: cfg.Matches,
		clock:   cfg.Clock,
		idGen:   cfg.IDGenerator,
	}, nil
}

// JoinQueue gates on the minimum PvP level, then delegates the atomic
// scan-and-remove-or-insert to the queue store. The match id is derived
// from both player ids and the join time.
func (o *orchestrator) JoinQueue(ctx context.Context, input *JoinQueueInput) (*JoinQueueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.PlayerID, vb)
	errors.ValidateMin("level", input.Level, 1, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.Level < minPvPLevel {
		return nil, errors.FailedPreconditionf("minimum level %d required for PvP", minPvPLevel)
	}

	now := o.clock.Now()
	output, err := o.queue.MatchOrAdd(ctx, &queue.MatchOrAddInput{
		Entry: &entities.QueueEntry{
			PlayerID: input.PlayerID,
			Level:    input.Level,
			Stats:    input.Stats,
			JoinedAt: now,
		},
		LevelWindow: levelWindow,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to join queue")
	}

	if !output.Matched {
		slog.Info("Player searching for opponent",
			"user_id", input.PlayerID,
			"level", input.Level,
		)
		return &JoinQueueOutput{MatchFound: false}, nil
	}

	opponent := output.Opponent
	matchID := fmt.Sprintf("%s_%s_%d", input.PlayerID, opponent.PlayerID, now.Unix())

	o.recordMatch(ctx, matchID, input, opponent, now)

	slog.Info("Match found",
		"match_id", matchID,
		"user_id", input.PlayerID,
		"opponent_id", opponent.PlayerID,
	)

	return &JoinQueueOutput{
		MatchFound: true,
		MatchID:    matchID,
		Opponent:   opponent,
	}, nil
}

// LeaveQueue cancels a waiting entry
func (o *orchestrator) LeaveQueue(ctx context.Context, input *LeaveQueueInput) (*LeaveQueueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("user_id is required")
	}

	if _, err := o.queue.Remove(ctx, &queue.RemoveInput{PlayerID: input.PlayerID}); err != nil {
		return nil, err
	}

	slog.Info("Player left the queue", "user_id", input.PlayerID)

	return &LeaveQueueOutput{Removed: true}, nil
}

// recordMatch persists the pairing when a match repository is
// configured. Recording is best effort: the pairing itself is the
// authoritative result, so a storage failure only logs.
func (o *orchestrator) recordMatch(ctx context.Context, matchID string, input *JoinQueueInput, opponent *entities.QueueEntry, now time.Time) {
	if o.matches == nil {
		return
	}

	_, err := o.matches.Save(ctx, &matches.SaveInput{
		Record: &entities.MatchRecord{
			ID:        o.idGen.Generate(),
			MatchID:   matchID,
			PlayerA:   input.PlayerID,
			PlayerB:   opponent.PlayerID,
			LevelA:    input.Level,
			LevelB:    opponent.Level,
			CreatedAt: now,
		},
	})
	if err != nil {
		slog.Error("Failed to record match",
			"match_id", matchID,
			"error", err,
		)
	}
}
