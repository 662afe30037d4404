package matchmaking

import "github.com/SnickALt21/juego-pardo/internal/entities"

// JoinQueueInput defines the request for joining the PvP queue
type JoinQueueInput struct {
	PlayerID string
	Level    int
	Stats    entities.StatBlock
}

// JoinQueueOutput defines the response for joining the PvP queue.
// When MatchFound is false the player is waiting ("searching").
type JoinQueueOutput struct {
	MatchFound bool
	MatchID    string
	Opponent   *entities.QueueEntry
}

// LeaveQueueInput defines the request for cancelling a waiting entry
type LeaveQueueInput struct {
	PlayerID string
}

// LeaveQueueOutput defines the response for cancelling a waiting entry
type LeaveQueueOutput struct {
	Removed bool
}
