package mission

import "github.com/SnickALt21/juego-pardo/internal/entities"

// GetMissionInput defines the request for looking up a mission
type GetMissionInput struct {
	ID int
}

// GetMissionOutput defines the response for looking up a mission
type GetMissionOutput struct {
	Mission *entities.Mission
}

// CompleteMissionInput defines the request for settling a mission run
type CompleteMissionInput struct {
	ID      int
	Victory bool
}

// CompleteMissionOutput defines the response for settling a mission run
type CompleteMissionOutput struct {
	Reward *entities.MissionReward
}
