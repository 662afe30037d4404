package entities

import "time"

// QueueEntry is a player waiting in the PvP matchmaking queue. Entries
// are created on join and destroyed when matched or cancelled; a player
// id appears at most once at any time.
type QueueEntry struct {
	PlayerID string    `json:"user_id"`
	Level    int       `json:"level"`
	Stats    StatBlock `json:"stats"`
	JoinedAt time.Time `json:"joined_at"`
}

// MatchRecord is the stored trace of a completed pairing. The record id
// is the storage key; the match id is the identifier handed to both
// players.
type MatchRecord struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	PlayerA   string    `json:"player_a"`
	PlayerB   string    `json:"player_b"`
	LevelA    int       `json:"level_a"`
	LevelB    int       `json:"level_b"`
	CreatedAt time.Time `json:"created_at"`
}
