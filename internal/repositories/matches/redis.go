package matches

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/SnickALt21/juego-pardo/internal/entities"
	"github.com/SnickALt21/juego-pardo/internal/errors"
	"github.com/SnickALt21/juego-pardo/internal/pkg/clock"
	redisclient "github.com/SnickALt21/juego-pardo/internal/redis"
)

const (
	// Key pattern: match:{match_id}
	matchKeyPrefix = "match:"

	// Records are a short-lived trace, not an archive
	defaultTTL = 24 * time.Hour
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL overrides the default record lifetime when non-zero
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for match records
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save stores a match record with the repository TTL
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.InvalidArgument("record is required")
	}
	if input.Record.MatchID == "" {
		return nil, errors.InvalidArgument("match ID is required")
	}

	record := *input.Record
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.clock.Now()
	}

	recordJSON, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal match record")
	}

	key := r.buildKey(record.MatchID)
	if err := r.client.Set(ctx, key, recordJSON, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store match record in Redis")
	}

	return &SaveOutput{Success: true}, nil
}

// Get retrieves a match record by match id
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.InvalidArgument("match ID is required")
	}

	key := r.buildKey(input.MatchID)

	recordJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("match not found")
		}
		return nil, errors.Wrapf(err, "failed to get match record from Redis")
	}

	var record entities.MatchRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal match record")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) buildKey(matchID string) string {
	return fmt.Sprintf("%s%s", matchKeyPrefix, matchID)
}
