package matches_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SnickALt21/juego-pardo/internal/entities"
	"github.com/SnickALt21/juego-pardo/internal/errors"
	"github.com/SnickALt21/juego-pardo/internal/pkg/clock"
	"github.com/SnickALt21/juego-pardo/internal/repositories/matches"
	"github.com/SnickALt21/juego-pardo/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    matches.Repository
	cleanup func()
	ctx     context.Context
	now     time.Time
	ttl     time.Duration
	ffwd    func(d time.Duration)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	s.ttl = time.Hour
	s.ffwd = mr.FastForward

	repo, err := matches.NewRedisRepository(&matches.Config{
		Client: client,
		Clock:  clock.NewFixed(s.now),
		TTL:    s.ttl,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	record := &entities.MatchRecord{
		ID:      "rec_1",
		MatchID: "p1_p2_1700000000",
		PlayerA: "p1",
		PlayerB: "p2",
		LevelA:  20,
		LevelB:  24,
	}

	saveOutput, err := s.repo.Save(s.ctx, &matches.SaveInput{Record: record})
	s.Require().NoError(err)
	s.True(saveOutput.Success)

	getOutput, err := s.repo.Get(s.ctx, &matches.GetInput{MatchID: "p1_p2_1700000000"})
	s.Require().NoError(err)

	got := getOutput.Record
	s.Equal("p1", got.PlayerA)
	s.Equal("p2", got.PlayerB)
	s.Equal(20, got.LevelA)
	s.Equal(24, got.LevelB)
	s.Equal(s.now, got.CreatedAt.UTC(), "missing CreatedAt is filled from the clock")
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	output, err := s.repo.Get(s.ctx, &matches.GetInput{MatchID: "nope"})
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestRecordExpires() {
	record := &entities.MatchRecord{
		ID:      "rec_2",
		MatchID: "p3_p4_1700000001",
		PlayerA: "p3",
		PlayerB: "p4",
	}

	_, err := s.repo.Save(s.ctx, &matches.SaveInput{Record: record})
	s.Require().NoError(err)

	s.ffwd(s.ttl + time.Minute)

	output, err := s.repo.Get(s.ctx, &matches.GetInput{MatchID: "p3_p4_1700000001"})
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, &matches.SaveInput{Record: &entities.MatchRecord{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &matches.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}
