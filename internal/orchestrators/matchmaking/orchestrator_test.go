package matchmaking_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/SnickALt21/juego-pardo/internal/entities"
	"github.com/SnickALt21/juego-pardo/internal/errors"
	"github.com/SnickALt21/juego-pardo/internal/orchestrators/matchmaking"
	"github.com/SnickALt21/juego-pardo/internal/pkg/clock"
	"github.com/SnickALt21/juego-pardo/internal/pkg/idgen"
	"github.com/SnickALt21/juego-pardo/internal/repositories/matches"
	matchesmock "github.com/SnickALt21/juego-pardo/internal/repositories/matches/mock"
	"github.com/SnickALt21/juego-pardo/internal/repositories/queue"
)

type MatchmakingTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockMatches *matchesmock.MockRepository
	queueRepo   *queue.InMemoryRepository
	svc         matchmaking.Service
	ctx         context.Context
	now         time.Time
}

func TestMatchmakingSuite(t *testing.T) {
	suite.Run(t, new(MatchmakingTestSuite))
}

func (s *MatchmakingTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockMatches = matchesmock.NewMockRepository(s.ctrl)
	s.queueRepo = queue.NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	svc, err := matchmaking.NewOrchestrator(&matchmaking.Config{
		Queue:       s.queueRepo,
		Matches:     s.mockMatches,
		Clock:       clock.NewFixed(s.now),
		IDGenerator: idgen.NewSequential("rec"),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *MatchmakingTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MatchmakingTestSuite) queueLen() int {
	output, err := s.queueRepo.List(s.ctx, &queue.ListInput{})
	s.Require().NoError(err)
	return len(output.Entries)
}

func (s *MatchmakingTestSuite) TestLevelGate() {
	for _, level := range []int{9, 5, 1} {
		output, err := s.svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{
			PlayerID: "p1",
			Level:    level,
		})
		s.Nil(output)
		s.True(errors.IsFailedPrecondition(err), "level %d must be rejected", level)
	}

	s.Equal(0, s.queueLen(), "rejected joins must not create entries")
}

func (s *MatchmakingTestSuite) TestSearchingThenMatch() {
	first, err := s.svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{
		PlayerID: "p1",
		Level:    20,
		Stats:    entities.StatBlock{Power: 15, Dexterity: 10, Endurance: 8},
	})
	s.Require().NoError(err)
	s.False(first.MatchFound)
	s.Empty(first.MatchID)

	s.mockMatches.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matches.SaveInput) (*matches.SaveOutput, error) {
			s.Equal("p2", input.Record.PlayerA)
			s.Equal("p1", input.Record.PlayerB)
			s.Equal(24, input.Record.LevelA)
			s.Equal(20, input.Record.LevelB)
			s.Equal("rec_1", input.Record.ID)
			return &matches.SaveOutput{Success: true}, nil
		})

	second, err := s.svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{
		PlayerID: "p2",
		Level:    24,
	})
	s.Require().NoError(err)

	s.Require().True(second.MatchFound)
	s.Equal("p1", second.Opponent.PlayerID)
	s.Equal(entities.StatBlock{Power: 15, Dexterity: 10, Endurance: 8}, second.Opponent.Stats)

	// Match id is derived from both ids and the join time
	s.Equal("p2_p1_"+unixString(s.now), second.MatchID)

	s.Equal(0, s.queueLen(), "queue must be empty after a pairing")
}

func (s *MatchmakingTestSuite) TestIncompatibleLevelsBothSearch() {
	first, err := s.svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{PlayerID: "p1", Level: 20})
	s.Require().NoError(err)
	s.False(first.MatchFound)

	second, err := s.svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{PlayerID: "p2", Level: 30})
	s.Require().NoError(err)
	s.False(second.MatchFound)

	s.Equal(2, s.queueLen())
}

func (s *MatchmakingTestSuite) TestRecordFailureDoesNotFailJoin() {
	_, err := s.svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{PlayerID: "p1", Level: 20})
	s.Require().NoError(err)

	s.mockMatches.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	output, err := s.svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{PlayerID: "p2", Level: 21})
	s.Require().NoError(err)
	s.True(output.MatchFound)
}

func (s *MatchmakingTestSuite) TestLeaveQueue() {
	_, err := s.svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{PlayerID: "p1", Level: 20})
	s.Require().NoError(err)

	output, err := s.svc.LeaveQueue(s.ctx, &matchmaking.LeaveQueueInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.True(output.Removed)
	s.Equal(0, s.queueLen())

	_, err = s.svc.LeaveQueue(s.ctx, &matchmaking.LeaveQueueInput{PlayerID: "p1"})
	s.True(errors.IsNotFound(err))
}

func (s *MatchmakingTestSuite) TestValidation() {
	output, err := s.svc.JoinQueue(s.ctx, nil)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))

	output, err = s.svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{Level: 20})
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))

	leaveOutput, err := s.svc.LeaveQueue(s.ctx, &matchmaking.LeaveQueueInput{})
	s.Nil(leaveOutput)
	s.True(errors.IsInvalidArgument(err))
}

func (s *MatchmakingTestSuite) TestNilMatchRepositorySkipsRecording() {
	svc, err := matchmaking.NewOrchestrator(&matchmaking.Config{
		Queue:       queue.NewInMemory(),
		Clock:       clock.NewFixed(s.now),
		IDGenerator: idgen.NewSequential("rec"),
	})
	s.Require().NoError(err)

	_, err = svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{PlayerID: "p1", Level: 20})
	s.Require().NoError(err)

	output, err := svc.JoinQueue(s.ctx, &matchmaking.JoinQueueInput{PlayerID: "p2", Level: 22})
	s.Require().NoError(err)
	s.True(output.MatchFound)
}

func unixString(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
