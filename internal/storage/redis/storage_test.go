package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/susround/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newSession(code model.SessionCode) *model.Session {
	session := model.NewSession(code, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	alice := model.NewPlayer("player-1", "Alice")
	alice.Role = model.RoleImpostor
	alice.Tasks = []model.Task{
		{ID: "t1", Text: "Loosen the stage lights", Kind: model.TaskKindImpostor},
		{ID: "t2", Text: "Hide the spare key", Kind: model.TaskKindImpostor, Completed: true},
	}
	session.Players = append(session.Players, alice, model.NewPlayer("player-2", "Bob"))
	session.Round = 2
	session.Phase = model.PhaseMeeting
	suspect := model.PlayerID("player-2")
	session.SuspectID = &suspect
	return &session
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := newSession("ABC123")

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(session.Code, retrieved.Code)
	s.Equal(session.Round, retrieved.Round)
	s.Equal(model.PhaseMeeting, retrieved.Phase)
	s.Require().Len(retrieved.Players, 2)
	s.Equal(session.Players[0].Tasks, retrieved.Players[0].Tasks)
	s.Equal(model.RoleImpostor, retrieved.Players[0].Role)
	s.Require().NotNil(retrieved.SuspectID)
	s.Equal(model.PlayerID("player-2"), *retrieved.SuspectID)
	s.Nil(retrieved.Outcome)
	s.True(session.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "NOPE00")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSaveSessionSetsTTL() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, newSession("ABC123")))

	ttl := s.mini.TTL(sessionKey("ABC123"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestSessionExpires() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, newSession("ABC123")))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrSessionNotFound)

	codes, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(codes)

	// Expired members are pruned from the index
	s.False(s.mini.Exists(sessionIndexKey()))
}

func (s *StorageSuite) TestDeleteSession() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, newSession("ABC123")))

	err := s.storage.DeleteSession(s.ctx, "ABC123")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrSessionNotFound)

	s.False(s.mini.Exists(sessionIndexKey()))
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveSession(s.ctx, newSession("ABC123")))

	exists, err = s.storage.SessionExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestListSessionsSorted() {
	for _, code := range []model.SessionCode{"ZZZ999", "AAA111", "MMM555"} {
		s.Require().NoError(s.storage.SaveSession(s.ctx, newSession(code)))
	}

	codes, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.SessionCode{"AAA111", "MMM555", "ZZZ999"}, codes)
}
