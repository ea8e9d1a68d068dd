package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hyperoxo/hyperoxo/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID:        id,
		Config:    model.GameConfig{Dimensions: 2, Size: 3, MovesPerTurn: 1, MoveBase: 99},
		Players:   [2]string{"Player 1", "Player 2"},
		State:     model.GameStateInProgress,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("session-1")
	session.Moves = []model.Move{{Player: 0, Cell: model.Coord{1, 1}}}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Config, retrieved.Config)
	s.Equal(session.Moves, retrieved.Moves)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSavedSessionIsIsolatedFromCaller() {
	session := s.newSession("session-1")
	session.Moves = []model.Move{{Player: 0, Cell: model.Coord{0, 0}}}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	// mutating the caller's copy must not affect the stored record
	session.Moves = append(session.Moves, model.Move{Player: 1, Cell: model.Coord{1, 1}})
	session.State = model.GameStateTie

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Len(retrieved.Moves, 1)
	s.Equal(model.GameStateInProgress, retrieved.State)
}

func (s *StorageSuite) TestDeleteSession() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("session-1")))

	err := s.storage.DeleteSession(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteMissingSessionIsNoop() {
	s.NoError(s.storage.DeleteSession(s.ctx, "nonexistent"))
}

func (s *StorageSuite) TestListSessions() {
	ids, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)

	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("bbb")))
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("aaa")))

	ids, err = s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.SessionID{"aaa", "bbb"}, ids)
}

func (s *StorageSuite) TestSaveOverwrites() {
	session := s.newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	session.State = model.GameStateWinP1
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.GameStateWinP1, retrieved.State)
}
