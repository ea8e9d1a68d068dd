package game

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hyperoxo/hyperoxo/internal/hypercube"
	"github.com/hyperoxo/hyperoxo/internal/model"
)

type EngineSuite struct {
	suite.Suite
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) newEngine(cfg model.GameConfig) *Engine {
	e, err := NewEngine(cfg)
	s.Require().NoError(err)
	return e
}

// new3x3 builds the familiar 3x3 board.
func (s *EngineSuite) new3x3() *Engine {
	return s.newEngine(model.GameConfig{Dimensions: 2, Size: 3})
}

func (s *EngineSuite) play(e *Engine, cells ...model.Coord) {
	for _, c := range cells {
		s.Require().NoError(e.Move(c))
	}
}

func (s *EngineSuite) TestNewEngineDefaults() {
	e := s.new3x3()

	cfg := e.Config()
	s.Equal(1, cfg.MovesPerTurn)
	s.Equal(model.DefaultMoveBase, cfg.MoveBase)
	s.Equal(model.GameStateInProgress, e.State())
	s.Equal(0, e.ActivePlayer())
	s.Len(e.Unplayed(), 9)
}

func (s *EngineSuite) TestNewEngineBumpsMoveBaseForBigBoards() {
	// 100 cells exceed the conventional base of 99
	e := s.newEngine(model.GameConfig{Dimensions: 2, Size: 10})
	s.Equal(101, e.Config().MoveBase)
}

func (s *EngineSuite) TestNewEngineRejectsBadConfig() {
	_, err := NewEngine(model.GameConfig{Dimensions: 0, Size: 3})
	s.ErrorIs(err, model.ErrInvalidConfiguration)

	_, err = NewEngine(model.GameConfig{Dimensions: 2, Size: 3, MovesPerTurn: -1})
	s.ErrorIs(err, model.ErrInvalidConfiguration)

	// an explicit base must clear the cell count
	_, err = NewEngine(model.GameConfig{Dimensions: 2, Size: 3, MoveBase: 9})
	s.ErrorIs(err, model.ErrInvalidConfiguration)

	_, err = NewEngine(model.GameConfig{Dimensions: 30, Size: 2})
	s.ErrorIs(err, model.ErrResourceExhausted)
}

func (s *EngineSuite) TestMoveAlternatesPlayers() {
	e := s.new3x3()

	s.Require().NoError(e.Move(model.Coord{0, 0}))
	s.Equal(1, e.ActivePlayer())
	s.Require().NoError(e.Move(model.Coord{1, 1}))
	s.Equal(0, e.ActivePlayer())

	s.Equal([2]int{1, 1}, e.MovesPlayed())
	s.Len(e.Moves(), 2)
	s.Equal(0, e.Moves()[0].Player)
	s.Equal(1, e.Moves()[1].Player)
}

func (s *EngineSuite) TestMoveEncodesBoardValues() {
	e := s.new3x3()
	s.play(e, model.Coord{0, 0}, model.Coord{1, 1})

	s.Equal(model.EncodeCell(0, 1, model.DefaultMoveBase), e.CellValue(model.Coord{0, 0}))
	s.Equal(model.EncodeCell(1, 1, model.DefaultMoveBase), e.CellValue(model.Coord{1, 1}))
	s.Equal(0, e.CellValue(model.Coord{2, 2}))
}

func (s *EngineSuite) TestMoveRejectsDuplicate() {
	e := s.new3x3()
	s.play(e, model.Coord{0, 0})

	err := e.Move(model.Coord{0, 0})
	s.ErrorIs(err, model.ErrDuplicateMove)
	// the failed move must not consume the turn
	s.Equal(1, e.ActivePlayer())
	s.Len(e.Moves(), 1)
}

func (s *EngineSuite) TestMoveRejectsUnknownCell() {
	e := s.new3x3()

	s.ErrorIs(e.Move(model.Coord{0, 3}), model.ErrUnknownMove)
	s.ErrorIs(e.Move(model.Coord{-1, 0}), model.ErrUnknownMove)
	s.ErrorIs(e.Move(model.Coord{0, 0, 0}), model.ErrUnknownMove)
	s.Equal(0, e.ActivePlayer())
}

func (s *EngineSuite) TestDiagonalWin() {
	e := s.new3x3()
	s.play(e,
		model.Coord{0, 0}, // P1
		model.Coord{0, 1}, // P2
		model.Coord{1, 1}, // P1
		model.Coord{1, 0}, // P2
		model.Coord{2, 2}, // P1 completes the main diagonal
	)

	s.Equal(model.GameStateWinP1, e.State())
	s.True(e.State().Terminal())
	s.Equal(hypercube.Line{{0, 0}, {1, 1}, {2, 2}}, e.WinLine())
}

func (s *EngineSuite) TestMisereInvertsWinner() {
	e := s.newEngine(model.GameConfig{Dimensions: 2, Size: 3, Misere: true})
	s.play(e,
		model.Coord{0, 0},
		model.Coord{0, 1},
		model.Coord{1, 1},
		model.Coord{1, 0},
		model.Coord{2, 2}, // P1 completes a line and thereby loses
	)

	s.Equal(model.GameStateWinP2, e.State())
	s.NotNil(e.WinLine())
}

func (s *EngineSuite) TestMoveAfterGameOver() {
	e := s.new3x3()
	s.play(e,
		model.Coord{0, 0}, model.Coord{0, 1},
		model.Coord{1, 1}, model.Coord{1, 0},
		model.Coord{2, 2},
	)
	s.Require().True(e.State().Terminal())

	s.ErrorIs(e.Move(model.Coord{2, 0}), model.ErrGameOver)
}

func (s *EngineSuite) TestTie() {
	e := s.new3x3()
	s.play(e,
		model.Coord{1, 1}, // P1
		model.Coord{0, 1}, // P2
		model.Coord{0, 0}, // P1
		model.Coord{2, 2}, // P2
		model.Coord{1, 2}, // P1
		model.Coord{1, 0}, // P2
		model.Coord{2, 1}, // P1
		model.Coord{2, 0}, // P2
		model.Coord{0, 2}, // P1 fills the board without a line
	)

	s.Equal(model.GameStateTie, e.State())
	s.Nil(e.WinLine())
	s.Empty(e.Unplayed())
}

func (s *EngineSuite) TestMoveString() {
	e := s.new3x3()

	s.Require().NoError(e.MoveString("11", 1))
	s.Require().NoError(e.MoveString("2,3", 1))

	s.Len(e.Moves(), 2)
	s.True(e.Moves()[0].Cell.Equal(model.Coord{0, 0}))
	s.True(e.Moves()[1].Cell.Equal(model.Coord{1, 2}))

	s.ErrorIs(e.MoveString("nope", 1), model.ErrUnknownMove)
}

func (s *EngineSuite) TestUndoRevertsMove() {
	e := s.new3x3()
	s.play(e, model.Coord{0, 0}, model.Coord{1, 1})

	e.Undo(0)

	s.Len(e.Moves(), 1)
	s.Equal(1, e.ActivePlayer())
	s.Equal(0, e.CellValue(model.Coord{1, 1}))
	s.Equal([2]int{1, 0}, e.MovesPlayed())
	s.Len(e.Unplayed(), 8)
}

func (s *EngineSuite) TestUndoRevertsWin() {
	e := s.new3x3()
	s.play(e,
		model.Coord{0, 0}, model.Coord{0, 1},
		model.Coord{1, 1}, model.Coord{1, 0},
		model.Coord{2, 2},
	)
	s.Require().Equal(model.GameStateWinP1, e.State())

	e.Undo(0)

	s.Equal(model.GameStateInProgress, e.State())
	s.Nil(e.WinLine())
	s.Equal(0, e.ActivePlayer())
	s.Require().NoError(e.Move(model.Coord{2, 0}))
}

func (s *EngineSuite) TestUndoOnEmptyBoardIsNoop() {
	e := s.new3x3()
	e.Undo(0)

	s.Equal(model.GameStateInProgress, e.State())
	s.Equal(0, e.ActivePlayer())
	s.Empty(e.Moves())
}

func (s *EngineSuite) TestUndoRestoresReplacementValue() {
	e := s.new3x3()
	s.play(e, model.Coord{0, 0})

	e.Undo(42)
	s.Equal(42, e.CellValue(model.Coord{0, 0}))
}

func (s *EngineSuite) TestForfeit() {
	e := s.new3x3()
	s.play(e, model.Coord{0, 0})

	// player 2 is active and gives up
	s.Require().NoError(e.Forfeit())

	s.Equal(model.GameStateWinP1, e.State())
	s.True(e.Forfeited())
	// the board is untouched
	s.Len(e.Moves(), 1)
	s.Len(e.Unplayed(), 8)
}

func (s *EngineSuite) TestUndoRevertsForfeitOnly() {
	e := s.new3x3()
	s.play(e, model.Coord{0, 0})
	s.Require().NoError(e.Forfeit())

	e.Undo(0)

	s.Equal(model.GameStateInProgress, e.State())
	s.False(e.Forfeited())
	// the move history survives; only the forfeit is taken back
	s.Len(e.Moves(), 1)
	s.Equal(1, e.ActivePlayer())
}

func (s *EngineSuite) TestForfeitAfterGameOver() {
	e := s.new3x3()
	s.play(e,
		model.Coord{0, 0}, model.Coord{0, 1},
		model.Coord{1, 1}, model.Coord{1, 0},
		model.Coord{2, 2},
	)
	s.Require().Equal(model.GameStateWinP1, e.State())
	wonLine := e.WinLine()

	// a forfeit must not overwrite the recorded win
	s.ErrorIs(e.Forfeit(), model.ErrGameOver)
	s.Equal(model.GameStateWinP1, e.State())
	s.False(e.Forfeited())
	s.Equal(wonLine, e.WinLine())

	// undo takes back the winning move, not a phantom forfeit
	e.Undo(0)
	s.Equal(model.GameStateInProgress, e.State())
	s.Len(e.Moves(), 4)
}

func (s *EngineSuite) TestMultiMoveTurns() {
	e := s.newEngine(model.GameConfig{Dimensions: 2, Size: 3, MovesPerTurn: 2})

	s.Require().NoError(e.Move(model.Coord{0, 0}))
	s.Equal(0, e.ActivePlayer())
	s.Equal(1, e.ActiveMoves())

	s.Require().NoError(e.Move(model.Coord{0, 1}))
	s.Equal(1, e.ActivePlayer())
	s.Equal(0, e.ActiveMoves())
}

func (s *EngineSuite) TestMultiMoveTurnUndo() {
	e := s.newEngine(model.GameConfig{Dimensions: 2, Size: 3, MovesPerTurn: 2})
	s.play(e, model.Coord{0, 0}, model.Coord{0, 1})
	s.Require().Equal(1, e.ActivePlayer())

	e.Undo(0)
	s.Equal(0, e.ActivePlayer())
	s.Equal(1, e.ActiveMoves())

	e.Undo(0)
	s.Equal(0, e.ActivePlayer())
	s.Equal(0, e.ActiveMoves())
}

func (s *EngineSuite) TestUndoRoundTripRestoresInitialState() {
	e := s.new3x3()
	cells := []model.Coord{
		{0, 0}, {0, 1}, {1, 1}, {1, 0}, {2, 2},
	}
	s.play(e, cells...)
	s.Require().True(e.State().Terminal())

	for range cells {
		e.Undo(0)
	}

	s.Equal(model.GameStateInProgress, e.State())
	s.Equal(0, e.ActivePlayer())
	s.Equal(0, e.ActiveMoves())
	s.Equal([2]int{0, 0}, e.MovesPlayed())
	s.Empty(e.Moves())
	s.Len(e.Unplayed(), 9)
	for _, c := range cells {
		s.Equal(0, e.CellValue(c))
	}
}

func (s *EngineSuite) TestReset() {
	e := s.new3x3()
	s.play(e,
		model.Coord{0, 0}, model.Coord{0, 1},
		model.Coord{1, 1}, model.Coord{1, 0},
		model.Coord{2, 2},
	)
	s.Require().True(e.State().Terminal())

	e.Reset()

	s.Equal(model.GameStateInProgress, e.State())
	s.Equal(0, e.ActivePlayer())
	s.Empty(e.Moves())
	s.Len(e.Unplayed(), 9)
	s.Equal(0, e.CellValue(model.Coord{0, 0}))
	s.Nil(e.WinLine())
}

func (s *EngineSuite) Test1DGame() {
	e := s.newEngine(model.GameConfig{Dimensions: 1, Size: 3})
	s.play(e,
		model.Coord{0}, // P1
		model.Coord{1}, // P2: splits the only line, a tie is now forced
		model.Coord{2}, // P1
	)
	s.Equal(model.GameStateTie, e.State())
}

func (s *EngineSuite) Test4DWin() {
	e := s.newEngine(model.GameConfig{Dimensions: 4, Size: 2})
	s.play(e,
		model.Coord{0, 0, 0, 0}, // P1
		model.Coord{0, 1, 1, 0}, // P2
		model.Coord{1, 1, 1, 1}, // P1 completes the main diagonal
	)
	s.Equal(model.GameStateWinP1, e.State())
}
