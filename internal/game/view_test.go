package game

import (
	"github.com/hyperoxo/hyperoxo/internal/model"
)

func (s *EngineSuite) TestNamesAndMarksDefaults() {
	e := s.new3x3()
	s.Equal([2]string{"Player 1", "Player 2"}, e.Names())
	s.Equal([2]string{"O", "X"}, e.Marks())
}

func (s *EngineSuite) TestSetNames() {
	e := s.new3x3()
	s.Require().NoError(e.SetNames("Ada", "Grace"))
	s.Equal([2]string{"Ada", "Grace"}, e.Names())

	s.ErrorIs(e.SetNames("", "Grace"), model.ErrInvalidNames)
	s.ErrorIs(e.SetNames("Ada", ""), model.ErrInvalidNames)
	s.ErrorIs(e.SetNames("Ada", "Ada"), model.ErrInvalidNames)
}

func (s *EngineSuite) TestSetMarks() {
	e := s.new3x3()
	s.Require().NoError(e.SetMarks("##", ".."))
	s.Equal([2]string{"##", ".."}, e.Marks())

	s.ErrorIs(e.SetMarks("", "X"), model.ErrInvalidMarks)
	s.ErrorIs(e.SetMarks("O", "O"), model.ErrInvalidMarks)
	// marks of different widths would break the grid
	s.ErrorIs(e.SetMarks("O", "XX"), model.ErrInvalidMarks)
}

func (s *EngineSuite) TestCellView() {
	e := s.new3x3()
	s.play(e, model.Coord{0, 0}, model.Coord{1, 1})

	v := e.CellView(model.Coord{0, 0})
	s.Equal("O", v.Mark)
	s.Equal(0, v.Player)
	s.False(v.LastMove)

	v = e.CellView(model.Coord{1, 1})
	s.Equal("X", v.Mark)
	s.Equal(1, v.Player)
	s.True(v.LastMove)

	v = e.CellView(model.Coord{2, 2})
	s.Equal(" ", v.Mark)
	s.Equal(-1, v.Player)
	s.False(v.LastMove)
}

func (s *EngineSuite) TestCellViewWinningLine() {
	e := s.new3x3()
	s.play(e,
		model.Coord{0, 0}, model.Coord{0, 1},
		model.Coord{1, 1}, model.Coord{1, 0},
		model.Coord{2, 2},
	)
	s.Require().True(e.State().Terminal())

	s.True(e.CellView(model.Coord{0, 0}).WinningLine)
	s.True(e.CellView(model.Coord{1, 1}).WinningLine)
	s.True(e.CellView(model.Coord{2, 2}).WinningLine)
	s.False(e.CellView(model.Coord{0, 1}).WinningLine)
}

func (s *EngineSuite) TestStateString() {
	e := s.new3x3()
	s.Require().NoError(e.SetNames("Ada", "Grace"))
	s.Equal("In progress", e.StateString())

	s.Require().NoError(e.Forfeit())
	s.Equal("Grace wins", e.StateString())

	e.Undo(0)
	s.Require().NoError(e.Move(model.Coord{0, 0}))
	s.Require().NoError(e.Forfeit())
	s.Equal("Ada wins", e.StateString())
}

func (s *EngineSuite) TestLineState() {
	e := s.new3x3()
	s.play(e,
		model.Coord{0, 0}, // P1
		model.Coord{1, 1}, // P2
		model.Coord{0, 1}, // P1
	)

	// row 0: P1, P1, empty
	row0 := s.lineID(e, model.Coord{0, 0}, model.Coord{0, 1}, model.Coord{0, 2})
	ls := e.LineState(row0)
	s.Equal([2]int{2, 0}, ls.Marks)
	s.Equal([2]int{2, 0}, ls.Consecutive)

	// main diagonal: P1, P2, empty
	diag := s.lineID(e, model.Coord{0, 0}, model.Coord{1, 1}, model.Coord{2, 2})
	ls = e.LineState(diag)
	s.Equal([2]int{1, 1}, ls.Marks)
	s.Equal([2]int{1, 1}, ls.Consecutive)
}

// lineID finds the ID of the line consisting of exactly the given cells.
func (s *EngineSuite) lineID(e *Engine, cells ...model.Coord) int {
	for id, line := range e.Structure().Lines() {
		if len(line) != len(cells) {
			continue
		}
		match := true
		for i := range cells {
			if !line[i].Equal(cells[i]) {
				match = false
				break
			}
		}
		if match {
			return id
		}
	}
	s.Require().FailNow("no such line")
	return -1
}
