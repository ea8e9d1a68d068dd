package game

import (
	"strings"

	"github.com/hyperoxo/hyperoxo/internal/model"
)

// CellView is the display contract for a single cell: the mark to show and
// the highlighting flags. Interpreting the flags (colors, layout) is the
// renderer's job, not the engine's.
type CellView struct {
	// Mark is the owning player's mark, or spaces of mark width if unplayed
	Mark string
	// Player is the owning player index, or -1 if unplayed
	Player int
	// LastMove is true for the most recently played cell
	LastMove bool
	// WinningLine is true if the cell is part of the recorded winning line
	WinningLine bool
}

// CellView describes how the cell should be displayed right now.
func (e *Engine) CellView(cell model.Coord) CellView {
	v := CellView{Player: -1, Mark: strings.Repeat(" ", len(e.marks[0]))}

	player, _, played := model.DecodeCell(e.CellValue(cell), e.cfg.MoveBase)
	if played {
		v.Player = player
		v.Mark = e.marks[player]
	}

	if len(e.moves) > 0 && e.moves[len(e.moves)-1].Cell.Equal(cell) {
		v.LastMove = true
	}

	if e.winLine >= 0 {
		for _, c := range e.structure.Line(e.winLine) {
			if c.Equal(cell) {
				v.WinningLine = true
				break
			}
		}
	}
	return v
}

// Names returns the player names.
func (e *Engine) Names() [2]string { return e.names }

// SetNames sets the player names. Names must be non-empty and unique.
func (e *Engine) SetNames(p1, p2 string) error {
	if p1 == "" || p2 == "" || p1 == p2 {
		return model.ErrInvalidNames
	}
	e.names = [2]string{p1, p2}
	return nil
}

// Marks returns the player marks.
func (e *Engine) Marks() [2]string { return e.marks }

// SetMarks sets the player marks. Marks must be non-empty, unique and of
// equal width so the board renders on a fixed grid.
func (e *Engine) SetMarks(m1, m2 string) error {
	if m1 == "" || m2 == "" || m1 == m2 || len(m1) != len(m2) {
		return model.ErrInvalidMarks
	}
	e.marks = [2]string{m1, m2}
	return nil
}

// StateString returns a human description of the game state using the
// player names.
func (e *Engine) StateString() string {
	switch e.state {
	case model.GameStateWinP1:
		return e.names[0] + " wins"
	case model.GameStateWinP2:
		return e.names[1] + " wins"
	case model.GameStateTie:
		return "It's a tie"
	default:
		return "In progress"
	}
}

// LineState summarizes one line's occupancy: total marks per player and
// the longest consecutive run per player along the line. Used by the
// heuristic strategy to score candidate cells.
type LineState struct {
	Marks       [2]int
	Consecutive [2]int
}

// LineState computes the occupancy summary for the line with the given ID.
func (e *Engine) LineState(id int) LineState {
	var ls LineState
	var run [2]int
	for _, c := range e.structure.Line(id) {
		player, _, played := model.DecodeCell(e.CellValue(c), e.cfg.MoveBase)
		if !played {
			run = [2]int{}
			continue
		}
		ls.Marks[player]++
		run[player]++
		run[1-player] = 0
		if run[player] > ls.Consecutive[player] {
			ls.Consecutive[player] = run[player]
		}
	}
	return ls
}
