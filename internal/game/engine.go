// Package game implements the move/win/undo state machine on top of the
// hypercube structure engine. Win detection after a move only inspects the
// lines in the played cell's scope, never the full line list.
//
// An Engine is single-threaded: callers must serialize Move/Undo access.
package game

import (
	"fmt"

	"github.com/hyperoxo/hyperoxo/internal/hypercube"
	"github.com/hyperoxo/hyperoxo/internal/model"
)

// Engine owns the board and game state for one game.
type Engine struct {
	cfg       model.GameConfig
	structure *hypercube.Structure

	// board values are sign/magnitude encoded, see model.EncodeCell
	board       []int
	moves       []model.Move
	movesPlayed [2]int
	unplayed    map[int]struct{}

	activePlayer int
	activeMoves  int
	state        model.GameState
	winLine      int // line ID, -1 while no win is recorded
	forfeited    bool

	names [2]string
	marks [2]string
}

// NewEngine validates the configuration, builds the hypercube structure and
// returns a ready engine. MovesPerTurn of zero defaults to 1 and MoveBase
// of zero defaults to the smallest valid base; explicit invalid values are
// rejected with ErrInvalidConfiguration.
func NewEngine(cfg model.GameConfig) (*Engine, error) {
	if cfg.MovesPerTurn == 0 {
		cfg.MovesPerTurn = 1
	}
	if cfg.MovesPerTurn < 1 {
		return nil, fmt.Errorf("%w: moves per turn must be at least 1, got %d",
			model.ErrInvalidConfiguration, cfg.MovesPerTurn)
	}

	structure, err := hypercube.NewStructure(cfg.Dimensions, cfg.Size)
	if err != nil {
		return nil, err
	}

	cells := structure.Cells()
	if cfg.MoveBase == 0 {
		cfg.MoveBase = model.DefaultMoveBase
		if cells >= cfg.MoveBase {
			cfg.MoveBase = cells + 1
		}
	}
	// the "is this cell played" test is abs(value) > MoveBase, so the base
	// must clear every possible move-order magnitude
	if cfg.MoveBase <= cells {
		return nil, fmt.Errorf("%w: move base %d must exceed the cell count %d",
			model.ErrInvalidConfiguration, cfg.MoveBase, cells)
	}

	e := &Engine{
		cfg:       cfg,
		structure: structure,
		board:     make([]int, cells),
		names:     [2]string{"Player 1", "Player 2"},
		marks:     [2]string{"O", "X"},
	}
	e.Reset()
	return e, nil
}

// Reset clears the board, move history and turn bookkeeping without
// rebuilding the structure.
func (e *Engine) Reset() {
	e.state = model.GameStateInProgress
	for i := range e.board {
		e.board[i] = 0
	}
	e.winLine = -1
	e.activePlayer = 0
	e.activeMoves = 0
	e.forfeited = false
	e.moves = e.moves[:0]
	e.movesPlayed = [2]int{}
	e.unplayed = make(map[int]struct{}, len(e.board))
	for i := range e.board {
		e.unplayed[i] = struct{}{}
	}
}

// Move plays the given cell for the active player.
//
// It fails with ErrGameOver if the game is not in progress, ErrUnknownMove
// if the coordinate is malformed or out of range, and ErrDuplicateMove if
// the cell is occupied; the game state is unchanged on failure.
func (e *Engine) Move(cell model.Coord) error {
	if e.state.Terminal() {
		return model.ErrGameOver
	}
	if len(cell) != e.cfg.Dimensions || !cell.InBounds(e.cfg.Size) {
		return fmt.Errorf("%w: %v is not a cell of h(%d, %d)",
			model.ErrUnknownMove, cell, e.cfg.Dimensions, e.cfg.Size)
	}

	idx := e.structure.CellIndex(cell)
	if _, _, played := model.DecodeCell(e.board[idx], e.cfg.MoveBase); played {
		return fmt.Errorf("%w: %v", model.ErrDuplicateMove, cell)
	}

	mover := e.activePlayer
	e.movesPlayed[mover]++
	e.board[idx] = model.EncodeCell(mover, e.movesPlayed[mover], e.cfg.MoveBase)
	e.moves = append(e.moves, model.Move{Player: mover, Cell: cell.Clone()})
	delete(e.unplayed, idx)

	if id, won := e.winningLine(cell, mover); won {
		e.winLine = id
		winner := mover
		if e.cfg.Misere {
			// completing a line loses: the opponent takes the win
			winner = 1 - mover
		}
		if winner == 0 {
			e.state = model.GameStateWinP1
		} else {
			e.state = model.GameStateWinP2
		}
	} else if len(e.unplayed) == 0 {
		e.state = model.GameStateTie
	}

	e.activeMoves++
	if e.activeMoves == e.cfg.MovesPerTurn {
		e.activeMoves = 0
		e.activePlayer = 1 - e.activePlayer
	}
	return nil
}

// MoveString parses a cell specification (see hypercube.ParseCoord) and
// plays it. offset is typically 1 for human 1-based input.
func (e *Engine) MoveString(s string, offset int) error {
	cell, err := hypercube.ParseCoord(e.cfg.Dimensions, e.cfg.Size, s, offset)
	if err != nil {
		return err
	}
	return e.Move(cell)
}

// winningLine reports whether the mover owns every cell of some line
// through the cell just played. Only that cell's scope is inspected, so the
// check is O(scope size * n) rather than O(total lines * n).
func (e *Engine) winningLine(cell model.Coord, mover int) (int, bool) {
	// a player needs at least n marks before any line can be complete
	if len(e.moves) < e.cfg.Size {
		return -1, false
	}
	for _, id := range e.structure.Scope(cell) {
		owned := true
		for _, c := range e.structure.Line(id) {
			player, _, played := model.DecodeCell(e.board[e.structure.CellIndex(c)], e.cfg.MoveBase)
			if !played || player != mover {
				owned = false
				break
			}
		}
		if owned {
			return id, true
		}
	}
	return -1, false
}

// Undo reverts the last move, restoring the cell to replace (normally 0).
// A terminal state always reverts to in-progress, including wins, ties and
// forfeits; an undone forfeit leaves the board and history untouched. Undo
// with no recorded moves is a no-op.
func (e *Engine) Undo(replace int) {
	e.state = model.GameStateInProgress
	e.winLine = -1

	if e.forfeited {
		e.forfeited = false
		return
	}
	if len(e.moves) == 0 {
		return
	}

	// reverse the turn bookkeeping symmetrically to Move
	if e.activeMoves == 0 {
		e.activeMoves = e.cfg.MovesPerTurn - 1
		e.activePlayer = 1 - e.activePlayer
	} else {
		e.activeMoves--
	}

	last := e.moves[len(e.moves)-1]
	idx := e.structure.CellIndex(last.Cell)
	e.movesPlayed[e.activePlayer]--
	e.board[idx] = replace
	e.unplayed[idx] = struct{}{}
	e.moves = e.moves[:len(e.moves)-1]
}

// Forfeit ends the game in the other player's favor without touching the
// board; the following Undo restores in-progress play. Forfeiting a game
// that already ended fails with ErrGameOver so a recorded win is never
// overwritten.
func (e *Engine) Forfeit() error {
	if e.state.Terminal() {
		return model.ErrGameOver
	}
	e.forfeited = true
	if e.activePlayer == 0 {
		e.state = model.GameStateWinP2
	} else {
		e.state = model.GameStateWinP1
	}
	return nil
}

// State returns the current game state.
func (e *Engine) State() model.GameState { return e.state }

// Config returns the engine's validated configuration, with defaults
// filled in.
func (e *Engine) Config() model.GameConfig { return e.cfg }

// Structure returns the engine's immutable hypercube structure.
func (e *Engine) Structure() *hypercube.Structure { return e.structure }

// ActivePlayer returns the index of the player to move next.
func (e *Engine) ActivePlayer() int { return e.activePlayer }

// ActiveMoves returns how many moves the active player has already made
// this turn.
func (e *Engine) ActiveMoves() int { return e.activeMoves }

// Moves returns the move history in play order. Callers must not modify it.
func (e *Engine) Moves() []model.Move { return e.moves }

// MovesPlayed returns how many moves each player has made.
func (e *Engine) MovesPlayed() [2]int { return e.movesPlayed }

// Forfeited reports whether the game ended by forfeit.
func (e *Engine) Forfeited() bool { return e.forfeited }

// CellValue returns the raw encoded board value at the cell.
func (e *Engine) CellValue(cell model.Coord) int {
	return e.board[e.structure.CellIndex(cell)]
}

// Unplayed returns the unplayed cells in flat index order.
func (e *Engine) Unplayed() []model.Coord {
	out := make([]model.Coord, 0, len(e.unplayed))
	for idx := 0; idx < e.structure.Cells(); idx++ {
		if _, ok := e.unplayed[idx]; ok {
			out = append(out, e.structure.CellCoord(idx))
		}
	}
	return out
}

// WinLine returns the completed line once a win is recorded, or nil.
func (e *Engine) WinLine() hypercube.Line {
	if e.winLine < 0 {
		return nil
	}
	return e.structure.Line(e.winLine)
}
