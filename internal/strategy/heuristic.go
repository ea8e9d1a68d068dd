package strategy

import (
	"github.com/hyperoxo/hyperoxo/internal/dependencies/random"
	"github.com/hyperoxo/hyperoxo/internal/game"
	"github.com/hyperoxo/hyperoxo/internal/model"
)

// Cells that immediately complete a line (or stop the opponent completing
// one next move) dominate any accumulation of partial lines.
const (
	completeWeight = 1 << 20
	blockWeight    = 1 << 16

	// partialShiftCap bounds the per-line partial score: boards big enough
	// for a line to carry more marks than this allows have at most a few
	// dozen lines per scope, so the summed score stays within int range
	partialShiftCap = 55
)

// Heuristic scores every unplayed cell by the occupancy of the lines in its
// scope and plays the best one. Ties break toward the lowest cell index, so
// play is deterministic for a given board.
type Heuristic struct {
	engine *game.Engine
}

// NewHeuristic creates a Heuristic strategy. The random source is unused;
// the signature matches the registry's Constructor.
func NewHeuristic(e *game.Engine, _ random.Random) Strategy {
	return &Heuristic{engine: e}
}

// Reset is a no-op; Heuristic rescores the board every move.
func (s *Heuristic) Reset() {}

// Move plays the highest scoring unplayed cell.
func (s *Heuristic) Move(prev model.Coord) (model.Coord, bool, error) {
	unplayed := s.engine.Unplayed()
	if len(unplayed) == 0 {
		return nil, true, nil
	}

	best := unplayed[0]
	bestScore := s.scoreCell(best)
	for _, cell := range unplayed[1:] {
		if score := s.scoreCell(cell); score > bestScore {
			best, bestScore = cell, score
		}
	}

	if err := s.engine.Move(best); err != nil {
		return nil, false, err
	}
	return best, false, nil
}

// Undo is a no-op.
func (s *Heuristic) Undo() {}

func (s *Heuristic) scoreCell(cell model.Coord) int {
	me := s.engine.ActivePlayer()
	opp := 1 - me
	n := s.engine.Config().Size
	misere := s.engine.Config().Misere

	score := 0
	for _, id := range s.engine.Structure().Scope(cell) {
		ls := s.engine.LineState(id)
		switch {
		case ls.Marks[me] > 0 && ls.Marks[opp] > 0:
			// dead line, nobody can complete it
		case ls.Marks[me] == n-1:
			if misere {
				score -= completeWeight
			} else {
				score += completeWeight
			}
		case ls.Marks[opp] == n-1 && !misere:
			score += blockWeight
		default:
			score += 1 << min(2*ls.Marks[me], partialShiftCap)
			score += 1 << min(2*ls.Marks[opp], partialShiftCap)
		}
	}
	return score
}
