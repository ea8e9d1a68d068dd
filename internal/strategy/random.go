package strategy

import (
	"github.com/hyperoxo/hyperoxo/internal/dependencies/random"
	"github.com/hyperoxo/hyperoxo/internal/game"
	"github.com/hyperoxo/hyperoxo/internal/model"
)

// Random plays a uniformly random unplayed cell.
type Random struct {
	engine *game.Engine
	random random.Random
}

// NewRandom creates a Random strategy.
func NewRandom(e *game.Engine, rnd random.Random) Strategy {
	return &Random{engine: e, random: rnd}
}

// Reset is a no-op; Random keeps no state between moves.
func (s *Random) Reset() {}

// Move plays a random unplayed cell.
func (s *Random) Move(prev model.Coord) (model.Coord, bool, error) {
	unplayed := s.engine.Unplayed()
	if len(unplayed) == 0 {
		return nil, true, nil
	}
	cell := unplayed[s.random.Intn(len(unplayed))]
	if err := s.engine.Move(cell); err != nil {
		return nil, false, err
	}
	return cell, false, nil
}

// Undo is a no-op.
func (s *Random) Undo() {}
