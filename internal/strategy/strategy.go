// Package strategy provides pluggable move selection for automated players.
// Strategies drive the engine themselves: Move chooses a cell and plays it
// through the engine's Move.
package strategy

import (
	"sort"

	"github.com/hyperoxo/hyperoxo/internal/dependencies/random"
	"github.com/hyperoxo/hyperoxo/internal/game"
	"github.com/hyperoxo/hyperoxo/internal/model"
)

// Strategy selects and plays moves for one player.
type Strategy interface {
	// Reset re-arms internal state for a new game
	Reset()
	// Move chooses the next move given the opponent's previous cell (nil on
	// the opening move), plays it on the engine and returns the cell
	// played. forfeit is true if the strategy gives up instead of moving.
	Move(prev model.Coord) (cell model.Coord, forfeit bool, err error)
	// Undo notifies the strategy that the last move was taken back
	Undo()
}

// Constructor builds a strategy bound to an engine.
type Constructor func(e *game.Engine, rnd random.Random) Strategy

// registry is the static table of selectable strategies. Interactive play
// is handled by the CLI, not registered here.
var registry = map[string]Constructor{
	"random":    NewRandom,
	"heuristic": NewHeuristic,
}

// New builds the named strategy, or returns false if the name is unknown.
func New(name string, e *game.Engine, rnd random.Random) (Strategy, bool) {
	ctor, ok := registry[name]
	if !ok {
		return nil, false
	}
	return ctor(e, rnd), true
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
