// Package session manages persistent game sessions: each session pairs a
// stored move log with a live engine, rebuilt by deterministic replay when
// a session is loaded from storage.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hyperoxo/hyperoxo/internal/dependencies/clock"
	"github.com/hyperoxo/hyperoxo/internal/dependencies/random"
	"github.com/hyperoxo/hyperoxo/internal/game"
	"github.com/hyperoxo/hyperoxo/internal/hypercube"
	"github.com/hyperoxo/hyperoxo/internal/model"
	"github.com/hyperoxo/hyperoxo/internal/storage"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const idLength = 12

// engineEntry pairs a cached engine with the lock that serializes access
// to it. The engine is single-threaded by contract, so every read or
// mutation, and the persist that follows a mutation, happens under this
// lock.
type engineEntry struct {
	mu     sync.Mutex
	engine *game.Engine
}

// Controller owns the engines for active sessions and keeps their
// persisted records in sync after every operation. Operations on distinct
// sessions run concurrently; operations on the same session are
// serialized.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// mu guards the cache map only; each entry carries its own lock
	mu      sync.Mutex
	engines map[model.SessionID]*engineEntry
}

// NewController creates a session controller
func NewController(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: store,
		clock:   clk,
		random:  rnd,
		logger:  logger,
		engines: make(map[model.SessionID]*engineEntry),
	}
}

// EngineView is a snapshot of a session's live engine, taken under the
// session lock.
type EngineView struct {
	StateText    string
	ActivePlayer int
	WinLine      hypercube.Line
}

// Create validates the configuration, builds the engine and persists a new
// session. Player names default to "Player 1"/"Player 2" when empty.
func (c *Controller) Create(ctx context.Context, cfg model.GameConfig, players [2]string) (*model.Session, error) {
	engine, err := game.NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	if players[0] != "" || players[1] != "" {
		if err := engine.SetNames(players[0], players[1]); err != nil {
			return nil, err
		}
	}

	now := c.clock.Now()
	session := &model.Session{
		ID:        model.SessionID(c.random.String(idLength, idAlphabet)),
		Config:    engine.Config(),
		Players:   engine.Names(),
		State:     model.GameStateInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.mu.Lock()
	c.engines[session.ID] = &engineEntry{engine: engine}
	c.mu.Unlock()

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int("dimensions", cfg.Dimensions),
		slog.Int("size", cfg.Size),
		slog.Bool("misere", cfg.Misere),
	)
	return session, nil
}

// Get returns the stored session record.
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// List returns all stored session IDs.
func (c *Controller) List(ctx context.Context) ([]model.SessionID, error) {
	return c.storage.ListSessions(ctx)
}

// entry returns the cache entry for a session, rebuilding the engine by
// replaying the stored move log if this process has not touched the
// session yet.
func (c *Controller) entry(ctx context.Context, id model.SessionID) (*engineEntry, error) {
	c.mu.Lock()
	entry, ok := c.engines[id]
	c.mu.Unlock()
	if ok {
		return entry, nil
	}

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	engine, err := c.replay(session)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// a concurrent request may have replayed the same session already; keep
	// the first entry so there is exactly one engine per session
	if existing, ok := c.engines[id]; ok {
		return existing, nil
	}
	entry = &engineEntry{engine: engine}
	c.engines[id] = entry
	return entry, nil
}

// Engine returns the live engine for a session. The engine itself is not
// synchronized; this is for single-threaded callers such as tests.
// Concurrent callers use View or the mutating operations instead.
func (c *Controller) Engine(ctx context.Context, id model.SessionID) (*game.Engine, error) {
	entry, err := c.entry(ctx, id)
	if err != nil {
		return nil, err
	}
	return entry.engine, nil
}

// View returns a snapshot of the session's engine state.
func (c *Controller) View(ctx context.Context, id model.SessionID) (EngineView, error) {
	entry, err := c.entry(ctx, id)
	if err != nil {
		return EngineView{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return EngineView{
		StateText:    entry.engine.StateString(),
		ActivePlayer: entry.engine.ActivePlayer(),
		WinLine:      entry.engine.WinLine(),
	}, nil
}

// replay rebuilds an engine from a session record. The stored log is
// trusted; a replay failure means the record was corrupted.
func (c *Controller) replay(session *model.Session) (*game.Engine, error) {
	engine, err := game.NewEngine(session.Config)
	if err != nil {
		return nil, err
	}
	if err := engine.SetNames(session.Players[0], session.Players[1]); err != nil {
		return nil, err
	}
	for _, m := range session.Moves {
		if err := engine.Move(m.Cell); err != nil {
			return nil, fmt.Errorf("replaying move %v: %w", m.Cell, err)
		}
	}
	if session.Forfeited {
		if err := engine.Forfeit(); err != nil {
			return nil, fmt.Errorf("replaying forfeit: %w", err)
		}
	}
	return engine, nil
}

// Move plays a cell given as a move string (1-based grammar) and persists
// the updated session.
func (c *Controller) Move(ctx context.Context, id model.SessionID, cell string, offset int) (*model.Session, error) {
	entry, err := c.entry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := entry.engine.MoveString(cell, offset); err != nil {
		return nil, err
	}
	session, err := c.persist(ctx, id, entry.engine)
	if err != nil {
		return nil, err
	}
	c.logger.Info("move played",
		slog.String("session_id", string(id)),
		slog.String("cell", cell),
		slog.String("state", string(session.State)),
	)
	return session, nil
}

// Undo takes back the last move (or forfeit) and persists the session.
func (c *Controller) Undo(ctx context.Context, id model.SessionID) (*model.Session, error) {
	entry, err := c.entry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.engine.Undo(0)
	return c.persist(ctx, id, entry.engine)
}

// Forfeit ends the game in the opponent's favor and persists the session.
func (c *Controller) Forfeit(ctx context.Context, id model.SessionID) (*model.Session, error) {
	entry, err := c.entry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := entry.engine.Forfeit(); err != nil {
		return nil, err
	}
	return c.persist(ctx, id, entry.engine)
}

// Reset clears the board for a rematch on the same structure and persists
// the session.
func (c *Controller) Reset(ctx context.Context, id model.SessionID) (*model.Session, error) {
	entry, err := c.entry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.engine.Reset()
	return c.persist(ctx, id, entry.engine)
}

// Delete removes the session from storage and drops its engine. It waits
// for any in-flight operation on the session so a concurrent persist
// cannot resurrect the deleted record.
func (c *Controller) Delete(ctx context.Context, id model.SessionID) error {
	c.mu.Lock()
	entry, ok := c.engines[id]
	c.mu.Unlock()
	if ok {
		entry.mu.Lock()
		defer entry.mu.Unlock()
	}

	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	delete(c.engines, id)
	c.mu.Unlock()
	return nil
}

// persist writes the engine's current state back to the session record.
// Callers hold the session's entry lock.
func (c *Controller) persist(ctx context.Context, id model.SessionID, engine *game.Engine) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Moves = append([]model.Move(nil), engine.Moves()...)
	session.State = engine.State()
	session.Forfeited = engine.Forfeited()
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return session, nil
}
