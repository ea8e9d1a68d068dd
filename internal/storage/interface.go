package storage

import (
	"context"

	"github.com/hyperoxo/hyperoxo/internal/model"
)

// Storage defines the interface for session persistence. Sessions store
// the game configuration and move log; the board is reproduced by replay.
type Storage interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	ListSessions(ctx context.Context) ([]model.SessionID, error)
}
