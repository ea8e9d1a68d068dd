package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress"
	GameStateWinP1      GameState = "win_p1" // player index 0 won
	GameStateWinP2      GameState = "win_p2" // player index 1 won
	GameStateTie        GameState = "tie"
)

// Terminal returns true for states the game cannot move on from without
// an undo or reset.
func (s GameState) Terminal() bool {
	return s != GameStateInProgress
}

// GameConfig holds the construction parameters of a game
type GameConfig struct {
	// Dimensions is the number of dimensions of the board (d >= 1)
	Dimensions int `json:"dimensions"`
	// Size is the number of cells per dimension (n >= 1)
	Size int `json:"size"`
	// MovesPerTurn is how many consecutive moves each player makes (default 1)
	MovesPerTurn int `json:"moves_per_turn"`
	// Misere inverts the outcome: completing a line loses the game
	Misere bool `json:"misere"`
	// MoveBase is the board encoding offset; must exceed Size^Dimensions.
	// Zero selects a valid default.
	MoveBase int `json:"move_base"`
}

// Session is the persisted record of a game. The board itself is not
// stored; it is reproduced by replaying Moves against a fresh engine.
type Session struct {
	ID        SessionID  `json:"id"`
	Config    GameConfig `json:"config"`
	Players   [2]string  `json:"players"`
	Moves     []Move     `json:"moves"`
	Forfeited bool       `json:"forfeited"`
	State     GameState  `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
