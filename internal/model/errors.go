package model

import "errors"

// Common errors used across the application
var (
	// Construction errors
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrResourceExhausted    = errors.New("board is too large for available resources")

	// Move errors
	ErrGameOver      = errors.New("the game is over")
	ErrDuplicateMove = errors.New("the cell has already been played")
	ErrUnknownMove   = errors.New("invalid cell specification")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Player errors
	ErrInvalidNames = errors.New("player names must be unique and non-empty")
	ErrInvalidMarks = errors.New("player marks must be unique, non-empty and of equal width")
)
