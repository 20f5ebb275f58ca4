package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrUnknownCube     = errors.New("unknown cube")
	ErrCubeDetached    = errors.New("cube is not on a board")
	ErrInvalidSnapshot = errors.New("invalid board snapshot")

	// Dice errors
	ErrInvalidDieValue = errors.New("die value must be between 0 and 5")

	// Game errors
	ErrGameNotFound = errors.New("game not found")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
