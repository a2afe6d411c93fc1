package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrGameNotFound indicates that game was not found for this user
	ErrGameNotFound = errors.New("game not found")

	// ErrGameFinalized indicates that game is already settled and
	// rejects further progress updates
	ErrGameFinalized = errors.New("game already finalized")
)
