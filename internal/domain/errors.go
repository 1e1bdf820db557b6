package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgEmailTaken         = "email already registered"
	ErrMsgInvalidCredentials = "invalid email or password"
	ErrMsgNotAuthenticated   = "not authenticated"

	// Profile errors
	ErrMsgProfileNotFound = "profile not found"
	ErrMsgAvatarNotFound  = "avatar not set"

	// Rant errors
	ErrMsgRantNotFound = "rant not found"

	// Memory errors
	ErrMsgMemoryNotFound = "memory not found"

	// Wishlist errors
	ErrMsgWishlistItemNotFound = "wishlist item not found"

	// Ownership errors
	ErrMsgNotOwner = "not the owner"

	// Daily song errors
	ErrMsgAlreadyWon       = "song of the day already chosen"
	ErrMsgAlreadySubmitted = "already submitted today"

	// Store errors
	ErrMsgStoreUnavailable = "store unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrEmailTaken         = errors.New(ErrMsgEmailTaken)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrNotAuthenticated   = errors.New(ErrMsgNotAuthenticated)

	// Profile errors
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)
	ErrAvatarNotFound  = errors.New(ErrMsgAvatarNotFound)

	// Rant errors
	ErrRantNotFound = errors.New(ErrMsgRantNotFound)

	// Memory errors
	ErrMemoryNotFound = errors.New(ErrMsgMemoryNotFound)

	// Wishlist errors
	ErrWishlistItemNotFound = errors.New(ErrMsgWishlistItemNotFound)

	// Ownership errors
	ErrNotOwner = errors.New(ErrMsgNotOwner)

	// Daily song errors
	ErrAlreadyWon       = errors.New(ErrMsgAlreadyWon)
	ErrAlreadySubmitted = errors.New(ErrMsgAlreadySubmitted)

	// Store errors
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// AlreadyWonError reports a submission that lost the winner slot. It carries
// the winning submission so callers can tell the user who won and with what.
type AlreadyWonError struct {
	Winner *Submission
}

func (e *AlreadyWonError) Error() string {
	if e.Winner == nil {
		return ErrMsgAlreadyWon
	}
	return fmt.Sprintf("%s: %s picked %q by %s", ErrMsgAlreadyWon,
		e.Winner.DisplayName, e.Winner.Song.TrackName, e.Winner.Song.ArtistName)
}

// Unwrap lets errors.Is(err, ErrAlreadyWon) match
func (e *AlreadyWonError) Unwrap() error {
	return ErrAlreadyWon
}
