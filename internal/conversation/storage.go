package conversation

import (
	"context"
	"errors"
)

// ErrEntryNotFound indicates that a user has no active price entry.
var ErrEntryNotFound = errors.New("conversation entry not found")

// Storage defines the persistence contract for wizard entries.
type Storage interface {
	// Get returns the active entry for the specified user, or
	// ErrEntryNotFound when the user is idle.
	Get(ctx context.Context, userID int64) (*Entry, error)
	// Set saves the provided entry for the specified user.
	Set(ctx context.Context, userID int64, entry *Entry) error
	// Clear removes the entry for the specified user. Clearing an absent
	// entry is not an error.
	Clear(ctx context.Context, userID int64) error
}
