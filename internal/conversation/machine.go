package conversation

import (
	"context"
	"errors"
	"log/slog"
)

// ErrInvalidTransition indicates that a requested wizard transition is not
// allowed.
var ErrInvalidTransition = errors.New("invalid wizard transition")

var transitionRecorder = func(from, to string) {}

// RegisterTransitionRecorder allows external packages to observe wizard
// transitions, e.g. for metrics.
func RegisterTransitionRecorder(recorder func(from, to string)) {
	if recorder == nil {
		transitionRecorder = func(string, string) {}
		return
	}

	transitionRecorder = recorder
}

// Machine drives the price-entry wizard over a Storage backend.
//
// Concurrent events for the same user are not guarded: a human admin drives
// one conversation at a time, so the race is accepted rather than locked
// away.
type Machine struct {
	storage Storage
	log     *slog.Logger
}

// NewMachine creates a wizard controller using the provided storage backend.
func NewMachine(storage Storage, log *slog.Logger) *Machine {
	if log == nil {
		log = slog.Default()
	}

	return &Machine{
		storage: storage,
		log:     log,
	}
}

// Get proxies to the underlying storage implementation.
func (m *Machine) Get(ctx context.Context, userID int64) (*Entry, error) {
	return m.storage.Get(ctx, userID)
}

// Step returns the user's current wizard step, StepIdle when no entry exists.
func (m *Machine) Step(ctx context.Context, userID int64) (Step, error) {
	entry, err := m.storage.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return StepIdle, nil
		}
		return StepIdle, err
	}

	return entry.Step, nil
}

// Begin starts a fresh wizard at the buy-price step, replacing any entry the
// user may have abandoned mid-flow.
func (m *Machine) Begin(ctx context.Context, userID int64) (*Entry, error) {
	current, err := m.Step(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		UserID: userID,
		Step:   StepBuyPrice,
	}

	if err := m.storage.Set(ctx, userID, entry); err != nil {
		return nil, err
	}

	transitionRecorder(string(current), string(StepBuyPrice))
	return entry, nil
}

// Advance moves the entry to the next step and persists it. The entry's
// price and preview fields must already carry the values required by the
// target step.
func (m *Machine) Advance(ctx context.Context, entry *Entry, next Step) error {
	if entry == nil {
		return ErrInvalidTransition
	}

	if !IsTransitionAllowed(entry.Step, next) {
		m.log.Warn("invalid wizard transition", "user_id", entry.UserID, "from", entry.Step, "to", next)
		return ErrInvalidTransition
	}

	transitionRecorder(string(entry.Step), string(next))
	entry.Step = next

	return m.storage.Set(ctx, entry.UserID, entry)
}

// Clear removes the user's entry, returning them to idle. Clearing an idle
// user is a no-op.
func (m *Machine) Clear(ctx context.Context, userID int64) error {
	current, err := m.Step(ctx, userID)
	if err != nil {
		return err
	}

	if err := m.storage.Clear(ctx, userID); err != nil {
		return err
	}

	if current != StepIdle {
		transitionRecorder(string(current), string(StepIdle))
	}

	return nil
}
