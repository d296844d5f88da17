package domain

import (
	"errors"
	"sync"
)

// TransitionPhase is the lifecycle position of an optimistic autopilot toggle.
type TransitionPhase string

const (
	PhaseStable      TransitionPhase = "STABLE"
	PhaseProvisional TransitionPhase = "PROVISIONAL"
	PhaseConfirmed   TransitionPhase = "CONFIRMED"
	PhaseReverted    TransitionPhase = "REVERTED"
)

var (
	ErrTransitionNotStarted = errors.New("autopilot transition not started")
	ErrTransitionStarted    = errors.New("autopilot transition already started")
	ErrTransitionSettled    = errors.New("autopilot transition already settled")
)

// AutopilotTransition tracks one optimistic autopilot toggle. The store holds
// the target value while the transition is provisional; Revert restores the
// previous value, Confirm keeps the target.
type AutopilotTransition struct {
	mu       sync.Mutex
	store    *Store
	previous bool
	phase    TransitionPhase
}

// NewAutopilotTransition returns a stable transition over store. Nothing
// changes until Begin.
func NewAutopilotTransition(store *Store) *AutopilotTransition {
	return &AutopilotTransition{store: store, phase: PhaseStable}
}

// BeginAutopilotToggle flips the autopilot flag in store and returns the
// provisional transition.
func BeginAutopilotToggle(store *Store) *AutopilotTransition {
	t := NewAutopilotTransition(store)
	_ = t.Begin()
	return t
}

// Begin flips the flag in the store and moves the transition to provisional.
func (t *AutopilotTransition) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != PhaseStable {
		return ErrTransitionStarted
	}
	t.previous = t.store.FlipAutopilot()
	t.phase = PhaseProvisional
	return nil
}

// Previous is the value held before the toggle. Meaningful after Begin.
func (t *AutopilotTransition) Previous() bool {
	return t.previous
}

// Target is the optimistic value written into the store.
func (t *AutopilotTransition) Target() bool {
	return !t.previous
}

func (t *AutopilotTransition) Phase() TransitionPhase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Confirm settles the transition keeping the target value.
func (t *AutopilotTransition) Confirm() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.settleable(); err != nil {
		return err
	}
	t.phase = PhaseConfirmed
	return nil
}

// Revert settles the transition by writing the previous value back.
func (t *AutopilotTransition) Revert() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.settleable(); err != nil {
		return err
	}
	t.store.SetAutopilot(t.previous)
	t.phase = PhaseReverted
	return nil
}

func (t *AutopilotTransition) settleable() error {
	switch t.phase {
	case PhaseProvisional:
		return nil
	case PhaseStable:
		return ErrTransitionNotStarted
	default:
		return ErrTransitionSettled
	}
}
