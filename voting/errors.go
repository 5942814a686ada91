// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotAdministrator  = fmt.Errorf("%w: caller is not the owner", ErrUnauthorized)
	ErrNotVoter          = fmt.Errorf("%w: you're not a voter", ErrUnauthorized)
	ErrInvalidPhase      = errors.New("invalid workflow phase")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrAlreadyVoted      = errors.New("you have already voted")
	ErrEmptyProposal     = errors.New("proposal description is empty")
	ErrNotFound          = errors.New("proposal not found")
	ErrInvalidIdentity   = errors.New("identity is empty")
)

// PhaseError reports an operation attempted outside its workflow phase.
// errors.Is(err, ErrInvalidPhase) holds for every PhaseError.
type PhaseError struct {
	Expected Status
	Actual   Status
	Message  string
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s (status %s, requires %s)", e.Message, e.Actual, e.Expected)
}

func (e *PhaseError) Is(target error) bool {
	return target == ErrInvalidPhase
}

func requirePhase(current, expected Status, message string) error {
	if current != expected {
		return &PhaseError{Expected: expected, Actual: current, Message: message}
	}
	return nil
}
