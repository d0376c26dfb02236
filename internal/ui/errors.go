package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrDepthExceeded means a push would grow the stack past its bound.
	// The device has no recovery for this; Push panics with it.
	ErrDepthExceeded = errors.New("navigation stack depth exceeded")

	// ErrNilView means a factory returned no view.
	ErrNilView = errors.New("factory returned nil view")

	// ErrUnknownScreen means a menu action named a screen nobody registered.
	ErrUnknownScreen = errors.New("unknown screen")

	// ErrNoRouter means a screen action was opened on a stack without a router.
	ErrNoRouter = errors.New("no router configured")
)

// StackError is a fatal navigation stack failure.
type StackError struct {
	Op    string // "push", "replace"
	Depth int    // stack depth when the operation failed
	Err   error
}

func (e *StackError) Error() string {
	return fmt.Sprintf("navstack: %s at depth %d: %v", e.Op, e.Depth, e.Err)
}

func (e *StackError) Unwrap() error {
	return e.Err
}
