// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

import (
	"errors"
	"fmt"
)

// Sentinel errors for the life package.
var (
	// ErrInvalidConfiguration is returned when a grid or simulation is
	// constructed with a non-positive size.
	ErrInvalidConfiguration = errors.New("life: invalid configuration")

	// ErrIndexOutOfBounds is returned when a cell coordinate lies outside [0, size).
	ErrIndexOutOfBounds = errors.New("life: index out of bounds")

	// ErrInvalidCellState is returned when a cell is set to anything but 0 or 1.
	ErrInvalidCellState = errors.New("life: cell state must be 0 or 1")

	// ErrUnknownStrategy is returned by StrategyByName for unregistered names.
	ErrUnknownStrategy = errors.New("life: unknown update strategy")

	// ErrInvalidPattern is returned by ParsePattern for malformed input.
	ErrInvalidPattern = errors.New("life: invalid pattern")
)

// IndexError reports an out-of-range cell access.
// It matches ErrIndexOutOfBounds with errors.Is.
type IndexError struct {
	Row  int
	Col  int
	Size int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("life: cell (%d, %d) outside %dx%d grid", e.Row, e.Col, e.Size, e.Size)
}

// Unwrap returns ErrIndexOutOfBounds.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
