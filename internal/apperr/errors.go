// Package apperr holds the sentinel errors shared across zet packages.
package apperr

import "errors"

var (
	// ErrInvalidName is returned when a note name fails validation.
	ErrInvalidName = errors.New("invalid note name")
	// ErrNoInput is returned when standard input closes before a name is read.
	ErrNoInput = errors.New("no note name read from input")
)
