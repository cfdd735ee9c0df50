// Package errors defines the sentinel errors of the plumbing layers. The
// analysis engine itself never returns an error; everything here belongs to
// file handling, persistence and transport.
package errors

import "errors"

var (
	// Input errors
	ErrEmptyConfig    = errors.New("configuration text is empty")
	ErrConfigTooLarge = errors.New("configuration exceeds the size limit")

	// Results errors
	ErrRunNotFound   = errors.New("analysis run not found")
	ErrInvalidFormat = errors.New("unsupported report format")
)
