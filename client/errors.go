package client

import (
	"errors"
	"fmt"

	"github.com/famomatic/ytmeta/internal/config"
)

var (
	// ErrInvalidInput indicates malformed input (not a video ID/url).
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfig indicates a Config value failed validation.
	ErrInvalidConfig = config.ErrInvalidConfig
	// ErrUnavailable indicates video is unavailable.
	ErrUnavailable = errors.New("video unavailable")
	// ErrLoginRequired indicates authenticated session is required.
	ErrLoginRequired = errors.New("login required")
	// ErrNoPlayableFormats indicates no usable formats were found.
	ErrNoPlayableFormats = errors.New("no playable formats")
)

// InvalidInputDetailError explains why an input was rejected.
type InvalidInputDetailError struct {
	Input  string
	Reason string
}

func (e *InvalidInputDetailError) Error() string {
	return fmt.Sprintf("%s: %s (%q)", ErrInvalidInput, e.Reason, e.Input)
}

func (e *InvalidInputDetailError) Unwrap() error {
	return ErrInvalidInput
}
