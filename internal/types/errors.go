package types

import "errors"

// Configuration faults. These only arise from defects in literal tables and are
// reported once, when a table is built.
var (
	// ErrDuplicateItag indicates a format table lists the same itag twice.
	ErrDuplicateItag = errors.New("duplicate itag")

	// ErrIncompleteFormat indicates a format entry has no mime type or carries no quality, bitrate or audio bitrate.
	ErrIncompleteFormat = errors.New("incomplete static format")

	// ErrInvalidHeader indicates a header name or value is not syntactically valid.
	ErrInvalidHeader = errors.New("invalid header")
)
