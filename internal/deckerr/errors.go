// Package deckerr defines the error classes shared by the deck pipeline.
// Callers wrap these sentinels with %w and path context; errors.Is identifies the class.
package deckerr

import "errors"

var (
	// ErrInputNotFound reports a missing or unreadable input file.
	ErrInputNotFound = errors.New("input not found")
	// ErrFormat reports an input that exists but cannot be parsed.
	ErrFormat = errors.New("invalid format")
	// ErrInternalConsistency reports a violated postcondition inside the pipeline.
	ErrInternalConsistency = errors.New("internal consistency check failed")
	// ErrExtraction reports a workbook that yielded no requirement rows.
	ErrExtraction = errors.New("no requirements extracted")
	// ErrUnsupportedSlideType reports a slide spec whose type tag is unknown.
	ErrUnsupportedSlideType = errors.New("unsupported slide type")
)
