package config

import "errors"

// Configuration and site-data validation errors.
// Package-level sentinel errors allow callers to use errors.Is() while
// keeping human-readable messages.
var (
	// ErrNoBaseURL is returned when the site origin is empty.
	ErrNoBaseURL = errors.New("no base URL configured")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidFuzzyCutoff is returned when the fuzzy match cutoff falls
	// outside [0,1].
	ErrInvalidFuzzyCutoff = errors.New("invalid fuzzy cutoff: must be in [0,1]")

	// ErrInvalidMaxTables is returned when the per-page table cap is not positive.
	ErrInvalidMaxTables = errors.New("invalid max tables: must be positive")

	// ErrInvalidConcurrency is returned when the verify concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid verify concurrency: must be positive")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrDuplicateLabel is returned when the page directory contains the
	// same label twice. Labels are the directory's unique keys.
	ErrDuplicateLabel = errors.New("duplicate page label in directory")

	// ErrEmptyDirectory is returned when a directory file yields no entries.
	ErrEmptyDirectory = errors.New("page directory contains no entries")
)
