// Package wcerrors defines the error taxonomy shared by the word counter.
//
// Callers match with errors.Is; every returned error wraps exactly one of
// these sentinels together with the underlying cause.
package wcerrors

import "errors"

var (
	// ErrOpen is returned when the input or output path cannot be opened.
	ErrOpen = errors.New("open failed")

	// ErrSeek is returned when the input size cannot be determined.
	ErrSeek = errors.New("seek failed")

	// ErrMap is returned when the input cannot be mapped read-only.
	ErrMap = errors.New("mmap failed")

	// ErrWrite is returned when writing a result line fails.
	ErrWrite = errors.New("write failed")

	// ErrCleanup wraps release failures during teardown. It is logged, never
	// returned from a completed run.
	ErrCleanup = errors.New("cleanup failed")

	// ErrWorkers is returned for a worker count below one.
	ErrWorkers = errors.New("invalid worker count")

	// ErrTask is returned when a map or reduce task fails or panics.
	ErrTask = errors.New("worker task failed")
)
