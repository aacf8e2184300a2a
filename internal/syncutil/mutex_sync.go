//go:build !deadlock

// Package syncutil provides the blocking lock primitives the policy layer
// allocates, with optional deadlock detection. By default these are plain
// sync.Mutex and sync.RWMutex with zero overhead. Build with
// -tags=deadlock to swap in github.com/sasha-s/go-deadlock, which reports
// lock-order inversions and suspiciously long waits; useful when debugging
// an adapter that deadlocks through a guard it failed to release.
package syncutil

import "sync"

// Mutex is the exclusive primitive behind the Exclusive policy. Build with
// -tags=deadlock for deadlock detection.
//
//nolint:gocritic // Intentionally embedding sync.Mutex to expose its interface
type Mutex struct {
	sync.Mutex
}

// RWMutex is the shared/exclusive primitive behind the ReaderWriter
// policy. Build with -tags=deadlock for deadlock detection.
//
//nolint:gocritic // Intentionally embedding sync.RWMutex to expose its interface
type RWMutex struct {
	sync.RWMutex
}
