//go:build deadlock

// Package syncutil provides the blocking lock primitives the policy layer
// allocates. This file is compiled when building with -tags=deadlock; every
// Exclusive and ReaderWriter lock in the process then detects lock-order
// inversions and long waits via github.com/sasha-s/go-deadlock.
package syncutil

import deadlock "github.com/sasha-s/go-deadlock"

// Mutex is the exclusive primitive behind the Exclusive policy, with
// deadlock detection.
type Mutex struct {
	deadlock.Mutex
}

// RWMutex is the shared/exclusive primitive behind the ReaderWriter
// policy, with deadlock detection.
type RWMutex struct {
	deadlock.RWMutex
}
