// Package locktest provides instrumented stand-ins for the real lock
// primitives. Tests use them to observe what the policy layer actually
// does during an acquisition: CountingLocker records how many times it was
// locked and unlocked, and Census tracks how many reader- and writer-mode
// holders are live at once so exclusivity invariants can be checked while
// real goroutines hammer a protected resource.
package locktest

import "sync/atomic"

// CountingLocker implements sync.Locker and counts calls. It performs no
// blocking of its own; it exists to verify how often the layer under test
// acquires and releases, not to provide exclusion.
type CountingLocker struct {
	locks   atomic.Int32
	unlocks atomic.Int32
}

// Lock records an acquisition.
func (c *CountingLocker) Lock() {
	c.locks.Add(1)
}

// Unlock records a release.
func (c *CountingLocker) Unlock() {
	c.unlocks.Add(1)
}

// Locks returns the number of Lock calls observed.
func (c *CountingLocker) Locks() int32 {
	return c.locks.Load()
}

// Unlocks returns the number of Unlock calls observed.
func (c *CountingLocker) Unlocks() int32 {
	return c.unlocks.Load()
}

// Census counts concurrently live reader-mode and writer-mode lock
// holders. Test goroutines call the Enter method right after acquiring a
// guard and the Exit method right before releasing it; every Enter checks
// the reader/writer exclusivity invariant and records a violation if it
// observes a writer coexisting with any other holder.
type Census struct {
	readers    atomic.Int32
	writers    atomic.Int32
	violations atomic.Int32
}

// EnterReader registers a live reader and checks that no writer is live.
func (c *Census) EnterReader() {
	c.readers.Add(1)
	if c.writers.Load() != 0 {
		c.violations.Add(1)
	}
}

// ExitReader unregisters a live reader.
func (c *Census) ExitReader() {
	c.readers.Add(-1)
}

// EnterWriter registers a live writer and checks that it is the only live
// holder of any kind.
func (c *Census) EnterWriter() {
	if c.writers.Add(1) != 1 || c.readers.Load() != 0 {
		c.violations.Add(1)
	}
}

// ExitWriter unregisters a live writer.
func (c *Census) ExitWriter() {
	c.writers.Add(-1)
}

// Violations returns how many exclusivity violations were observed.
func (c *Census) Violations() int32 {
	return c.violations.Load()
}
