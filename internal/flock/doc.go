// Package flock provides cross-platform file locking utilities.
//
// The document store locks each JSON document before reading or writing so
// that a second meridian process touching the same data directory cannot
// interleave writes. Locks are exclusive and non-blocking; callers retry
// with a timeout.
//
// Usage:
//
//	file, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
//	if err := flock.Exclusive(file.Fd()); err != nil {
//	    // Lock not acquired - file is in use
//	}
//	defer flock.Unlock(file.Fd())
package flock
