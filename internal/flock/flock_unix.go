//go:build unix

package flock

import "syscall"

// Exclusive places an exclusive lock on fd without blocking. When another
// meridian process already holds the lock on the same document's sidecar
// file, the call fails immediately so the store's acquire loop can poll.
func Exclusive(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_EX|syscall.LOCK_NB)
}

// Unlock releases a lock previously taken with Exclusive.
func Unlock(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_UN)
}
