//go:build windows

package flock

import "golang.org/x/sys/windows"

// LockFileEx locks a byte range rather than a whole file. Locking the
// first byte of the sidecar .lock file is enough to serialize writers of
// the document it guards.
// See: https://learn.microsoft.com/en-us/windows/win32/api/fileapi/nf-fileapi-lockfileex
const (
	lockReserved  = 0 // must be zero
	lockBytesLow  = 1 // lock a single byte
	lockBytesHigh = 0
)

// Exclusive places an exclusive lock on fd without blocking. When another
// meridian process already holds the lock on the same document's sidecar
// file, the call fails immediately so the store's acquire loop can poll.
func Exclusive(fd uintptr) error {
	return windows.LockFileEx(
		windows.Handle(fd),
		windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY,
		lockReserved,
		lockBytesLow,
		lockBytesHigh,
		&windows.Overlapped{},
	)
}

// Unlock releases a lock previously taken with Exclusive.
func Unlock(fd uintptr) error {
	return windows.UnlockFileEx(
		windows.Handle(fd),
		lockReserved,
		lockBytesLow,
		lockBytesHigh,
		&windows.Overlapped{},
	)
}
