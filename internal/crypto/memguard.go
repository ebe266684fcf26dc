//go:build linux || darwin

package crypto

import "golang.org/x/sys/unix"

// LockMemory pins a buffer holding secret material so it cannot be swapped
// to disk. Best effort: callers treat failures (e.g. RLIMIT_MEMLOCK) as
// advisory.
func LockMemory(b []byte) error { return unix.Mlock(b) }

// UnlockMemory releases a buffer pinned by LockMemory.
func UnlockMemory(b []byte) error { return unix.Munlock(b) }
