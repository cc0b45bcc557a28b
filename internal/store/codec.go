// Package store persists entity collections as JSON documents on disk.
// Each entity type lives in a single document mapping id to record, written
// atomically under an exclusive file lock so a crash mid-write never leaves
// a torn file behind.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/meridianapp/meridian/internal/errors"
	"github.com/meridianapp/meridian/internal/flock"
)

// LockTimeout is the maximum duration to wait for acquiring a file lock.
const LockTimeout = 5 * time.Second

// Directory and file permission constants.
const (
	dirPerm  = 0o750 // Secure directory permissions
	filePerm = 0o600 // Secure file permissions
)

// LoadDocument reads a JSON document of id -> record into a typed
// collection. A missing file yields an empty collection. A document whose
// top-level structure fails to parse also yields an empty collection with a
// logged warning, so a damaged file never blocks startup. Individual
// records that fail to decode are logged and skipped while the rest load.
func LoadDocument[T any](path string, log zerolog.Logger) (map[string]*T, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path is constructed internally
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*T{}, nil
		}
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err = json.Unmarshal(data, &raw); err != nil {
		log.Warn().
			Str("path", path).
			Err(err).
			Msg("document is malformed, starting with an empty collection")
		return map[string]*T{}, nil
	}

	out := make(map[string]*T, len(raw))
	for id, rec := range raw {
		entity := new(T)
		if err = json.Unmarshal(rec, entity); err != nil {
			log.Warn().
				Str("path", path).
				Str("record_id", id).
				Err(fmt.Errorf("%w: %w", errors.ErrCorruptRecord, err)).
				Msg("skipping corrupt record")
			continue
		}
		out[id] = entity
	}
	return out, nil
}

// SaveDocument writes a typed collection as an indented JSON document,
// replacing the target file atomically while holding an exclusive lock.
func SaveDocument[T any](ctx context.Context, path string, entities map[string]*T) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	lockFile, err := acquireLock(ctx, path+".lock")
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", path, err)
	}
	defer func() { _ = releaseLock(lockFile) }()

	data, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", path, err)
	}

	if err = atomicWrite(path, data); err != nil {
		return fmt.Errorf("failed to save document %s: %w", path, err)
	}
	return nil
}

// acquireLock opens the lock file and polls for an exclusive lock until
// LockTimeout expires or the context is canceled.
func acquireLock(ctx context.Context, lockPath string) (*os.File, error) {
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, filePerm) //#nosec G302,G304 -- lock file needs write access, path is constructed internally
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	deadline := time.Now().Add(LockTimeout)
	for {
		select {
		case <-ctx.Done():
			_ = f.Close()
			return nil, ctx.Err()
		default:
		}

		if err = flock.Exclusive(f.Fd()); err == nil {
			return f, nil
		}

		if time.Now().After(deadline) {
			_ = f.Close()
			return nil, fmt.Errorf("failed to acquire lock: %w", errors.ErrLockTimeout)
		}

		time.Sleep(50 * time.Millisecond)
	}
}

// releaseLock releases a file lock and closes the lock file.
func releaseLock(f *os.File) error {
	if f == nil {
		return nil
	}
	if err := flock.Unlock(f.Fd()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return f.Close()
}

// atomicWrite writes data to path via a temp file, fsync and rename so
// readers never observe a partially written document.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err = f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err = f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}
