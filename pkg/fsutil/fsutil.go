// Package fsutil provides the file handling behind opening and saving
// documents: snapshots for detecting external changes, atomic writes, and
// sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrModified indicates the file changed on disk since it was read.
	ErrModified = errors.New("file modified on disk")
)

// Snapshot captures the state of a file at a point in time.
type Snapshot struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64

	// Hash is the SHA-256 hash of the file content.
	Hash [32]byte
}

// ReadDocument reads a file as text and returns a snapshot of its state.
func ReadDocument(ctx context.Context, path string) (string, *Snapshot, error) {
	select {
	case <-ctx.Done():
		return "", nil, fmt.Errorf("read document: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return "", nil, classify(path, err)
	}
	if stat.IsDir() {
		return "", nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, classify(path, err)
	}

	return string(content), &Snapshot{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

// Changed reports whether the file differs from the snapshot. Mod time and
// size are compared first; the content hash settles the rest. A deleted file
// counts as changed.
func (s *Snapshot) Changed(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("check modified: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", s.Path, err)
	}

	if stat.ModTime().Equal(s.ModTime) && stat.Size() == s.Size {
		return false, nil
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return sha256.Sum256(content) != s.Hash, nil
}

// SameContent reports whether text hashes to the snapshot's content.
func (s *Snapshot) SameContent(text string) bool {
	return sha256.Sum256([]byte(text)) == s.Hash
}

// SaveOptions controls SaveDocument.
type SaveOptions struct {
	// Backup configures the backup written before overwriting.
	Backup BackupConfig

	// Expected, when set, makes the save fail with ErrModified if the file
	// no longer matches it.
	Expected *Snapshot
}

// SaveDocument writes text to path atomically, after an optional
// modification check and backup, and returns a snapshot of the new state.
func SaveDocument(ctx context.Context, path, text string, opts SaveOptions) (*Snapshot, error) {
	mode := DefaultFileMode
	if opts.Expected != nil {
		changed, err := opts.Expected.Changed(ctx)
		if err != nil {
			return nil, err
		}
		if changed {
			return nil, fmt.Errorf("%w: %s", ErrModified, path)
		}
		mode = opts.Expected.Mode.Perm()
	}

	if _, err := CreateBackup(ctx, path, opts.Backup); err != nil {
		return nil, err
	}

	if err := WriteAtomic(ctx, path, []byte(text), mode); err != nil {
		return nil, err
	}

	_, snapshot, err := ReadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
