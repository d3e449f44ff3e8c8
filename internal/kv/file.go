package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileStore keeps each key in its own JSON file inside a directory.
// Writes go through a temp file and an atomic rename while holding an
// exclusive flock on a sibling lock file.
type FileStore struct {
	dir    string
	closed bool
}

// OpenFile returns a FileStore rooted at dir, creating it if needed.
func OpenFile(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the store's files.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) valuePath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) lockPath(key string) string {
	return filepath.Join(s.dir, key+".lock")
}

// Get reads the value for key under a shared lock.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	if s.closed {
		return nil, false, ErrClosed
	}
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	var (
		data []byte
		ok   bool
	)
	err := s.withLock(key, syscall.LOCK_SH, func() error {
		var err error
		data, err = os.ReadFile(s.valuePath(key))
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read value file: %w", err)
		}
		ok = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, ok, nil
}

// Set writes the value for key atomically under an exclusive lock.
func (s *FileStore) Set(key string, value []byte) error {
	if s.closed {
		return ErrClosed
	}
	if err := validateKey(key); err != nil {
		return err
	}

	return s.withLock(key, syscall.LOCK_EX, func() error {
		return writeFileAtomic(s.dir, s.valuePath(key), value)
	})
}

// Close marks the store closed. Files are left in place.
func (s *FileStore) Close() error {
	s.closed = true
	return nil
}

func (s *FileStore) withLock(key string, how int, fn func() error) error {
	lockFile, err := os.OpenFile(s.lockPath(key), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), how); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}

func writeFileAtomic(dir, path string, data []byte) error {
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
