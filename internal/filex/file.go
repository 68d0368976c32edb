// Package filex contains the filesystem helpers used by the client: locating
// its data directory and reading files the user picks in the REPL.
package filex

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrFileTooLarge is returned by ReadLimited when the file exceeds the limit.
var ErrFileTooLarge = errors.New("file too large")

// EnsureDir creates dir with all parents and returns it unchanged.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// ReadLimited reads the whole file at path, failing with ErrFileTooLarge if
// it holds more than limit bytes. A limit <= 0 disables the check.
func ReadLimited(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if limit <= 0 {
		return io.ReadAll(f)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrFileTooLarge, path, limit)
	}
	return data, nil
}
