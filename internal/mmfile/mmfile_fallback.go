//go:build !unix && !windows

// Package mmfile provides platform-specific helpers for memory-mapping
// files backing borrowing buffers.
package mmfile

import "os"

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}

// MapRW reads the entire file; cleanup writes the buffer back so edits
// survive, approximating a shared mapping.
func MapRW(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	cleanup := func() error {
		return os.WriteFile(path, data, 0o644)
	}
	return data, cleanup, nil
}

// Sync is a no-op without a real mapping; cleanup persists the bytes.
func Sync(_ []byte) error {
	return nil
}
