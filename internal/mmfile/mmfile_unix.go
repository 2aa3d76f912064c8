//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Map maps the file at path into memory read-only and returns its
// contents.
func Map(path string) ([]byte, func() error, error) {
	return mapFile(path, os.O_RDONLY, syscall.PROT_READ)
}

// MapRW maps the file at path into memory read-write with a shared
// mapping: stores through the returned slice reach the file.
func MapRW(path string) ([]byte, func() error, error) {
	return mapFile(path, os.O_RDWR, syscall.PROT_READ|syscall.PROT_WRITE)
}

// Sync flushes a writable shared mapping to its backing file.
func Sync(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Msync(data, unix.MS_SYNC)
}

func mapFile(path string, flag, prot int) ([]byte, func() error, error) {
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), prot, syscall.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := syscall.Munmap(data)
		if errors.Is(err, syscall.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
