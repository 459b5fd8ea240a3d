// Package mapfile exposes a file as a read-only, privately mapped byte slice.
package mapfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/andreyflyagin/wordcounter/internal/wcerrors"
)

// File owns an open input file and its read-only mapping. The slice returned
// by Bytes is shared by every reader and must never be written to.
type File struct {
	f    *os.File
	data []byte
	size int
}

// Open opens path read-only, probes its size and maps the whole file.
// On failure everything acquired so far is released before returning.
func Open(path string) (*File, error) {
	m, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	if err := m.Map(); err != nil {
		return nil, err
	}
	return m, nil
}

// OpenFile opens path read-only without mapping it. Call Map before Bytes.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", wcerrors.ErrOpen, path, err)
	}
	return &File{f: f}, nil
}

// Map probes the size of the open file and maps all of it. If it fails the
// File is closed, so the caller must not use it again.
func (m *File) Map() error {
	path := m.f.Name()

	size, err := probeSize(m.f)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %s: %w", wcerrors.ErrSeek, path, err), m.Close())
	}
	if int64(int(size)) != size {
		return errors.Join(fmt.Errorf("%w: %s: %d bytes exceeds address space", wcerrors.ErrMap, path, size), m.Close())
	}
	m.size = int(size)

	// mmap rejects zero-length mappings; an empty file is an empty buffer.
	if m.size == 0 {
		return nil
	}

	// Best-effort kernel hints for a one-shot full read.
	_ = unix.Fadvise(int(m.f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)

	data, err := unix.Mmap(int(m.f.Fd()), 0, m.size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %s: %w", wcerrors.ErrMap, path, err), m.Close())
	}
	m.data = data
	_ = unix.Madvise(m.data, unix.MADV_WILLNEED)

	return nil
}

// probeSize finds the file length by seeking to the end and back.
func probeSize(f *os.File) (int64, error) {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}

// Bytes returns the mapped contents. It is nil for an empty file.
func (m *File) Bytes() []byte { return m.data }

// Len returns the size of the mapped file in bytes.
func (m *File) Len() int { return m.size }

// Close closes the file and then unmaps it. Both steps always run; their
// failures are joined and wrapped in ErrCleanup. Close is idempotent.
func (m *File) Close() error {
	var errs []error

	// The mapping stays valid after the descriptor is closed.
	if m.f != nil {
		if err := m.f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%w: close input: %w", wcerrors.ErrCleanup, err))
		}
		m.f = nil
	}

	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			errs = append(errs, fmt.Errorf("%w: munmap input: %w", wcerrors.ErrCleanup, err))
		}
		m.data = nil
	}

	return errors.Join(errs...)
}
