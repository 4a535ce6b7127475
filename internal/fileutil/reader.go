// Package fileutil provides small file-reading helpers shared by the config
// loader.
package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"syscall"
)

// MultiReader implements [io.Reader] and [io.Closer] by reading the contents
// of multiple files in sequence. A directory is expanded in place to the
// files it contains, sorted by name so the read order is deterministic.
type MultiReader struct {
	names []string
	f     *os.File
}

// NewMultiReader returns a new [MultiReader] that reads from the given files.
func NewMultiReader(name ...string) *MultiReader {
	return &MultiReader{names: name}
}

// openNext opens the next pending name, expanding directories into the queue
// until a regular file turns up. It returns io.EOF once the queue is empty.
func (r *MultiReader) openNext() error {
	for len(r.names) > 0 {
		name := r.names[0]
		r.names = r.names[1:]

		f, err := os.Open(name)
		if err != nil {
			return err
		}

		entries, err := f.Readdirnames(-1)
		if errors.Is(err, syscall.ENOTDIR) {
			r.f = f
			return nil
		}
		f.Close()
		if err != nil {
			return err
		}

		sort.Strings(entries)
		for i := range entries {
			entries[i] = filepath.Join(name, entries[i])
		}
		r.names = append(entries, r.names...)
	}
	return io.EOF
}

// Read implements [io.Reader]. Once the end of a file is reached the next
// call opens the following file; io.EOF is returned only after every file
// has been consumed.
func (r *MultiReader) Read(p []byte) (n int, err error) {
	if r.f == nil {
		if err = r.openNext(); err != nil {
			return
		}
	}
	n, err = r.f.Read(p)
	if err == io.EOF {
		if len(r.names) > 0 {
			err = nil
		}
		r.f.Close()
		r.f = nil
	}
	return
}

// Close implements [io.Closer]. It closes the currently open file.
func (r *MultiReader) Close() (err error) {
	if r.f != nil {
		err = r.f.Close()
	}
	return
}
