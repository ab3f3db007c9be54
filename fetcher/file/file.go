package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrNotRegularFile is returned for sockets, devices and other special files.
var ErrNotRegularFile = errors.New("path is not a regular file")

// Fetcher holds the contents of one configuration file.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor that reads the file at fpath. The file is read
// when the constructor runs, not when NewFetcher is called.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		if !stat.Mode().IsRegular() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrNotRegularFile)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- reading caller-selected config files is the purpose
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Read returns the contents of the file at fpath.
func Read(fpath string) ([]byte, error) {
	fetcher, err := NewFetcher(fpath)()
	if err != nil {
		return nil, err
	}

	return fetcher.data, nil
}

// Path returns the cleaned path the Fetcher read.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the file contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
