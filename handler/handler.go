package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-conf/tree"
)

// FilePerm is the permission used for written configuration files.
const FilePerm = 0o644

// Handler translates between a configuration file format and tree values.
type Handler interface {
	// Parse reads the file at path. Malformed content yields a *ParseError.
	Parse(path string) (tree.Value, error)
	// Write stores value at path. Handlers that cannot write return ErrUnsupportedFormat.
	Write(value tree.Value, path string) error
	// CanWrite reports whether Write is supported.
	CanWrite() bool
	// Extensions lists the file extensions the handler claims, without the dot.
	Extensions() []string
}

// ReadOnly provides Write and CanWrite for handlers that only parse.
type ReadOnly struct{}

// Write always fails with ErrUnsupportedFormat.
func (ReadOnly) Write(_ tree.Value, path string) error {
	return fmt.Errorf("%w: handler does not support writing %q", ErrUnsupportedFormat, path)
}

// CanWrite reports false.
func (ReadOnly) CanWrite() bool {
	return false
}

// WriteFile stores encoded output at path. The data is written to a temporary file
// in the same directory and renamed over the target, so readers never observe a
// partially written file. Failures are reported as *WriteError with code CodeIO.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return &WriteError{Message: "creating temporary file", Code: CodeIO, File: path, Err: err}
	}

	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(FilePerm)
	}

	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Rename(tmpName, path)
	}

	if err != nil {
		_ = os.Remove(tmpName)

		return &WriteError{Message: "writing file", Code: CodeIO, File: path, Err: err}
	}

	return nil
}
