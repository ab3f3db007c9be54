package conf

import (
	"errors"

	"github.com/0xalexb/hjarta-conf/handler"
	"github.com/0xalexb/hjarta-conf/pathspec"
)

// ErrFileNotFound is returned when a required path does not exist.
var ErrFileNotFound = pathspec.ErrFileNotFound

// ErrEmptyDirectory is returned when a directory path holds no candidate files.
var ErrEmptyDirectory = pathspec.ErrEmptyDirectory

// ErrUnsupportedFormat is returned when no registered handler can serve a file.
var ErrUnsupportedFormat = handler.ErrUnsupportedFormat

// ErrNilConfig is returned when Save is given no configuration.
var ErrNilConfig = errors.New("configuration is nil")

// ParseError describes a file a handler could not decode.
type ParseError = handler.ParseError

// WriteError describes a tree a handler could not encode or store.
type WriteError = handler.WriteError
