package handler

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when no handler claims an extension, or when
// writing is requested from a handler that cannot write.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// Error codes carried by ParseError and WriteError.
const (
	CodeSyntax  = "syntax"
	CodeRuntime = "runtime"
	CodeType    = "type"
	CodeEncode  = "encode"
	CodeIO      = "io"
)

// ParseError describes a file whose contents a handler could not decode.
type ParseError struct {
	Message string
	Code    string
	File    string
	Line    int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.File, e.Line, e.Message)
	}

	return fmt.Sprintf("parse error in %s: %s", e.File, e.Message)
}

// Unwrap returns the decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WriteError describes a failure to encode or store a tree.
type WriteError struct {
	Message string
	Code    string
	File    string
	Err     error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("write error in %s: %s: %v", e.File, e.Message, e.Err)
	}

	return fmt.Sprintf("write error in %s: %s", e.File, e.Message)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}
