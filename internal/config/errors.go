package config

import (
	"errors"
	"fmt"

	"github.com/webgroom/webgroom/internal/config/registry"
)

// Errors returned by configuration operations.
var (
	// ErrBadArgument indicates an option value failed to parse.
	ErrBadArgument = errors.New("bad argument value")

	// ErrUnknownOption indicates an unrecognized option name.
	ErrUnknownOption = errors.New("unknown option")

	// ErrValueTooLong indicates a value exceeded its growth limit.
	ErrValueTooLong = errors.New("value too long")

	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrReadOnlyOption indicates a set was attempted on an option
	// that has no parser and cannot be set independently.
	ErrReadOnlyOption = errors.New("option cannot be set independently")
)

// BadArgumentError reports a value that the option's parser rejected.
type BadArgumentError struct {
	// Option is the descriptor of the option being set.
	Option *registry.Option
	// Value is the offending raw text, as far as it was read.
	Value string
	// Message describes what the parser expected.
	Message string
	// Err is an optional underlying sentinel, such as ErrValueTooLong.
	Err error
}

// Error implements the error interface.
func (e *BadArgumentError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("bad argument %q for %s: %s", e.Value, e.Option.Name, e.Message)
	}
	return fmt.Sprintf("bad argument %q for %s", e.Value, e.Option.Name)
}

// Is implements error matching for BadArgumentError.
func (e *BadArgumentError) Is(target error) bool {
	return target == ErrBadArgument
}

// Unwrap returns the underlying sentinel, if any.
func (e *BadArgumentError) Unwrap() error {
	return e.Err
}

// UnknownOptionError reports an option name with no descriptor.
type UnknownOptionError struct {
	// Name is the unrecognized option name as written.
	Name string
}

// Error implements the error interface.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Name)
}

// Is implements error matching for UnknownOptionError.
func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}

// FileError reports a failure to open or read a configuration file.
type FileError struct {
	// Path is the file that failed.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}
