package referrors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrResolution matches every reference resolution failure.
	ErrResolution = errors.New("resolution error")

	// ErrInternalResolution indicates a pointer segment was not found in the root document.
	ErrInternalResolution = errors.New("internal resolution error")

	// ErrFileResolution indicates an external reference named a file that could not be read.
	ErrFileResolution = errors.New("file resolution error")

	// ErrDecode indicates a loaded file was neither valid JSON nor valid YAML.
	ErrDecode = errors.New("decode error")

	// ErrUnsupportedScheme indicates a web (http/https) reference.
	ErrUnsupportedScheme = errors.New("unsupported reference scheme")

	// ErrCircularReference indicates a reference chain re-entered itself.
	ErrCircularReference = errors.New("circular reference")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// InternalResolutionError reports a pointer segment missing from the document
// it was followed against.
type InternalResolutionError struct {
	// Ref is the full pointer that was being followed
	Ref string
	// Segment is the first segment that could not be found
	Segment string
	// At is the value at which the walk stopped
	At any
}

// Error returns a human-readable error message.
func (e *InternalResolutionError) Error() string {
	return fmt.Sprintf("could not resolve '%s', '%s' not found in %s", e.Ref, e.Segment, describe(e.At))
}

// Is reports whether target matches this error type.
func (e *InternalResolutionError) Is(target error) bool {
	return target == ErrInternalResolution || target == ErrResolution
}

// FileResolutionError reports an external reference whose file does not exist
// or cannot be opened.
type FileResolutionError struct {
	// Ref is the original pointer string
	Ref string
	// Path is the file path the pointer resolved to
	Path string
	// Cause is the underlying I/O error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FileResolutionError) Error() string {
	if e.Cause == nil || errors.Is(e.Cause, fs.ErrNotExist) {
		return fmt.Sprintf("could not resolve '%s', '%s' file not found", e.Ref, e.Path)
	}
	return fmt.Sprintf("could not resolve '%s', '%s' could not be read: %v", e.Ref, e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error chaining.
func (e *FileResolutionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FileResolutionError) Is(target error) bool {
	return target == ErrFileResolution || target == ErrResolution
}

// DecodeError reports content that is neither valid JSON nor valid YAML.
type DecodeError struct {
	// Path is the file path or source identifier
	Path string
	// Format is the format the content was decoded as ("json" or "yaml")
	Format string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Cause is the underlying decoder error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "could not decode"
	if e.Path != "" {
		msg += " '" + e.Path + "'"
	}
	if e.Format != "" {
		msg += " as " + e.Format
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode || target == ErrResolution
}

// ResolutionError is the general resolution failure. It is raised for
// reference schemes dref does not resolve.
type ResolutionError struct {
	// Ref is the reference that failed, if known
	Ref string
	// Scheme is set when the failure is an unsupported scheme ("http", "https")
	Scheme string
	// Message describes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ResolutionError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "resolution error"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	return msg
}

// Is reports whether target matches this error type.
// Matches ErrResolution, and ErrUnsupportedScheme when Scheme is set.
func (e *ResolutionError) Is(target error) bool {
	if target == ErrResolution {
		return true
	}
	return target == ErrUnsupportedScheme && e.Scheme != ""
}

// CycleError reports a reference chain that re-entered a reference already
// being resolved.
type CycleError struct {
	// Chain lists the references being resolved, outermost first, ending
	// with the reference that closed the cycle
	Chain []string
}

// Error returns a human-readable error message.
func (e *CycleError) Error() string {
	if len(e.Chain) == 0 {
		return "circular reference"
	}
	return "circular reference: " + strings.Join(e.Chain, " -> ")
}

// Is reports whether target matches this error type.
func (e *CycleError) Is(target error) bool {
	return target == ErrCircularReference || target == ErrResolution
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "ref_depth", "file_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit || target == ErrResolution
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// describe renders the value at which a pointer walk stopped. Containers are
// summarized so the message stays on one line.
func describe(v any) string {
	type lener interface{ Len() int }
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", t)
	case []any:
		return fmt.Sprintf("sequence of %d items", len(t))
	case lener:
		return fmt.Sprintf("mapping of %d keys", t.Len())
	default:
		return fmt.Sprintf("%T %v", v, v)
	}
}
