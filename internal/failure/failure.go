// Package failure defines the error kinds reported by shootdir and the
// process exit codes they map to.
//
// Every fatal condition in the engine is returned as an *Error carrying a
// Kind, the operation that failed and the affected path or name. Callers
// recover the kind with KindOf and translate it with ExitCode:
//
//	if err := manager.Run(req); err != nil {
//	    fmt.Fprintln(os.Stderr, "error:", err)
//	    os.Exit(failure.ExitCode(err))
//	}
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this package.
	KindUnknown Kind = iota

	// KindConfigRead means config.toml exists but could not be read or parsed.
	KindConfigRead

	// KindConfigWrite means config.toml could not be written.
	KindConfigWrite

	// KindInvalid means a setup value or template name is not acceptable,
	// e.g. an empty root name or a name containing a path separator.
	KindInvalid

	// KindStructuralCycle means a template's ancestor chain never reaches
	// the project root.
	KindStructuralCycle

	// KindDanglingParent means a template references a parent position
	// that does not exist.
	KindDanglingParent

	// KindCapacity means a lettered placeholder was asked for more items
	// than the alphabet can label.
	KindCapacity

	// KindFilesystem means a directory create or rename failed.
	KindFilesystem
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindConfigRead:
		return "config read"
	case KindConfigWrite:
		return "config write"
	case KindInvalid:
		return "invalid setup"
	case KindStructuralCycle:
		return "structural cycle"
	case KindDanglingParent:
		return "dangling parent"
	case KindCapacity:
		return "capacity"
	case KindFilesystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// Error is the error type returned for every fatal condition.
type Error struct {
	Kind Kind
	// Op names the operation, e.g. "create", "rename", "resolve %cams".
	Op string
	// Path is the affected path or name. May be empty.
	Path string
	// Err is the underlying cause. May be nil.
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String() + " error"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an *Error without an underlying cause.
func New(kind Kind, op, path, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}

// Wrap creates an *Error around err. Returns nil if err is nil.
func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf extracts the Kind from err, or KindUnknown.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Exit codes shared with scripts that drive the CLI.
const (
	ExitOK          = 0
	ExitConfigWrite = 1
	ExitConfigRead  = 2
	ExitFilesystem  = 3
)

// ExitCode maps err to a process exit code.
//
// Template and setup problems (cycles, dangling parents, capacity, invalid
// names) are configuration errors and share the config-read code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case KindConfigWrite:
		return ExitConfigWrite
	case KindFilesystem:
		return ExitFilesystem
	default:
		return ExitConfigRead
	}
}
