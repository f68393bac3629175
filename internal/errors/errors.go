package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an OperationError
type Kind int

const (
	// KindUnknown is the zero Kind
	KindUnknown Kind = iota
	// KindParse means the remote reference could not be parsed as any supported URL dialect
	KindParse
	// KindInvalidRemote means the remote parsed but lacked a required component
	KindInvalidRemote
	// KindClient means the version-control client failed
	KindClient
	// KindConfig means the configuration could not be built
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindInvalidRemote:
		return "invalid remote"
	case KindClient:
		return "client"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// OperationError represents an error that occurred during a jago operation
type OperationError struct {
	Op   string // The operation being performed
	Kind Kind   // Category of the failure
	Err  error  // The underlying error
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	return e.Err
}

// New creates a new OperationError of unknown kind
func New(op string, err error) *OperationError {
	return &OperationError{
		Op:  op,
		Err: err,
	}
}

// Newf creates a new OperationError of the given kind
func Newf(op string, kind Kind, err error) *OperationError {
	return &OperationError{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}

// Is implements error matching for OperationError.
// Two operation errors match when their operations match and, if the target
// carries a kind, their kinds match too.
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	if !ok {
		return false
	}
	if t.Kind != KindUnknown && t.Kind != e.Kind {
		return false
	}
	return e.Op == t.Op
}

// KindOf returns the kind of the outermost OperationError in err's chain
func KindOf(err error) Kind {
	var opErr *OperationError
	if stderrors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindUnknown
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
