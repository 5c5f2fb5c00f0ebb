package emit

import (
	"errors"
	"fmt"
)

// Sentinel errors for emitter failure conditions.
var (
	ErrNilResult      = errors.New("emit: nil layout result")
	ErrNilFont        = errors.New("emit: nil font")
	ErrBadInstruction = errors.New("emit: unknown instruction")
)

// RenderError represents a failure during a specific emit operation. It
// wraps an underlying error and includes the operation name for context.
type RenderError struct {
	Op  string // operation name, e.g. "table", "write"
	Err error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("emit.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("emit.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// newRenderError creates a RenderError wrapping the given error with
// operation context.
func newRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}
