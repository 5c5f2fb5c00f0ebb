package academyreport

import (
	"github.com/HazemIbrahim256/academyreport/emit"
	"github.com/HazemIbrahim256/academyreport/report"
)

// ErrInvalidInput reports malformed or missing required fields in the
// supplied records. Renders fail fast with it before any drawing work.
var ErrInvalidInput = report.ErrInvalidInput

// RenderError represents a failure while drawing or writing the PDF. It
// carries the failed operation name and wraps the underlying error.
type RenderError = emit.RenderError
