package job

import (
	"fmt"
	"strings"
)

// ValidationError carries the human-readable rule failures of a draft.
// Warnings alone mean completion can proceed once acknowledged.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) > 0 {
		return "validation failed: " + strings.Join(e.Errors, "; ")
	}
	return "warnings require acknowledgement: " + strings.Join(e.Warnings, "; ")
}

// Blocking reports whether the failure is a hard error rather than
// unacknowledged warnings.
func (e *ValidationError) Blocking() bool { return len(e.Errors) > 0 }

// StepError records one failed operation inside the commit sequence, with a
// reference to the record it concerned (box ID, bin location, ...).
type StepError struct {
	Step string // store_outputs, decrement_bins, consume_boxes, write_report
	Ref  string
	Err  error
}

func (e StepError) String() string {
	return fmt.Sprintf("%s (%s): %v", e.Step, e.Ref, e.Err)
}

// CommitError aggregates every step failure of one completion attempt. The
// transaction was rolled back; nothing was partially applied.
type CommitError struct {
	Steps []StepError
}

func (e *CommitError) Error() string {
	parts := make([]string, len(e.Steps))
	for i, s := range e.Steps {
		parts[i] = s.String()
	}
	return "commit failed, rolled back: " + strings.Join(parts, "; ")
}

// Details returns the step failures as display strings.
func (e *CommitError) Details() []string {
	out := make([]string, len(e.Steps))
	for i, s := range e.Steps {
		out[i] = s.String()
	}
	return out
}
