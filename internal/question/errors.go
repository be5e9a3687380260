package question

import (
	"errors"
	"fmt"
)

// ErrEmptyQuestion is returned for blank or whitespace-only questions.
// Callers should re-prompt rather than report a failure.
var ErrEmptyQuestion = errors.New("empty question")

// RefusedError means the engine cannot assemble the facts a question needs,
// typically because a recommendation references a feature id the catalog no
// longer knows. Surfaced as a structured insufficient-evidence response, not
// a crash.
type RefusedError struct {
	Missing string
}

func (e *RefusedError) Error() string {
	return fmt.Sprintf("insufficient evidence: missing data for %q", e.Missing)
}

// IsRefused reports whether err is a refusal
func IsRefused(err error) bool {
	var refused *RefusedError
	return errors.As(err, &refused)
}
