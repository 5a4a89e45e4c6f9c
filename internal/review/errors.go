package review

import (
	"errors"
	"fmt"
)

// Sentinel errors for the review package.
// Use errors.Is to check: errors.Is(err, review.ErrItemNotFound).
var (
	ErrItemNotFound     = errors.New("review: item not found")
	ErrLearnerNotFound  = errors.New("review: learner not found")
	ErrScheduleNotFound = errors.New("review: schedule not found")
)

// ValidationError indicates caller input outside the documented domain.
// Surfaced immediately, never silently coerced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("review: invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
