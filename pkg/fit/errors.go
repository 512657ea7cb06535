package fit

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidInputError marks selector or mapper input that is structurally
// unusable: wrong series counts, mismatched x grids, empty series, a test x
// absent from the candidate grid or a negative deviation bound. Such a
// failure is fatal to the call and is never retried.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// invalidInputf builds an InvalidInputError with a formatted reason and an
// attached stack trace.
func invalidInputf(format string, args ...interface{}) error {
	return errors.WithStack(InvalidInputError{Reason: fmt.Sprintf(format, args...)})
}

// IsInvalidInput reports whether err originates from structurally invalid
// selector or mapper input, unwrapping any context added along the way.
func IsInvalidInput(err error) bool {
	_, ok := errors.Cause(err).(InvalidInputError)
	return ok
}
