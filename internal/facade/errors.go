package facade

import (
	"errors"
	"fmt"
)

// ValidationError marks a business-rule violation. The API layer maps it
// to a 400 response; anything else from the facade is a backend failure.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a business-rule violation.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
