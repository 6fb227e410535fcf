package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks user-facing input failures. Handlers map it to a 400;
// everything else that is not a not-found sentinel is treated as a
// persistence failure.
var ErrValidation = errors.New("validation error")

// ErrInvalidCredentials is returned for any login failure so the response
// never reveals whether the account number exists.
var ErrInvalidCredentials = errors.New("invalid account number or password")

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
