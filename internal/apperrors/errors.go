package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller's credentials were rejected.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidConfiguration indicates a stored rate or value is zero, negative or otherwise unusable.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrUnsupportedPeg indicates a peg type/target combination the engine cannot resolve.
var ErrUnsupportedPeg = errors.New("unsupported peg")

// ErrUnsupportedUnit indicates a unit with no conversion factor to the commodity's native unit.
var ErrUnsupportedUnit = errors.New("unsupported unit")

// ErrCyclicPeg indicates a peg chain that revisits a currency already on the resolution path.
var ErrCyclicPeg = errors.New("cyclic peg")

// CyclicPegError carries the resolution path that closed the cycle.
// It matches ErrCyclicPeg with errors.Is.
type CyclicPegError struct {
	Path []string
}

func (e *CyclicPegError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCyclicPeg.Error(), strings.Join(e.Path, " -> "))
}

// Is reports whether target is ErrCyclicPeg.
func (e *CyclicPegError) Is(target error) bool {
	return target == ErrCyclicPeg
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// NewDuplicateError wraps ErrDuplicate with a message.
func NewDuplicateError(msg string) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, msg)
}
