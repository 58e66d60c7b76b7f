package services

import (
	"errors"
	"fmt"
)

var (
	// ErrStorage wraps any database failure. Callers answer 500 and leave
	// client state as it was.
	ErrStorage = errors.New("storage failure")

	ErrInvalidInput = errors.New("invalid input")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
