package paging

import (
	"errors"
	"fmt"
)

// ErrInvalidTarget is returned when the value being extended is not an
// observable collection.
var ErrInvalidTarget = errors.New("paging: target must be an observable collection")

// ErrInvalidOption is returned when a page number, page size or window size
// is below one.
var ErrInvalidOption = errors.New("paging: option must be greater than zero")

// ErrUnknownGenerator is returned when a page generator name is not
// registered.
var ErrUnknownGenerator = errors.New("paging: page generator could not be found")

// OptionError describes a rejected numeric option.
// It unwraps to ErrInvalidOption.
type OptionError struct {
	Option string // "pageNumber", "pageSize" or "windowSize"
	Value  int
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	return fmt.Sprintf("paging: %s must be greater than zero, got %d", e.Option, e.Value)
}

// Unwrap returns ErrInvalidOption for errors.Is support.
func (e *OptionError) Unwrap() error {
	return ErrInvalidOption
}

// GeneratorError describes a lookup of an unregistered generator.
// It unwraps to ErrUnknownGenerator.
type GeneratorError struct {
	Name string
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	return fmt.Sprintf("paging: page generator %q could not be found", e.Name)
}

// Unwrap returns ErrUnknownGenerator for errors.Is support.
func (e *GeneratorError) Unwrap() error {
	return ErrUnknownGenerator
}

// checkPositive returns an *OptionError when value is below one.
func checkPositive(option string, value int) error {
	if value < 1 {
		return &OptionError{Option: option, Value: value}
	}
	return nil
}
