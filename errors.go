package tempus

import (
	"fmt"
)

// ComponentRangeError is returned when a date or time component is outside
// the range it must lie in, optionally conditioned on other components (a day
// that would be valid in another month, for example).
type ComponentRangeError struct {
	// Name of the component, e.g. "day".
	Name string
	// Minimum and Maximum bound the valid range, inclusive.
	Minimum int64
	Maximum int64
	// Value is the value that was provided.
	Value int64
	// Conditional holds extra context such as "for the given month and year".
	// Empty when the range does not depend on other components.
	Conditional string
}

func (e *ComponentRangeError) Error() string {
	if e.Conditional != "" {
		return fmt.Sprintf("%s must be in the range %d..=%d %s, given %d",
			e.Name, e.Minimum, e.Maximum, e.Conditional, e.Value)
	}
	return fmt.Sprintf("%s must be in the range %d..=%d, given %d",
		e.Name, e.Minimum, e.Maximum, e.Value)
}

// componentRange is a shorthand constructor used by the validating paths.
func componentRange(name string, minimum, maximum, value int64, conditional string) *ComponentRangeError {
	return &ComponentRangeError{
		Name:        name,
		Minimum:     minimum,
		Maximum:     maximum,
		Value:       value,
		Conditional: conditional,
	}
}

// yearRange reports a year outside MinYear..=MaxYear.
func yearRange(year int) *ComponentRangeError {
	return componentRange("year", MinYear, MaxYear, int64(year), "")
}

// ParseError is returned when input text cannot be parsed against a compiled
// format description. Offset is the byte position at which parsing failed.
type ParseError struct {
	// Component names the component that could not be matched; empty when the
	// failure is about leftover or missing input rather than one component.
	Component string
	// Offset is the byte position within the input.
	Offset int
	// Message describes the failure.
	Message string
}

func (e *ParseError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("could not parse %s at byte %d", e.Component, e.Offset)
	}
	return fmt.Sprintf("%s at byte %d", e.Message, e.Offset)
}

// InsufficientInfoError is returned when a parse succeeded but did not yield
// enough components to assemble the requested value.
type InsufficientInfoError struct {
	// Target names the value being assembled, e.g. "Date".
	Target string
}

func (e *InsufficientInfoError) Error() string {
	return fmt.Sprintf("insufficient information to construct %s from parsed components", e.Target)
}
