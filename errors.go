package keyedList

import "fmt"

// MissingKeyError is returned when an element submitted for insertion
// has no value for the configured key field.
type MissingKeyError struct {
	Field string
}

func (e MissingKeyError) Error() string {
	return fmt.Sprintf("element has no value for key field %q", e.Field)
}

// EmptyCollectionError is returned when an element is removed from an
// empty list. Op names the failing operation.
type EmptyCollectionError struct {
	Op string
}

func (e EmptyCollectionError) Error() string {
	return fmt.Sprintf("%s called on empty list", e.Op)
}

// KeyNotFoundError is returned by Update if no element with the given
// key exists.
type KeyNotFoundError struct {
	Key any
}

func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("no element with key %v", e.Key)
}
