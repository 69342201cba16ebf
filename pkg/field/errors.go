package field

import "errors"

var (
	// ErrInvalidDate is returned when a date value does not match the stored
	// input pattern.
	ErrInvalidDate = errors.New("field: invalid date value")
	// ErrTermNotFound is reported by taxonomy collaborators for unknown terms.
	ErrTermNotFound = errors.New("field: term not found")
	// ErrItemNotFound is reported by content collaborators for unknown items.
	ErrItemNotFound = errors.New("field: content item not found")
	// ErrInvalidArgs is returned by ParseArgs for unsupported argument shapes.
	ErrInvalidArgs = errors.New("field: invalid arguments")
)
