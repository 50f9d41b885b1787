package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidReferenceData is returned when reference rows or holdings are
// structurally malformed. Data-quality gaps never produce it.
var ErrInvalidReferenceData = errors.New("invalid reference data")

// ValidationError describes one malformed row
type ValidationError struct {
	Table  string
	Row    int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s[%d].%s: %s", e.Table, e.Row, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidReferenceData
func (e *ValidationError) Unwrap() error {
	return ErrInvalidReferenceData
}
