package dataset

import (
	"errors"
	"fmt"
)

// ErrColumnRange is returned when a requested column is past the row width.
var ErrColumnRange = errors.New("column index out of range")

// ErrNotNumeric is returned when a cell of a numeric column is not a number.
var ErrNotNumeric = errors.New("cell is not a number")

// LoadError reports a failure to read or decode a data file.
// Column and Row are -1 when they do not apply.
type LoadError struct {
	Path   string
	Column int
	Row    int
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Row >= 0:
		return fmt.Sprintf("load %s: row %d column %d: %v", e.Path, e.Row, e.Column, e.Err)
	case e.Column >= 0:
		return fmt.Sprintf("load %s: column %d: %v", e.Path, e.Column, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
