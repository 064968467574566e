package fields

import "fmt"

// HeaderDataset marks a ValidationError raised in the global header.
const HeaderDataset = -1

// ValidationError reports a malformed or missing form value.
type ValidationError struct {
	Dataset int // index of the file, HeaderDataset for the header
	Field   string
	Value   string
	Err     error
}

func (e *ValidationError) Error() string {
	where := "header"
	if e.Dataset != HeaderDataset {
		where = fmt.Sprintf("dataset %d", e.Dataset)
	}
	if e.Field == "" {
		return fmt.Sprintf("invalid form values in %s: %v", where, e.Err)
	}
	return fmt.Sprintf("invalid %s %q in %s: %v", e.Field, e.Value, where, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
