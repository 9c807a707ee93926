package catalog

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedSource is matched by every SourceError, so callers can test
// with errors.Is without caring about the specific defect.
var ErrMalformedSource = errors.New("malformed catalog source")

// SourceError reports a record that prevents the catalog from initializing.
type SourceError struct {
	Index  int    // zero-based position of the record in the source
	Record string // identity of the offending record, e.g. `symbol "Fe"`
	Field  string // JSON name of the field at fault
	Reason string // what is wrong with the field
}

// Error formats the record position, identity and the defective field.
func (e *SourceError) Error() string {
	return fmt.Sprintf("catalog: record %d (%s): %s %q", e.Index, e.Record, e.Reason, e.Field)
}

// Is reports whether target is ErrMalformedSource.
func (e *SourceError) Is(target error) bool {
	return target == ErrMalformedSource
}

func missingField(i int, el Element, field string) *SourceError {
	return &SourceError{Index: i, Record: el.identity(), Field: field, Reason: "missing required field"}
}

func invalidField(i int, el Element, field, reason string) *SourceError {
	return &SourceError{Index: i, Record: el.identity(), Field: field, Reason: reason}
}

func quote(s string) string { return strconv.Quote(s) }

func itoa(n int) string { return strconv.Itoa(n) }
