package ashwam

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaViolation is returned when a semantic object carries a value
	// outside its closed vocabulary or is missing a required field.
	ErrSchemaViolation = errors.New("ashwam: schema violation")

	// ErrEmptyEvidenceSpan is returned for an empty or whitespace-only
	// evidence span. It is a schema violation; errors.Is against
	// ErrSchemaViolation also matches.
	ErrEmptyEvidenceSpan = errors.New("ashwam: empty evidence span")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("ashwam: invalid configuration")

	// ErrMissingJournalText is returned when an annotation or prediction
	// record references a journal ID absent from the journals file.
	ErrMissingJournalText = errors.New("ashwam: journal text not found")
)

// SchemaError locates a malformed semantic object: which entry, which list
// (gold or predicted), which index, and which field. EntryID, List, and
// Index are filled by the caller that knows the object's position.
type SchemaError struct {
	EntryID string
	List    string // "gold" or "predicted"
	Index   int
	Field   string
	Value   string
	cause   error
}

func (e *SchemaError) Error() string {
	where := "object"
	if e.EntryID != "" {
		where = fmt.Sprintf("entry %q %s[%d]", e.EntryID, e.List, e.Index)
	}
	if errors.Is(e.cause, ErrEmptyEvidenceSpan) {
		return fmt.Sprintf("%v: %s field %s", e.cause, where, e.Field)
	}
	return fmt.Sprintf("%v: %s field %s has value %q", e.cause, where, e.Field, e.Value)
}

// Unwrap exposes the underlying sentinel (ErrSchemaViolation or
// ErrEmptyEvidenceSpan).
func (e *SchemaError) Unwrap() error { return e.cause }

// Is treats every SchemaError as a schema violation, so
// errors.Is(err, ErrSchemaViolation) holds for empty spans too.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaViolation || errors.Is(e.cause, target)
}
