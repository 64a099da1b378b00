package validator

import "fmt"

// Kind classifies why an answer was rejected.
type Kind string

const (
	// ParseError means the input could not be read as the expected type or pattern.
	ParseError Kind = "parse"
	// RangeError means the input parsed but violates a domain constraint.
	RangeError Kind = "range"
)

// FieldError is a user-correctable validation failure attached to one field.
// Message is meant to be shown to the user verbatim.
type FieldError struct {
	Field   Field
	Kind    Kind
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func parseError(field Field, msg string) *FieldError {
	return &FieldError{Field: field, Kind: ParseError, Message: msg}
}

func rangeError(field Field, msg string) *FieldError {
	return &FieldError{Field: field, Kind: RangeError, Message: msg}
}
