package field

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-sitesfield/pkg/selection"
)

var (
	// ErrRequired reports an empty selection on a required field.
	ErrRequired = errors.New("field: a selection is required")
	// ErrMissingProvider is returned when a field has no option provider.
	ErrMissingProvider = errors.New("field: missing option provider")
)

// Error attributes a validation failure to a field handle. It blocks saving
// but is not a system error.
type Error struct {
	Handle string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Handle, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Message returns the editor-facing message for the failure.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	switch {
	case errors.Is(e.Err, ErrRequired):
		return "cannot be blank."
	case errors.Is(e.Err, selection.ErrArrayNotAllowed):
		return "must be a single site."
	case errors.Is(e.Err, selection.ErrTooManySelected):
		return "has too many sites selected."
	default:
		return "is invalid."
	}
}

// ErrorMessages maps a validation error onto form errors keyed by field
// handle. Non-field errors yield nil.
func ErrorMessages(err error) map[string][]string {
	var ferr *Error
	if !errors.As(err, &ferr) || ferr == nil {
		return nil
	}
	return map[string][]string{ferr.Handle: {ferr.Message()}}
}
