package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotInRange reports selected values missing from the option list.
	ErrNotInRange = errors.New("selection: value is not in the allowed range")
	// ErrArrayNotAllowed reports a multi selection offered to a single-mode field.
	ErrArrayNotAllowed = errors.New("selection: multiple values are not allowed")
	// ErrTooManySelected reports a multi selection exceeding the mode cap.
	ErrTooManySelected = errors.New("selection: too many values selected")
)

// ValidationError is a field-level rejection of a selection. It is meant to
// be surfaced to the editor, not treated as a system failure.
type ValidationError struct {
	Invalid []int
	Err     error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	err := e.Err
	if err == nil {
		err = ErrNotInRange
	}
	if len(e.Invalid) == 0 {
		return err.Error()
	}
	parts := make([]string, 0, len(e.Invalid))
	for _, value := range e.Invalid {
		parts = append(parts, strconv.Itoa(value))
	}
	return fmt.Sprintf("%s: %s", err.Error(), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Range returns the allowed values derived from options, in option order.
func Range(options []Option) []int {
	out := make([]int, 0, len(options))
	for _, opt := range options {
		out = append(out, opt.Value)
	}
	return out
}

// Validate checks v against the live option list. Empty selections pass. In
// single mode the one selected value must be in range and multi selections are
// rejected; in multi mode every item must be in range and the count may not
// exceed the mode cap.
func Validate(v Value, mode Mode, options []Option) error {
	if mode == nil {
		mode = MultiMode{}
	}
	allowed := make(map[int]struct{}, len(options))
	for _, value := range Range(options) {
		allowed[value] = struct{}{}
	}

	switch val := deref(v).(type) {
	case SingleSelection:
		if val.Value == nil {
			return nil
		}
		if _, ok := allowed[*val.Value]; !ok {
			return &ValidationError{Invalid: []int{*val.Value}, Err: ErrNotInRange}
		}
		return nil
	case MultiSelection:
		if len(val.Items) == 0 {
			return nil
		}
		if IsSingle(mode) {
			return &ValidationError{Err: ErrArrayNotAllowed}
		}
		if limit := mode.Limit(); limit > 0 && len(val.Items) > limit {
			return &ValidationError{Err: ErrTooManySelected}
		}
		var invalid []int
		for _, item := range val.Items {
			if _, ok := allowed[item.Value]; !ok {
				invalid = append(invalid, item.Value)
			}
		}
		if len(invalid) > 0 {
			return &ValidationError{Invalid: invalid, Err: ErrNotInRange}
		}
		return nil
	default:
		return nil
	}
}
