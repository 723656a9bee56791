package selection

// Value is a canonical selection: either SingleSelection or MultiSelection.
// Values are built fresh by Normalize and are immutable apart from the
// option annotation.
type Value interface {
	// Options returns the option annotation attached at normalization time.
	Options() []OptionState
	isValue()
}

// SingleSelection is the canonical value for single mode. Value is nil when
// nothing was chosen; Label is nil when nothing was chosen or the chosen value
// does not match a current option.
type SingleSelection struct {
	Label *string `json:"label"`
	Value *int    `json:"value"`
	Valid bool    `json:"valid"`

	options []OptionState
}

func (s SingleSelection) Options() []OptionState { return cloneStates(s.options) }
func (SingleSelection) isValue()                 {}

// WithOptions returns a copy of s carrying the provided annotation.
func (s SingleSelection) WithOptions(options []OptionState) SingleSelection {
	s.options = cloneStates(options)
	return s
}

// Empty reports whether nothing was chosen.
func (s SingleSelection) Empty() bool {
	return s.Value == nil
}

// SelectedItem is one entry of a MultiSelection. Selected is always true; it
// mirrors the option annotation shape.
type SelectedItem struct {
	Label    *string `json:"label"`
	Value    int     `json:"value"`
	Selected bool    `json:"selected"`
	Valid    bool    `json:"valid"`
}

// MultiSelection is the canonical value for multi mode. Items follow raw input
// order and keep duplicates.
type MultiSelection struct {
	Items []SelectedItem `json:"items"`

	options []OptionState
}

func (m MultiSelection) Options() []OptionState { return cloneStates(m.options) }
func (MultiSelection) isValue()                 {}

// WithOptions returns a copy of m carrying the provided annotation.
func (m MultiSelection) WithOptions(options []OptionState) MultiSelection {
	m.Items = append([]SelectedItem(nil), m.Items...)
	m.options = cloneStates(options)
	return m
}

// Values returns the primitive selected values of v in order. Empty single
// selections and nil values yield nil.
func Values(v Value) []int {
	switch val := v.(type) {
	case SingleSelection:
		if val.Value == nil {
			return nil
		}
		return []int{*val.Value}
	case *SingleSelection:
		if val == nil {
			return nil
		}
		return Values(*val)
	case MultiSelection:
		if len(val.Items) == 0 {
			return nil
		}
		out := make([]int, 0, len(val.Items))
		for _, item := range val.Items {
			out = append(out, item.Value)
		}
		return out
	case *MultiSelection:
		if val == nil {
			return nil
		}
		return Values(*val)
	default:
		return nil
	}
}

// HasInvalid reports whether v references a value that did not match the
// option list at normalization time. Renderers use it to drop any staged draft
// state for the field.
func HasInvalid(v Value) bool {
	switch val := v.(type) {
	case SingleSelection:
		return !val.Valid
	case *SingleSelection:
		return val != nil && !val.Valid
	case MultiSelection:
		for _, item := range val.Items {
			if !item.Valid {
				return true
			}
		}
		return false
	case *MultiSelection:
		return val != nil && HasInvalid(*val)
	default:
		return false
	}
}

// Equal compares two values ignoring the option annotation.
func Equal(a, b Value) bool {
	a, b = deref(a), deref(b)
	switch x := a.(type) {
	case SingleSelection:
		y, ok := b.(SingleSelection)
		if !ok {
			return false
		}
		return x.Valid == y.Valid && equalStringPtr(x.Label, y.Label) && equalIntPtr(x.Value, y.Value)
	case MultiSelection:
		y, ok := b.(MultiSelection)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			l, r := x.Items[i], y.Items[i]
			if l.Value != r.Value || l.Valid != r.Valid || l.Selected != r.Selected || !equalStringPtr(l.Label, r.Label) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}

func deref(v Value) Value {
	switch val := v.(type) {
	case *SingleSelection:
		if val == nil {
			return nil
		}
		return *val
	case *MultiSelection:
		if val == nil {
			return nil
		}
		return *val
	default:
		return v
	}
}

func cloneStates(states []OptionState) []OptionState {
	if states == nil {
		return nil
	}
	return append([]OptionState(nil), states...)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
