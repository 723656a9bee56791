package selection

import (
	"strconv"
	"strings"
)

// Serialize converts v into its storage form. Multi selections become the
// ordered slice of item values; a single selection yields its value as an int,
// or nil when nothing was chosen.
func Serialize(v Value) any {
	switch val := deref(v).(type) {
	case MultiSelection:
		out := make([]int, 0, len(val.Items))
		for _, item := range val.Items {
			out = append(out, item.Value)
		}
		return out
	case SingleSelection:
		if val.Value == nil {
			return nil
		}
		return *val.Value
	default:
		return nil
	}
}

// Keywords renders the primitive content of v as a space-separated string for
// full-text indexing.
func Keywords(v Value) string {
	values := Values(v)
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, strconv.Itoa(value))
	}
	return strings.Join(parts, " ")
}
