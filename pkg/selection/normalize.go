package selection

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Normalize converts raw into a canonical value bound to options. Canonical
// input is returned unchanged. The result shape depends only on mode, and
// unmatched entries are flagged invalid instead of failing.
func Normalize(raw Raw, mode Mode, options []Option) Value {
	switch raw.kind {
	case RawCanonicalSingle, RawCanonicalMulti:
		if raw.value != nil {
			return raw.value
		}
	}
	if mode == nil {
		mode = MultiMode{}
	}

	entries := raw.entries()
	if limit := mode.Limit(); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	selected := make([]int, 0, len(entries))
	for _, entry := range entries {
		selected = append(selected, toInt(entry))
	}

	states := annotate(options, selected)
	if IsSingle(mode) {
		return normalizeSingle(selected, options).WithOptions(states)
	}
	return normalizeMulti(selected, options).WithOptions(states)
}

func normalizeSingle(selected []int, options []Option) SingleSelection {
	if len(selected) == 0 {
		return SingleSelection{Valid: true}
	}
	value := selected[0]
	out := SingleSelection{Value: &value}
	if label, ok := lookup(options, value); ok {
		out.Label = &label
		out.Valid = true
	}
	return out
}

func normalizeMulti(selected []int, options []Option) MultiSelection {
	items := make([]SelectedItem, 0, len(selected))
	for _, value := range selected {
		item := SelectedItem{Value: value, Selected: true}
		if label, ok := lookup(options, value); ok {
			item.Label = &label
			item.Valid = true
		}
		items = append(items, item)
	}
	return MultiSelection{Items: items}
}

// entries flattens raw into its ordered list of entries. Malformed input
// degrades to an empty list.
func (r Raw) entries() []any {
	switch r.kind {
	case RawList:
		return r.items
	case RawScalar:
		if strings.TrimSpace(r.scalar) == "" {
			return nil
		}
		if strings.HasPrefix(r.scalar, "[") || strings.HasPrefix(r.scalar, "{") {
			return parseJSONList(r.scalar)
		}
		return []any{r.scalar}
	default:
		return nil
	}
}

func parseJSONList(s string) []any {
	if !gjson.Valid(s) {
		return nil
	}
	result := gjson.Parse(s)
	if !result.IsArray() {
		return nil
	}
	elems := result.Array()
	out := make([]any, 0, len(elems))
	for _, elem := range elems {
		switch elem.Type {
		case gjson.Number:
			out = append(out, elem.Int())
		case gjson.String:
			out = append(out, elem.String())
		case gjson.True:
			out = append(out, true)
		case gjson.False:
			out = append(out, false)
		case gjson.Null:
			out = append(out, nil)
		default:
			out = append(out, elem.Value())
		}
	}
	return out
}
