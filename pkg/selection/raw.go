package selection

import (
	"encoding/json"
	"reflect"
	"strconv"
)

// RawKind tags the shape of a raw field value.
type RawKind int

const (
	RawUnknown RawKind = iota
	RawScalar
	RawList
	RawCanonicalSingle
	RawCanonicalMulti
)

func (k RawKind) String() string {
	switch k {
	case RawScalar:
		return "scalar"
	case RawList:
		return "list"
	case RawCanonicalSingle:
		return "canonical-single"
	case RawCanonicalMulti:
		return "canonical-multi"
	default:
		return "unknown"
	}
}

// Raw is a stored or submitted field value tagged by shape. Build it with
// Scalar, List, Canonical, Unknown or FromAny.
type Raw struct {
	kind   RawKind
	scalar string
	items  []any
	value  Value
}

// Scalar wraps a string value. Strings starting with "[" or "{" are parsed as
// JSON during normalization.
func Scalar(s string) Raw {
	return Raw{kind: RawScalar, scalar: s}
}

// List wraps an ordered list of raw entries.
func List(items ...any) Raw {
	return Raw{kind: RawList, items: append([]any{}, items...)}
}

// Canonical wraps an already normalized value. A nil value yields Unknown.
func Canonical(v Value) Raw {
	switch deref(v).(type) {
	case SingleSelection:
		return Raw{kind: RawCanonicalSingle, value: deref(v)}
	case MultiSelection:
		return Raw{kind: RawCanonicalMulti, value: deref(v)}
	default:
		return Unknown()
	}
}

// Unknown is a raw value of unsupported shape; it normalizes to an empty
// selection.
func Unknown() Raw {
	return Raw{kind: RawUnknown}
}

// Kind reports the raw shape.
func (r Raw) Kind() RawKind { return r.kind }

// FromAny tags an arbitrary decoded value. Strings, byte slices and numbers
// become scalars, slices and arrays become lists, canonical values pass
// through, and everything else is unknown.
func FromAny(v any) Raw {
	switch val := v.(type) {
	case nil:
		return Unknown()
	case Raw:
		return val
	case Value:
		return Canonical(val)
	case string:
		return Scalar(val)
	case []byte:
		return Scalar(string(val))
	case json.RawMessage:
		return Scalar(string(val))
	case json.Number:
		return Scalar(val.String())
	case int:
		return Scalar(strconv.Itoa(val))
	case int8, int16, int32, int64:
		return Scalar(strconv.FormatInt(reflect.ValueOf(val).Int(), 10))
	case uint, uint8, uint16, uint32, uint64:
		return Scalar(strconv.FormatUint(reflect.ValueOf(val).Uint(), 10))
	case float32:
		return Scalar(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case float64:
		return Scalar(strconv.FormatFloat(val, 'f', -1, 64))
	case []any:
		return List(val...)
	case []int:
		items := make([]any, 0, len(val))
		for _, item := range val {
			items = append(items, item)
		}
		return Raw{kind: RawList, items: items}
	case []string:
		items := make([]any, 0, len(val))
		for _, item := range val {
			items = append(items, item)
		}
		return Raw{kind: RawList, items: items}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, rv.Index(i).Interface())
		}
		return Raw{kind: RawList, items: items}
	}
	return Unknown()
}
