package selection

import "github.com/getkin/kin-openapi/openapi3"

// Schema describes the storage form produced by Serialize for mode and
// options. Single mode is a nullable integer, multi mode an array of integers;
// both enumerate the current option values. Note that an empty option list
// yields an empty enum, which OpenAPI validators treat as unconstrained.
func Schema(mode Mode, options []Option) *openapi3.Schema {
	enum := make([]any, 0, len(options))
	for _, value := range Range(options) {
		enum = append(enum, float64(value))
	}

	item := openapi3.NewIntegerSchema()
	item.Enum = enum

	if IsSingle(mode) {
		return item.WithNullable()
	}

	arr := openapi3.NewArraySchema().WithItems(item)
	if mode != nil {
		if limit := mode.Limit(); limit > 0 {
			arr = arr.WithMaxItems(int64(limit))
		}
	}
	return arr
}
