package field

import (
	"context"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-sitesfield/pkg/model"
	"github.com/goliatone/go-sitesfield/pkg/selection"
)

const (
	TemplateRadioGroup    = "radioGroup"
	TemplateCheckboxGroup = "checkboxGroup"
)

// Input is the data a renderer needs to draw the field control. ResetDelta
// asks the renderer to drop any staged draft state because the incoming value
// referenced sites that no longer exist.
type Input struct {
	Template    string             `json:"template"`
	Name        string             `json:"name"`
	DescribedBy string             `json:"describedBy,omitempty"`
	Values      []int              `json:"values"`
	Value       *int               `json:"value"`
	Options     []selection.Option `json:"options"`
	ResetDelta  bool               `json:"resetDelta"`
}

// Template returns the control template for the field mode.
func (f *Field) Template() string {
	if selection.IsSingle(f.Mode()) {
		return TemplateRadioGroup
	}
	return TemplateCheckboxGroup
}

// Input prepares the render data for v using the current site list.
func (f *Field) Input(ctx context.Context, v selection.Value, describedBy string) (Input, error) {
	options, err := f.options(ctx)
	if err != nil {
		return Input{}, err
	}
	if options == nil {
		options = []selection.Option{}
	}

	in := Input{
		Template:    f.Template(),
		Name:        f.Handle,
		DescribedBy: strings.TrimSpace(describedBy),
		Values:      []int{},
		Options:     options,
		ResetDelta:  selection.HasInvalid(v),
	}
	switch val := v.(type) {
	case selection.MultiSelection:
		in.Values = append(in.Values, selection.Values(val)...)
	case selection.SingleSelection:
		if val.Value != nil {
			value := *val.Value
			in.Value = &value
		}
	}
	return in, nil
}

// Describe returns a form-model descriptor of the field bound to the current
// site list.
func (f *Field) Describe(ctx context.Context) (model.Field, error) {
	options, err := f.options(ctx)
	if err != nil {
		return model.Field{}, err
	}

	enum := make([]any, 0, len(options))
	choices := make([]model.Option, 0, len(options))
	ids := make([]string, 0, len(options))
	for _, opt := range options {
		enum = append(enum, opt.Value)
		choices = append(choices, model.Option{Value: opt.Value, Label: opt.Label})
		ids = append(ids, strconv.Itoa(opt.Value))
	}

	desc := model.Field{
		Name:     f.Handle,
		Label:    f.Label,
		Required: f.Settings.Required,
		Options:  choices,
		Validations: []model.ValidationRule{
			{Kind: model.ValidationRuleIn, Params: map[string]string{"range": strings.Join(ids, ",")}},
		},
		UIHints: map[string]string{"widget": f.Template()},
	}

	if selection.IsSingle(f.Mode()) {
		desc.Type = model.FieldTypeInteger
		desc.Enum = enum
		desc.UIHints["input"] = "radio"
		return desc, nil
	}

	desc.Type = model.FieldTypeArray
	desc.Items = &model.Field{Name: f.Handle, Type: model.FieldTypeInteger, Enum: enum}
	desc.UIHints["input"] = "checkbox"
	if limit := f.Mode().Limit(); limit > 0 {
		desc.Validations = append(desc.Validations, model.ValidationRule{
			Kind:   model.ValidationRuleMaxItems,
			Params: map[string]string{"value": strconv.Itoa(limit)},
		})
	}
	return desc, nil
}

// Schema returns the OpenAPI schema of the stored field value.
func (f *Field) Schema(ctx context.Context) (*openapi3.Schema, error) {
	options, err := f.options(ctx)
	if err != nil {
		return nil, err
	}
	schema := selection.Schema(f.Mode(), options)
	if f.Label != "" {
		schema.Title = f.Label
	}
	return schema, nil
}
