// Package field implements the Sites Field: a selection of one or many sites
// bound to a live site list. It wires the selection engine to an option
// provider and exposes the operations a host form framework calls.
package field

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-sitesfield/internal/logger"
	"github.com/goliatone/go-sitesfield/pkg/selection"
)

// Field is a configured Sites Field instance.
type Field struct {
	Handle   string
	Label    string
	Settings Settings
	Provider selection.OptionProvider

	logger logger.Logger
}

// Option customises a Field at construction.
type Option func(*Field)

// WithLabel sets the human readable field label.
func WithLabel(label string) Option {
	return func(f *Field) {
		f.Label = strings.TrimSpace(label)
	}
}

// WithLogger routes field diagnostics to log.
func WithLogger(log logger.Logger) Option {
	return func(f *Field) {
		if log != nil {
			f.logger = log
		}
	}
}

// New builds a field after validating its settings.
func New(handle string, settings Settings, provider selection.OptionProvider, opts ...Option) (*Field, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, fmt.Errorf("field: handle is required")
	}
	if provider == nil {
		return nil, ErrMissingProvider
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	f := &Field{
		Handle:   handle,
		Settings: settings,
		Provider: provider,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f, nil
}

// Mode returns the selection mode of the field.
func (f *Field) Mode() selection.Mode {
	return f.Settings.Mode()
}

// Normalize converts a stored or submitted value into its canonical form
// against the current site list. Canonical values pass through without
// querying the provider. The only error source is the provider itself.
func (f *Field) Normalize(ctx context.Context, raw any) (selection.Value, error) {
	tagged := selection.FromAny(raw)
	switch tagged.Kind() {
	case selection.RawCanonicalSingle, selection.RawCanonicalMulti:
		return selection.Normalize(tagged, f.Mode(), nil), nil
	}

	options, err := f.options(ctx)
	if err != nil {
		return nil, err
	}
	value := selection.Normalize(tagged, f.Mode(), options)
	if selection.HasInvalid(value) {
		f.log().Debug("value references unknown sites", "field", f.Handle, "values", selection.Values(value))
	}
	return value, nil
}

// Serialize returns the storage form of v.
func (f *Field) Serialize(v selection.Value) any {
	return selection.Serialize(v)
}

// Validate checks v against the current site list and the required flag.
// Rejections are returned as *Error.
func (f *Field) Validate(ctx context.Context, v selection.Value) error {
	if f.Settings.Required && len(selection.Values(v)) == 0 {
		return &Error{Handle: f.Handle, Err: ErrRequired}
	}
	options, err := f.options(ctx)
	if err != nil {
		return err
	}
	if err := selection.Validate(v, f.Mode(), options); err != nil {
		return &Error{Handle: f.Handle, Err: err}
	}
	return nil
}

// SearchKeywords renders v for the search index.
func (f *Field) SearchKeywords(v selection.Value) string {
	return selection.Keywords(v)
}

func (f *Field) options(ctx context.Context) ([]selection.Option, error) {
	if f == nil || f.Provider == nil {
		return nil, ErrMissingProvider
	}
	if ctx == nil {
		ctx = context.Background()
	}
	options, err := f.Provider.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("field: load options for %s: %w", f.Handle, err)
	}
	return options, nil
}

func (f *Field) log() logger.Logger {
	if f.logger == nil {
		return logger.Nop()
	}
	return f.logger
}
