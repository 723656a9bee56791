package selection

import "context"

// Option is an entry in the reference option list.
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// OptionProvider returns the current reference option list. Implementations
// are queried on every call and must not assume the engine caches results.
type OptionProvider interface {
	Options(ctx context.Context) ([]Option, error)
}

// OptionsFunc adapts a function to OptionProvider.
type OptionsFunc func(ctx context.Context) ([]Option, error)

func (fn OptionsFunc) Options(ctx context.Context) ([]Option, error) {
	if fn == nil {
		return nil, nil
	}
	return fn(ctx)
}

// StaticOptions is a fixed option list, mostly useful in tests and tooling.
type StaticOptions []Option

func (s StaticOptions) Options(context.Context) ([]Option, error) {
	return append([]Option(nil), s...), nil
}

// OptionState annotates a reference option with its selection state. The
// annotation list travels with a Value for renderers but is not part of the
// value's identity.
type OptionState struct {
	Label    string `json:"label"`
	Value    int    `json:"value"`
	Selected bool   `json:"selected"`
	Valid    bool   `json:"valid"`
}

func lookup(options []Option, value int) (string, bool) {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label, true
		}
	}
	return "", false
}

func annotate(options []Option, selected []int) []OptionState {
	if len(options) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(selected))
	for _, v := range selected {
		set[v] = struct{}{}
	}
	out := make([]OptionState, 0, len(options))
	for _, opt := range options {
		_, ok := set[opt.Value]
		out = append(out, OptionState{
			Label:    opt.Label,
			Value:    opt.Value,
			Selected: ok,
			Valid:    true,
		})
	}
	return out
}
