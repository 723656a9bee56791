package sites

import (
	"context"
	"fmt"

	"github.com/goliatone/go-sitesfield/pkg/selection"
)

// Provider exposes reg as a selection.OptionProvider. Every call reads the
// registry again.
func Provider(reg Registry) selection.OptionProvider {
	return selection.OptionsFunc(func(ctx context.Context) ([]selection.Option, error) {
		if reg == nil {
			return nil, fmt.Errorf("sites: missing registry")
		}
		list, err := reg.AllSites(ctx)
		if err != nil {
			return nil, fmt.Errorf("sites: list sites: %w", err)
		}
		return ToOptions(list), nil
	})
}

// ToOptions maps sites onto selection options, keeping registry order.
func ToOptions(list []Site) []selection.Option {
	out := make([]selection.Option, 0, len(list))
	for _, site := range list {
		out = append(out, selection.Option{Label: site.Name, Value: site.ID})
	}
	return out
}
