// Package picker lets a terminal user choose sites for a field value. It reads
// the option annotation attached to a normalized value and returns the chosen
// site IDs as raw input for the next normalization.
package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-sitesfield/pkg/selection"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("picker: aborted")
	// ErrNoOptions is returned when there is nothing to choose from.
	ErrNoOptions = errors.New("picker: no options available")
)

const noneLabel = "(none)"

// Config describes one picking prompt.
type Config struct {
	Message  string
	Help     string
	Required bool
	PageSize int
}

// Picker drives a PromptDriver over a selection value.
type Picker struct {
	driver PromptDriver
}

// New returns a picker using driver, or the survey driver when driver is nil.
func New(driver PromptDriver) *Picker {
	if driver == nil {
		driver = SurveyDriver()
	}
	return &Picker{driver: driver}
}

// Pick prompts for a new selection starting from value's option annotation.
// In single mode the user chooses one site (or none when not required); in
// multi mode any number up to the mode cap.
func (p *Picker) Pick(ctx context.Context, cfg Config, mode selection.Mode, value selection.Value) (selection.Raw, error) {
	if value == nil {
		return selection.Unknown(), ErrNoOptions
	}
	states := value.Options()
	if len(states) == 0 {
		return selection.Unknown(), ErrNoOptions
	}

	labels := make([]string, 0, len(states)+1)
	for _, state := range states {
		labels = append(labels, displayLabel(state))
	}

	if selection.IsSingle(mode) {
		return p.pickOne(ctx, cfg, states, labels)
	}
	return p.pickMany(ctx, cfg, mode, states, labels)
}

func (p *Picker) pickOne(ctx context.Context, cfg Config, states []selection.OptionState, labels []string) (selection.Raw, error) {
	offset := 0
	if !cfg.Required {
		labels = append([]string{noneLabel}, labels...)
		offset = 1
	}
	def := 0
	for idx, state := range states {
		if state.Selected {
			def = idx + offset
			break
		}
	}

	idx, err := p.driver.Select(ctx, SelectConfig{
		Message:      cfg.Message,
		Options:      labels,
		DefaultIndex: def,
		Help:         cfg.Help,
		PageSize:     cfg.PageSize,
	})
	if err != nil {
		return selection.Unknown(), err
	}
	if idx < 0 || idx >= len(labels) {
		return selection.Unknown(), fmt.Errorf("picker: selection index %d out of range", idx)
	}
	if idx < offset {
		return selection.List(), nil
	}
	return selection.List(states[idx-offset].Value), nil
}

func (p *Picker) pickMany(ctx context.Context, cfg Config, mode selection.Mode, states []selection.OptionState, labels []string) (selection.Raw, error) {
	var defaults []int
	for idx, state := range states {
		if state.Selected {
			defaults = append(defaults, idx)
		}
	}
	limit := 0
	if mode != nil {
		limit = mode.Limit()
	}

	chosen, err := p.driver.MultiSelect(ctx, SelectConfig{
		Message:  cfg.Message,
		Options:  labels,
		Defaults: defaults,
		Help:     cfg.Help,
		PageSize: cfg.PageSize,
		Max:      limit,
	})
	if err != nil {
		return selection.Unknown(), err
	}

	items := make([]any, 0, len(chosen))
	for _, idx := range chosen {
		if idx < 0 || idx >= len(states) {
			return selection.Unknown(), fmt.Errorf("picker: selection index %d out of range", idx)
		}
		items = append(items, states[idx].Value)
	}
	return selection.List(items...), nil
}

// displayLabel keeps prompt entries unique when two sites share a name.
func displayLabel(state selection.OptionState) string {
	return fmt.Sprintf("%s (#%d)", state.Label, state.Value)
}
