package field

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-sitesfield/pkg/selection"
)

// Settings is the stored configuration of a Sites Field. MaxOptions nil or 0
// means unbounded; 1 switches the field to single (radio) mode.
type Settings struct {
	MaxOptions *int `json:"maxOptions" yaml:"maxOptions" validate:"omitempty,min=0"`
	Required   bool `json:"required" yaml:"required"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func settingsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks the settings, reporting every offending setting.
func (s Settings) Validate() error {
	err := settingsValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("field: validate settings: %w", err)
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("field: invalid settings: %s", strings.Join(messages, "; "))
}

// Constraint returns the selection constraint for the settings.
func (s Settings) Constraint() selection.Constraint {
	return selection.Constraint{MaxOptions: s.MaxOptions}
}

// Mode returns the selection mode derived from MaxOptions.
func (s Settings) Mode() selection.Mode {
	return s.Constraint().Mode()
}

// LoadSettings parses JSON or YAML settings and validates them.
func LoadSettings(data []byte) (Settings, error) {
	var settings Settings
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return settings, nil
	}

	if err := json.Unmarshal(trimmed, &settings); err != nil {
		settings = Settings{}
		if yerr := yaml.Unmarshal(trimmed, &settings); yerr != nil {
			return Settings{}, fmt.Errorf("field: parse settings: invalid JSON or YAML")
		}
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}
