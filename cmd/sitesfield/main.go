package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-sitesfield/components/sites"
	"github.com/goliatone/go-sitesfield/internal/logger"
	"github.com/goliatone/go-sitesfield/pkg/field"
	"github.com/goliatone/go-sitesfield/pkg/picker"
	"github.com/goliatone/go-sitesfield/pkg/selection"
)

const usage = `usage: sitesfield [flags] <command>

commands:
  normalize   print the canonical value for -value
  serialize   print the storage form for -value
  validate    validate -value against the site list (exit 1 when rejected)
  keywords    print search keywords for -value
  input       print render data for -value
  describe    print the form-model descriptor
  schema      print the OpenAPI schema of the stored value
  pick        choose sites interactively, starting from -value
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, nil))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver picker.PromptDriver) int {
	fs := flag.NewFlagSet("sitesfield", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	sitesPath := fs.String("sites", "sites.yaml", "site registry file (JSON or YAML)")
	settingsPath := fs.String("settings", "", "field settings file (JSON or YAML)")
	maxOptions := fs.Int("max", -1, "maxOptions override (-1 keeps the settings value)")
	required := fs.Bool("required", false, "mark the field as required")
	handle := fs.String("handle", "sites", "field handle")
	raw := fs.String("value", "", "raw stored or submitted value")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	logJSON := fs.Bool("log-json", false, "emit JSON logs")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	command := strings.ToLower(strings.TrimSpace(fs.Arg(0)))

	log := logger.New(logger.Config{
		Level:  logger.ParseLevel(*logLevel),
		Output: stderr,
		JSON:   *logJSON,
	}).With("command", command)

	store, err := sites.NewStoreFromFile(*sitesPath)
	if err != nil {
		log.Error("load sites", "err", err)
		return 1
	}
	log.Debug("loaded sites", "path", *sitesPath, "count", store.Len())

	settings, err := loadSettings(*settingsPath)
	if err != nil {
		log.Error("load settings", "err", err)
		return 1
	}
	if *maxOptions >= 0 {
		settings.MaxOptions = selection.MaxOptions(*maxOptions)
	}
	if *required {
		settings.Required = true
	}

	f, err := field.New(*handle, settings, sites.Provider(store), field.WithLogger(log))
	if err != nil {
		log.Error("configure field", "err", err)
		return 1
	}

	switch command {
	case "describe":
		desc, err := f.Describe(ctx)
		if err != nil {
			log.Error("describe field", "err", err)
			return 1
		}
		return writeJSON(stdout, log, desc)
	case "schema":
		schema, err := f.Schema(ctx)
		if err != nil {
			log.Error("build schema", "err", err)
			return 1
		}
		return writeJSON(stdout, log, schema)
	}

	value, err := f.Normalize(ctx, *raw)
	if err != nil {
		log.Error("normalize value", "err", err)
		return 1
	}

	switch command {
	case "normalize":
		return writeJSON(stdout, log, value)
	case "serialize":
		return writeJSON(stdout, log, f.Serialize(value))
	case "keywords":
		fmt.Fprintln(stdout, f.SearchKeywords(value))
		return 0
	case "input":
		in, err := f.Input(ctx, value, "")
		if err != nil {
			log.Error("prepare input", "err", err)
			return 1
		}
		return writeJSON(stdout, log, in)
	case "validate":
		if err := f.Validate(ctx, value); err != nil {
			var ferr *field.Error
			if errors.As(err, &ferr) {
				fmt.Fprintf(stdout, "%s %s\n", ferr.Handle, ferr.Message())
				log.Info("value rejected", "err", err)
				return 1
			}
			log.Error("validate value", "err", err)
			return 1
		}
		fmt.Fprintln(stdout, "ok")
		return 0
	case "pick":
		return pick(ctx, stdout, log, f, value, driver)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", command)
		fs.Usage()
		return 2
	}
}

func pick(ctx context.Context, stdout io.Writer, log logger.Logger, f *field.Field, value selection.Value, driver picker.PromptDriver) int {
	message := f.Label
	if message == "" {
		message = "Select sites"
	}
	raw, err := picker.New(driver).Pick(ctx, picker.Config{
		Message:  message,
		Required: f.Settings.Required,
	}, f.Mode(), value)
	if err != nil {
		if errors.Is(err, picker.ErrAborted) {
			return 130
		}
		log.Error("pick sites", "err", err)
		return 1
	}
	picked, err := f.Normalize(ctx, raw)
	if err != nil {
		log.Error("normalize picked value", "err", err)
		return 1
	}
	return writeJSON(stdout, log, f.Serialize(picked))
}

func loadSettings(path string) (field.Settings, error) {
	if strings.TrimSpace(path) == "" {
		return field.Settings{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return field.Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return field.LoadSettings(data)
}

func writeJSON(w io.Writer, log logger.Logger, v any) int {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error("encode output", "err", err)
		return 1
	}
	return 0
}
