package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WarnLevel, Output: &buf})

	log.Info("hidden")
	log.Warn("registry reload failed", "sites", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "registry reload failed") || !strings.Contains(out, "sites=2") {
		t.Fatalf("expected warn message with fields, got %q", out)
	}
}

func TestNew_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DebugLevel, Output: &buf, JSON: true}).With("component", "sites")

	log.Debug("loaded")

	out := buf.String()
	if !strings.Contains(out, `"component":"sites"`) || !strings.Contains(out, `"msg":"loaded"`) {
		t.Fatalf("unexpected json output: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"DEBUG": DebugLevel,
		" warn": WarnLevel,
		"error": ErrorLevel,
		"":      InfoLevel,
		"loud":  InfoLevel,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %q, want %q", raw, got, want)
		}
	}
}
