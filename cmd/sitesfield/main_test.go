package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sitesfield/pkg/picker"
)

const sitesFixture = `
sites:
  - id: 1
    name: Main
  - id: 2
    name: Blog
`

type scriptedDriver struct {
	multi []int
}

func (d scriptedDriver) Select(context.Context, picker.SelectConfig) (int, error) { return 0, nil }

func (d scriptedDriver) MultiSelect(context.Context, picker.SelectConfig) ([]int, error) {
	return d.multi, nil
}

func writeSites(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sites.yaml")
	if err := os.WriteFile(path, []byte(sitesFixture), 0o644); err != nil {
		t.Fatalf("write sites: %v", err)
	}
	return path
}

func runCLI(t *testing.T, driver picker.PromptDriver, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, driver)
	return code, stdout.String()
}

func TestRun_Serialize(t *testing.T) {
	code, out := runCLI(t, nil, "-sites", writeSites(t), "-value", "[2,1,9]", "-max", "2", "serialize")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	var got []int
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v (%q)", err, out)
	}
	if diff := cmp.Diff([]int{2, 1}, got); diff != "" {
		t.Fatalf("serialized mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ValidateRejectsUnknownSite(t *testing.T) {
	code, out := runCLI(t, nil, "-sites", writeSites(t), "-value", "9", "-max", "1", "validate")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if strings.TrimSpace(out) != "sites is invalid." {
		t.Fatalf("unexpected output: %q", out)
	}

	code, out = runCLI(t, nil, "-sites", writeSites(t), "-value", "2", "validate")
	if code != 0 || strings.TrimSpace(out) != "ok" {
		t.Fatalf("expected ok, got %d %q", code, out)
	}
}

func TestRun_SettingsFileAndKeywords(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(settings, []byte("maxOptions: 1\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	code, out := runCLI(t, nil, "-sites", writeSites(t), "-settings", settings, "-value", `["2","1"]`, "keywords")
	if code != 0 || strings.TrimSpace(out) != "2" {
		t.Fatalf("expected single keyword, got %d %q", code, out)
	}
}

func TestRun_Pick(t *testing.T) {
	code, out := runCLI(t, scriptedDriver{multi: []int{1}}, "-sites", writeSites(t), "-value", "1", "pick")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	var got []int
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v (%q)", err, out)
	}
	if diff := cmp.Diff([]int{2}, got); diff != "" {
		t.Fatalf("picked mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	if code, _ := runCLI(t, nil, "-sites", writeSites(t)); code != 2 {
		t.Fatalf("expected usage exit 2, got %d", code)
	}
	if code, _ := runCLI(t, nil, "-sites", writeSites(t), "explode"); code != 2 {
		t.Fatalf("expected unknown command exit 2, got %d", code)
	}
	if code, _ := runCLI(t, nil, "-sites", filepath.Join(t.TempDir(), "missing.yaml"), "normalize"); code != 1 {
		t.Fatalf("expected missing sites exit 1, got %d", code)
	}
}
