package selection_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-sitesfield/pkg/selection"
)

var ignoreAnnotation = cmpopts.IgnoreUnexported(selection.SingleSelection{}, selection.MultiSelection{})

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func regions() []selection.Option {
	return []selection.Option{
		{Label: "EU", Value: 3},
		{Label: "US", Value: 4},
	}
}

func TestNormalize_SingleModeEmpty(t *testing.T) {
	want := selection.SingleSelection{Valid: true}

	for name, raw := range map[string]selection.Raw{
		"empty list":   selection.List(),
		"empty string": selection.Scalar(""),
		"blank string": selection.Scalar("   "),
		"nil":          selection.FromAny(nil),
		"empty json":   selection.Scalar("[]"),
	} {
		got := selection.Normalize(raw, selection.SingleMode{}, regions())
		if diff := cmp.Diff(want, got, ignoreAnnotation); diff != "" {
			t.Fatalf("%s: single selection mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestNormalize_SingleModeMatch(t *testing.T) {
	got := selection.Normalize(selection.List(3), selection.ModeFor(selection.MaxOptions(1)), regions())

	want := selection.SingleSelection{Label: strPtr("EU"), Value: intPtr(3), Valid: true}
	if diff := cmp.Diff(want, got, ignoreAnnotation); diff != "" {
		t.Fatalf("single selection mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_SingleModeMismatchKeepsValue(t *testing.T) {
	got := selection.Normalize(selection.List(99), selection.SingleMode{}, regions())

	want := selection.SingleSelection{Value: intPtr(99), Valid: false}
	if diff := cmp.Diff(want, got, ignoreAnnotation); diff != "" {
		t.Fatalf("single selection mismatch (-want +got):\n%s", diff)
	}
	if !selection.HasInvalid(got) {
		t.Fatalf("expected invalid signal for unmatched single selection")
	}
}

func TestNormalize_SingleModeTakesFirstEntry(t *testing.T) {
	got := selection.Normalize(selection.Scalar(`["4","3"]`), selection.SingleMode{}, regions())

	want := selection.SingleSelection{Label: strPtr("US"), Value: intPtr(4), Valid: true}
	if diff := cmp.Diff(want, got, ignoreAnnotation); diff != "" {
		t.Fatalf("single selection mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_TruncatesToMaxOptions(t *testing.T) {
	options := []selection.Option{
		{Label: "five", Value: 5},
		{Label: "seven", Value: 7},
		{Label: "nine", Value: 9},
	}

	got := selection.Normalize(selection.List(5, 7, 9), selection.ModeFor(selection.MaxOptions(2)), options)

	want := selection.MultiSelection{Items: []selection.SelectedItem{
		{Label: strPtr("five"), Value: 5, Selected: true, Valid: true},
		{Label: strPtr("seven"), Value: 7, Selected: true, Valid: true},
	}}
	if diff := cmp.Diff(want, got, ignoreAnnotation); diff != "" {
		t.Fatalf("multi selection mismatch (-want +got):\n%s", diff)
	}

	wantStates := []selection.OptionState{
		{Label: "five", Value: 5, Selected: true, Valid: true},
		{Label: "seven", Value: 7, Selected: true, Valid: true},
		{Label: "nine", Value: 9, Selected: false, Valid: true},
	}
	if diff := cmp.Diff(wantStates, got.Options()); diff != "" {
		t.Fatalf("option annotation mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_MultiKeepsRawOrderAndDuplicates(t *testing.T) {
	options := []selection.Option{{Label: "one", Value: 1}, {Label: "two", Value: 2}}

	got := selection.Normalize(selection.List("2", 1, "2", "x"), selection.MultiMode{}, options)

	want := selection.MultiSelection{Items: []selection.SelectedItem{
		{Label: strPtr("two"), Value: 2, Selected: true, Valid: true},
		{Label: strPtr("one"), Value: 1, Selected: true, Valid: true},
		{Label: strPtr("two"), Value: 2, Selected: true, Valid: true},
		{Label: nil, Value: 0, Selected: true, Valid: false},
	}}
	if diff := cmp.Diff(want, got, ignoreAnnotation); diff != "" {
		t.Fatalf("multi selection mismatch (-want +got):\n%s", diff)
	}
	if !selection.HasInvalid(got) {
		t.Fatalf("expected invalid signal for unmatched entry")
	}
}

func TestNormalize_ZeroMatchesWhenOptionExists(t *testing.T) {
	options := []selection.Option{{Label: "root", Value: 0}}

	got := selection.Normalize(selection.List("abc"), selection.MultiMode{}, options)

	want := selection.MultiSelection{Items: []selection.SelectedItem{
		{Label: strPtr("root"), Value: 0, Selected: true, Valid: true},
	}}
	if diff := cmp.Diff(want, got, ignoreAnnotation); diff != "" {
		t.Fatalf("multi selection mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_JSONStringRoundTrip(t *testing.T) {
	options := []selection.Option{{Label: "a", Value: 1}, {Label: "b", Value: 2}}

	got := selection.Normalize(selection.FromAny("[1,2]"), selection.MultiMode{}, options)

	multi, ok := got.(selection.MultiSelection)
	if !ok {
		t.Fatalf("expected multi selection, got %T", got)
	}
	if len(multi.Items) != 2 || !multi.Items[0].Valid || !multi.Items[1].Valid {
		t.Fatalf("unexpected items: %#v", multi.Items)
	}
	if diff := cmp.Diff([]int{1, 2}, selection.Serialize(got)); diff != "" {
		t.Fatalf("serialized mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_MalformedInputDegradesToEmpty(t *testing.T) {
	options := []selection.Option{{Label: "a", Value: 1}}

	for name, raw := range map[string]any{
		"broken json": "{not valid json",
		"json object": `{"a":1}`,
		"broken list": "[1,2",
		"bool":        true,
		"map":         map[string]any{"value": 1},
	} {
		got := selection.Normalize(selection.FromAny(raw), selection.MultiMode{}, options)
		multi, ok := got.(selection.MultiSelection)
		if !ok {
			t.Fatalf("%s: expected multi selection, got %T", name, got)
		}
		if len(multi.Items) != 0 {
			t.Fatalf("%s: expected no items, got %#v", name, multi.Items)
		}
	}
}

func TestNormalize_ScalarStringIsSingleEntry(t *testing.T) {
	got := selection.Normalize(selection.FromAny(" 4 apples"), selection.MultiMode{}, regions())

	if diff := cmp.Diff([]int{4}, selection.Values(got)); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	modes := map[string]selection.Mode{
		"single":  selection.SingleMode{},
		"capped":  selection.MultiMode{Max: 2},
		"unbound": selection.MultiMode{},
	}
	inputs := []any{"[3,4,99]", []int{4}, "3", 99, nil, "{bad", []any{"4", 3.7}}

	for name, mode := range modes {
		for _, input := range inputs {
			first := selection.Normalize(selection.FromAny(input), mode, regions())
			second := selection.Normalize(selection.FromAny(first), mode, regions())
			if !selection.Equal(first, second) {
				t.Fatalf("%s: normalize not idempotent for %#v: %#v vs %#v", name, input, first, second)
			}
		}
	}
}

func TestNormalize_CanonicalPassThroughIgnoresNewOptions(t *testing.T) {
	first := selection.Normalize(selection.List(3), selection.MultiMode{}, regions())

	again := selection.Normalize(selection.Canonical(first), selection.MultiMode{}, nil)
	if diff := cmp.Diff(first, again, ignoreAnnotation); diff != "" {
		t.Fatalf("canonical input changed (-want +got):\n%s", diff)
	}
	if len(again.Options()) != 2 {
		t.Fatalf("expected original annotation to survive, got %#v", again.Options())
	}
}

func TestSerialize_StableRoundTrip(t *testing.T) {
	options := regions()
	modes := []selection.Mode{selection.SingleMode{}, selection.MultiMode{}, selection.MultiMode{Max: 1}}

	for _, mode := range modes {
		for _, input := range []any{"[4,3]", "3", []string{"4"}, nil} {
			once := selection.Serialize(selection.Normalize(selection.FromAny(input), mode, options))
			twice := selection.Serialize(selection.Normalize(selection.FromAny(once), mode, options))
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Fatalf("round trip unstable for %#v in %T (-once +twice):\n%s", input, mode, diff)
			}
		}
	}
}

func TestSerialize_Shapes(t *testing.T) {
	single := selection.Normalize(selection.List(3), selection.SingleMode{}, regions())
	if got := selection.Serialize(single); got != 3 {
		t.Fatalf("expected single value 3, got %#v", got)
	}

	empty := selection.Normalize(selection.List(), selection.SingleMode{}, regions())
	if got := selection.Serialize(empty); got != nil {
		t.Fatalf("expected nil for empty single selection, got %#v", got)
	}

	multi := selection.Normalize(selection.List(), selection.MultiMode{}, regions())
	if diff := cmp.Diff([]int{}, selection.Serialize(multi)); diff != "" {
		t.Fatalf("expected empty slice (-want +got):\n%s", diff)
	}
}

func TestKeywords_JoinsValues(t *testing.T) {
	multi := selection.Normalize(selection.List(4, 3), selection.MultiMode{}, regions())
	if got := selection.Keywords(multi); got != "4 3" {
		t.Fatalf("unexpected keywords: %q", got)
	}
	if got := selection.Keywords(selection.SingleSelection{Valid: true}); got != "" {
		t.Fatalf("expected empty keywords, got %q", got)
	}
}
