package resolve_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/resolve"
	"github.com/goliatone/go-domengine/pkg/token"
)

type author struct {
	Name  string `json:"display_name"`
	Email string
	skip  string
}

func TestValueWalksContainers(t *testing.T) {
	data := model.Data{
		"user":   map[string]any{"profile": model.Data{"city": "Lisbon"}},
		"author": &author{Name: "Ada", Email: "ada@example.com", skip: "x"},
		"list":   model.NewCollection().Set("first", "one"),
		"typed":  map[string]int{"n": 4},
		"tmpl":   model.New("<p></p>", model.Data{"inner": "v"}),
	}

	cases := map[string]any{
		"user.profile.city":   "Lisbon",
		"author.display_name": "Ada",
		"author.email":        "ada@example.com",
		"list.first":          "one",
		"typed.n":             4,
		"tmpl.inner":          "v",
	}
	for key, want := range cases {
		got, ok := resolve.Value(data, key)
		if !ok {
			t.Fatalf("%s: expected value", key)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", key, diff)
		}
	}

	for _, key := range []string{"missing", "user.missing", "author.name", "author.skip", "user.profile.city.deeper"} {
		if _, ok := resolve.Value(data, key); ok {
			t.Fatalf("%s: expected missing", key)
		}
	}
}

func TestResolveRequiredAndOptional(t *testing.T) {
	tmpl := model.New(`<p>{a}</p>`, model.Data{"present": "x", "null": nil})

	got, err := resolve.Resolve(tmpl, token.Token{Marker: "{?null}", Key: "null", Optional: true})
	if err != nil {
		t.Fatalf("resolve optional: %v", err)
	}
	if _, ok := got.(resolve.Empty); !ok {
		t.Fatalf("expected Empty, got %#v", got)
	}

	_, err = resolve.Resolve(tmpl, token.Token{Marker: "{null}", Key: "null"})
	var missing *resolve.MissingValueError
	if !errors.As(err, &missing) || missing.Key != "null" || missing.Source != tmpl.Source {
		t.Fatalf("expected MissingValueError for null, got %v", err)
	}

	got, err = resolve.Resolve(tmpl, token.Token{Marker: "{present}", Key: "present"})
	if err != nil || got != resolve.Scalar("x") {
		t.Fatalf("expected scalar x, got %#v %v", got, err)
	}
}

func TestClassify(t *testing.T) {
	sub := model.New(`<b>{x}</b>`, nil)
	when := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		value any
		want  resolve.Resolved
	}{
		{"string", "s", resolve.Scalar("s")},
		{"bool", true, resolve.Scalar("true")},
		{"int", 42, resolve.Scalar("42")},
		{"float", 1.5, resolve.Scalar("1.5")},
		{"uint", uint8(7), resolve.Scalar("7")},
		{"stringer", when, resolve.Scalar(when.String())},
		{"template", sub, resolve.Sub{Template: sub}},
		{"template pointer", &sub, resolve.Sub{Template: sub}},
		{"slice drops nil", []any{"a", nil, 1}, resolve.Sequence{resolve.Scalar("a"), resolve.Scalar("1")}},
		{"typed slice", []string{"a", "b"}, resolve.Sequence{resolve.Scalar("a"), resolve.Scalar("b")}},
		{"nested slice", []any{[]any{"a"}, "b"}, resolve.Sequence{resolve.Sequence{resolve.Scalar("a")}, resolve.Scalar("b")}},
		{"collection", model.NewCollection().Set("b", "2").Set("a", "1"), resolve.Sequence{resolve.Scalar("2"), resolve.Scalar("1")}},
		{"map sorted by key", map[string]string{"b": "2", "a": "1"}, resolve.Sequence{resolve.Scalar("1"), resolve.Scalar("2")}},
		{"empty slice", []any{}, resolve.Sequence{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, resolve.Classify(tc.value)); diff != "" {
				t.Fatalf("classify mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestString(t *testing.T) {
	got := resolve.String(resolve.Sequence{resolve.Scalar("a"), resolve.Empty{}, resolve.Sequence{resolve.Scalar("b")}})
	if got != "ab" {
		t.Fatalf("expected ab, got %q", got)
	}
	if resolve.String(resolve.Empty{}) != "" {
		t.Fatalf("expected Empty to stringify to empty string")
	}
}
