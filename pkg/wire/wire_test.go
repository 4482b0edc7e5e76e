package wire_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/render"
	"github.com/goliatone/go-domengine/pkg/wire"
)

type link struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

func TestEncodeShapes(t *testing.T) {
	tmpl := model.New(`<p>{a}</p>`, model.Data{
		"a":    "x",
		"list": []string{"1"},
		"sub":  model.New(`<b>{v}</b>`, model.Data{"v": true}),
		"null": nil,
	})
	payload, err := wire.Encode(tmpl)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got any
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []any{
		map[string]any{
			"a":    []any{"x"},
			"list": []any{[]any{[]any{"1"}}},
			"sub":  []any{map[string]any{"v": []any{true}}, "<b>{v}</b>"},
			"null": []any{nil},
		},
		"<p>{a}</p>",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripRendersIdentically(t *testing.T) {
	li := `<li><a href="{link.href}">{link.label}</a></li>`
	tmpl := model.New(`<nav class="{?class}"><ul>{items}</ul>{count} {meta.note}</nav>`, model.Data{
		"items": []model.Template{
			model.New(li, model.Data{"link": link{Href: "/", Label: "Home"}}),
			model.New(li, model.Data{"link": &link{Href: "/about", Label: "About"}}),
		},
		"count": 2,
		"meta": model.NewCollection().
			Set("note", "ordered").
			Set("other", model.New(`<i>{x}</i>`, model.Data{"x": 1.5})),
	})

	payload, err := wire.Encode(tmpl)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := wire.Decode(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	engine := render.New()
	want, err := engine.Serialize(tmpl)
	if err != nil {
		t.Fatalf("serialize original: %v", err)
	}
	got, err := engine.Serialize(decoded)
	if err != nil {
		t.Fatalf("serialize decoded: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}

	meta, ok := decoded.Data["meta"].(*model.Collection)
	if !ok {
		t.Fatalf("expected collection, got %T", decoded.Data["meta"])
	}
	if diff := cmp.Diff([]string{"note", "other"}, meta.Keys()); diff != "" {
		t.Fatalf("collection order mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, payload := range []string{
		`{}`,
		`[]`,
		`["scalar"]`,
		`[[1], "x"]`,
		`[{"a": "not wrapped"}, "src"]`,
		`[{"a": [1]}, null, ["missing"]]`,
	} {
		if _, err := wire.Decode([]byte(payload)); !errors.Is(err, wire.ErrMalformed) {
			t.Fatalf("%s: expected ErrMalformed, got %v", payload, err)
		}
	}
}
