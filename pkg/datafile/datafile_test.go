package datafile_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-domengine/pkg/datafile"
	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/render"
)

const page = `
lang: en
title: Home
count: 3
draft: false
nav:
  zeta: !template
    source: <li>{label}</li>
    data: {label: Zeta}
  alpha: !template
    source: <li>{label}</li>
    data: {label: Alpha}
tags: [a, b]
meta:
  author: Ada
`

func TestDecodeKeepsOrderAndTemplates(t *testing.T) {
	data, err := datafile.Decode(strings.NewReader(page))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if diff := cmp.Diff("en", data["lang"]); diff != "" {
		t.Fatalf("lang mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(3, data["count"]); diff != "" {
		t.Fatalf("count mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"a", "b"}, data["tags"]); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}

	nav, ok := data["nav"].(*model.Collection)
	if !ok {
		t.Fatalf("expected nav collection, got %T", data["nav"])
	}
	if diff := cmp.Diff([]string{"zeta", "alpha"}, nav.Keys()); diff != "" {
		t.Fatalf("nav order mismatch (-want +got):\n%s", diff)
	}

	engine := render.New()
	out, err := engine.Serialize(model.New(`<h1>{title} by {meta.author}</h1><ul>{nav}</ul>`, data))
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := `<h1>Home by Ada</h1><ul><li>Zeta</li><li>Alpha</li></ul>`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsInvalidTemplates(t *testing.T) {
	cases := map[string]string{
		"missing source": "a: !template {data: {x: 1}}",
		"unknown field":  "a: !template {source: x, extra: 1}",
		"data scalar":    "a: !template {source: x, data: 1}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := datafile.DecodeBytes([]byte(doc)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := datafile.DecodeBytes([]byte("- a\n- b\n")); !errors.Is(err, datafile.ErrNotMapping) {
		t.Fatalf("expected ErrNotMapping, got %v", err)
	}
}

func TestDecodeEmptyAndJSON(t *testing.T) {
	data, err := datafile.DecodeBytes(nil)
	if err != nil || len(data) != 0 {
		t.Fatalf("expected empty data, got %v %v", data, err)
	}

	data, err = datafile.Decode(strings.NewReader(`{"user": {"name": "Ada"}, "ids": [1, 2]}`))
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	user := data["user"].(*model.Collection)
	if name, _ := user.Get("name"); name != "Ada" {
		t.Fatalf("expected Ada, got %v", name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := datafile.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data["x"] != 1 {
		t.Fatalf("expected x=1, got %v", data["x"])
	}
	if _, err := datafile.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
