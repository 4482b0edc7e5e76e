package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-domengine/pkg/render"
)

func TestLintFileReportsUnfilledMarkers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.html")
	source := `<section class="{Kind}"><!-- {note} --><p>{title} { body }</p><textarea>{Draft}</textarea></section>`
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := lintFile(render.New(), path)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	var messages []string
	for _, v := range got {
		messages = append(messages, v.location+" -> "+v.message)
	}
	want := []string{
		"section > @class -> {Kind} is not a valid marker and renders literally",
		"section -> {note} sits inside a comment and is never filled",
		"section > p -> { body } is not a valid marker and renders literally",
		"section > textarea -> {Draft} is not a valid marker and renders literally",
	}
	if diff := cmp.Diff(want, messages); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestLintFileCleanTemplate(t *testing.T) {
	got, err := lintFile(render.New(), filepath.Join("..", "..", "templates", "layout.html"))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no violations, got %+v", got)
	}
}
