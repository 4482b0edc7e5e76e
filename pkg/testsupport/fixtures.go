// Package testsupport holds golden-file helpers shared by package tests.
package testsupport

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its content with the
// trailing newline editors like to add removed.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return strings.TrimRight(string(MustReadGolden(t, path)), "\n")
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput runs write against a buffer and returns what it wrote.
func CaptureOutput(t *testing.T, write func(*bytes.Buffer) error) string {
	t.Helper()

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		t.Fatalf("write output: %v", err)
	}
	return buf.String()
}
