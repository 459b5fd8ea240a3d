package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/andreyflyagin/wordcounter/internal/wcerrors"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	out := filepath.Join(dir, "output.tsv")
	if err := os.WriteFile(in, []byte("One fish, two fish. Red fish, blue fish!"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	if err := run(in, out, 4, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	expected := "fish 4\nblue 1\none 1\nred 1\ntwo 1\n"
	if string(got) != expected {
		t.Errorf("output = %q, want %q", got, expected)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := run(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt"), 2, zaptest.NewLogger(t))
	if !errors.Is(err, wcerrors.ErrOpen) {
		t.Fatalf("run() error = %v, want ErrOpen", err)
	}
}
