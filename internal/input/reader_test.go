package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestFileSource_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("A Y\nB X\n"), 0644); err != nil {
		t.Fatalf("Failed to write test input: %v", err)
	}

	source := NewFileSource(strings.NewReader(""), newTestLogger())
	got, err := source.Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if got != "A Y\nB X\n" {
		t.Errorf("Read() = %q", got)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	source := NewFileSource(strings.NewReader(""), newTestLogger())
	_, err := source.Read(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file, got %q", err)
	}
}

func TestFileSource_Stdin(t *testing.T) {
	source := NewFileSource(strings.NewReader("1000\n\n2000\n"), newTestLogger())

	got, err := source.Read(Stdin)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if got != "1000\n\n2000\n" {
		t.Errorf("Read() = %q", got)
	}
}
