package jsonl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriter_AppendsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "audit.jsonl")

	w := New(path)
	if err := w.Write(map[string]any{"op": "tominor", "result": "1235"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Write(map[string]any{"op": "scale", "result": "1"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines want 2: %q", len(lines), string(b))
	}
	if !strings.Contains(lines[0], `"tominor"`) || !strings.Contains(lines[1], `"scale"`) {
		t.Fatalf("unexpected records: %q", string(b))
	}
}

func TestWriter_NilIsDiscard(t *testing.T) {
	var w *Writer
	if err := w.Write(map[string]any{"op": "noop"}); err != nil {
		t.Fatalf("nil write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
	if New("   ") != nil {
		t.Fatal("blank path must return nil writer")
	}
}

func TestWriter_RejectsNilRecord(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "audit.jsonl"))
	if err := w.Write(nil); err == nil {
		t.Fatal("expected error for nil record")
	}
}
