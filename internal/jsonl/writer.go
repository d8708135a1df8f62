package jsonl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Writer appends newline-delimited JSON (JSONL) records to a file. A nil
// Writer discards records, so call sites don't need to guard an optional
// audit log.
//
// Safe for concurrent use.
type Writer struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// New returns a JSONL writer that appends to path, or nil when path is
// empty/blank.
func New(path string) *Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return &Writer{path: path}
}

// Write appends v as a single JSON object followed by '\n'. The record and
// newline go out in one write so tailers never see a torn line.
func (w *Writer) Write(v any) error {
	if w == nil {
		return nil
	}
	if v == nil {
		return fmt.Errorf("jsonl: nil record")
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		w.file = f
	}

	_, err = w.file.Write(b)
	return err
}

// Close closes the underlying file, if one was opened.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
