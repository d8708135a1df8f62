package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type snapshotEntry struct {
	Key
	Decimals int `json:"decimals"`
}

type snapshot struct {
	Tokens  []snapshotEntry `json:"tokens"`
	Symbols map[string]int  `json:"symbols,omitempty"`
}

// Load reads a registry snapshot. A missing file is not an error: it returns
// an empty registry and found=false so callers can start cold.
func Load(path string) (reg *Registry, found bool, err error) {
	reg = New()
	if path == "" {
		return reg, false, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return reg, false, nil
		}
		return nil, false, err
	}

	var snap snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, false, fmt.Errorf("parse registry snapshot %s: %w", path, err)
	}
	for _, e := range snap.Tokens {
		if err := reg.Set(e.Key, e.Decimals); err != nil {
			return nil, false, fmt.Errorf("snapshot entry %s/%s: %w", e.Chain, e.Symbol, err)
		}
	}
	for sym, d := range snap.Symbols {
		if err := reg.SetSymbol(sym, d); err != nil {
			return nil, false, fmt.Errorf("snapshot symbol %s: %w", sym, err)
		}
	}
	return reg, true, nil
}

// Save writes the registry as a JSON snapshot, replacing the file atomically.
// Entries are sorted so snapshots diff cleanly.
func (r *Registry) Save(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	r.mu.RLock()
	snap := snapshot{Tokens: make([]snapshotEntry, 0, len(r.byKey))}
	for k, d := range r.byKey {
		snap.Tokens = append(snap.Tokens, snapshotEntry{Key: k, Decimals: d})
	}
	if len(r.bySymbol) > 0 {
		snap.Symbols = make(map[string]int, len(r.bySymbol))
		for sym, d := range r.bySymbol {
			snap.Symbols[sym] = d
		}
	}
	r.mu.RUnlock()

	sort.Slice(snap.Tokens, func(i, j int) bool {
		a, b := snap.Tokens[i], snap.Tokens[j]
		if a.Chain != b.Chain {
			return a.Chain < b.Chain
		}
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		return a.Address < b.Address
	})

	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
