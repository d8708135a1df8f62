package registry

import (
	"fmt"
	"strings"
	"sync"
)

// Key identifies a token across ledgers. Optional fields stay empty when not
// applicable: Address for contract tokens, Issuer for issued assets, ChainID
// for EVM networks.
type Key struct {
	Chain   string `json:"chain,omitempty"`
	Symbol  string `json:"symbol"`
	Address string `json:"address,omitempty"`
	Issuer  string `json:"issuer,omitempty"`
	ChainID int64  `json:"chain_id,omitempty"`
}

func (k Key) normalized() Key {
	k.Chain = strings.ToLower(strings.TrimSpace(k.Chain))
	k.Symbol = strings.ToUpper(strings.TrimSpace(k.Symbol))
	k.Address = strings.ToLower(strings.TrimSpace(k.Address))
	k.Issuer = strings.TrimSpace(k.Issuer)
	return k
}

// Registry maps token identities to minor-unit decimal counts. It is an
// explicit object owned by the caller; there is no process-wide table. Writes
// are last-write-wins. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	byKey    map[Key]int
	bySymbol map[string]int
}

func New() *Registry {
	return &Registry{
		byKey:    make(map[Key]int),
		bySymbol: make(map[string]int),
	}
}

// Set records the decimal count for a token identity.
func (r *Registry) Set(k Key, decimals int) error {
	k = k.normalized()
	if k.Symbol == "" {
		return fmt.Errorf("symbol required")
	}
	if decimals < 0 {
		return fmt.Errorf("decimals must be >= 0, got %d", decimals)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[k] = decimals
	return nil
}

// Get returns the decimal count for a token identity.
func (r *Registry) Get(k Key) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byKey[k.normalized()]
	return d, ok
}

// SetSymbol records a chain-independent decimal count for a bare symbol.
func (r *Registry) SetSymbol(symbol string, decimals int) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return fmt.Errorf("symbol required")
	}
	if decimals < 0 {
		return fmt.Errorf("decimals must be >= 0, got %d", decimals)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bySymbol[symbol] = decimals
	return nil
}

// Symbol returns the chain-independent decimal count for a bare symbol.
func (r *Registry) Symbol(symbol string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	return d, ok
}

// Len reports how many full-key entries are recorded.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKey)
}
