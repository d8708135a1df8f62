package erc20

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"token-units/internal/registry"
)

var erc20DecimalsSelector = crypto.Keccak256([]byte("decimals()"))[:4]
var erc20SymbolSelector = crypto.Keccak256([]byte("symbol()"))[:4]

// Metadata is the on-chain token metadata the decimals registry is fed from.
type Metadata struct {
	Symbol   string
	Decimals int
}

// Fetch reads a token's decimals() and symbol() over RPC. The core math
// never touches this; it only ever sees the resolved decimal count.
func Fetch(ctx context.Context, rpcURL string, token common.Address) (Metadata, error) {
	if strings.TrimSpace(rpcURL) == "" {
		return Metadata{}, fmt.Errorf("RPC URL missing")
	}
	if (token == common.Address{}) {
		return Metadata{}, fmt.Errorf("token address missing")
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return Metadata{}, fmt.Errorf("dial RPC: %w", err)
	}
	defer client.Close()

	return fetch(ctx, client, token)
}

func fetch(ctx context.Context, client *ethclient.Client, token common.Address) (Metadata, error) {
	out, err := client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: erc20DecimalsSelector}, nil)
	if err != nil {
		return Metadata{}, fmt.Errorf("decimals(%s): %w", token.Hex(), err)
	}
	decimals, err := parseDecimalsResult(out)
	if err != nil {
		return Metadata{}, fmt.Errorf("decimals(%s): %w", token.Hex(), err)
	}

	out, err = client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: erc20SymbolSelector}, nil)
	if err != nil {
		return Metadata{}, fmt.Errorf("symbol(%s): %w", token.Hex(), err)
	}
	symbol, err := parseSymbolResult(out)
	if err != nil {
		return Metadata{}, fmt.Errorf("symbol(%s): %w", token.Hex(), err)
	}

	return Metadata{Symbol: symbol, Decimals: decimals}, nil
}

// parseDecimalsResult decodes a decimals() return value. ERC-20 declares
// uint8, so anything above 255 means the call hit a non-token contract.
func parseDecimalsResult(out []byte) (int, error) {
	if len(out) == 0 {
		return 0, fmt.Errorf("empty result")
	}
	v := new(big.Int).SetBytes(out)
	if v.Cmp(big.NewInt(255)) > 0 {
		return 0, fmt.Errorf("decimals %s out of uint8 range", v)
	}
	return int(v.Int64()), nil
}

// parseSymbolResult decodes a symbol() return value. Most tokens return an
// ABI dynamic string; a few legacy ones return a right-padded bytes32.
func parseSymbolResult(out []byte) (string, error) {
	if len(out) == 0 {
		return "", fmt.Errorf("empty result")
	}
	if len(out) == 32 {
		return string(bytes.TrimRight(out, "\x00")), nil
	}
	if len(out) < 64 {
		return "", fmt.Errorf("short result: %d bytes", len(out))
	}

	offset := new(big.Int).SetBytes(out[:32])
	if !offset.IsInt64() || offset.Int64()+32 > int64(len(out)) {
		return "", fmt.Errorf("bad string offset %s", offset)
	}
	start := offset.Int64()
	strLen := new(big.Int).SetBytes(out[start : start+32])
	if !strLen.IsInt64() || start+32+strLen.Int64() > int64(len(out)) {
		return "", fmt.Errorf("bad string length %s", strLen)
	}
	return string(out[start+32 : start+32+strLen.Int64()]), nil
}

// Resolve fetches metadata for each token and records its decimal count in
// reg under the given chain identity. Tokens that fail are reported together
// after the rest have been resolved.
func Resolve(ctx context.Context, rpcURL, chain string, chainID int64, tokens []common.Address, reg *registry.Registry) error {
	if reg == nil {
		return fmt.Errorf("registry required")
	}
	if strings.TrimSpace(rpcURL) == "" {
		return fmt.Errorf("RPC URL missing")
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return fmt.Errorf("dial RPC: %w", err)
	}
	defer client.Close()

	var failed []string
	for _, token := range tokens {
		md, err := fetch(ctx, client, token)
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", token.Hex(), err))
			continue
		}
		key := registry.Key{
			Chain:   chain,
			Symbol:  md.Symbol,
			Address: strings.ToLower(token.Hex()),
			ChainID: chainID,
		}
		if err := reg.Set(key, md.Decimals); err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", token.Hex(), err))
			continue
		}
		// Also record the bare-symbol alias so decimals resolve without a
		// full chain identity.
		if err := reg.SetSymbol(md.Symbol, md.Decimals); err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", token.Hex(), err))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("resolve failed for %d token(s): %s", len(failed), strings.Join(failed, "; "))
	}
	return nil
}
