package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"token-units/internal/dotenv"
	"token-units/internal/erc20"
	"token-units/internal/registry"
)

func main() {
	log.SetFlags(0)

	if err := dotenv.Load(); err != nil {
		log.Printf("[warn] %v", err)
	}

	var (
		tokensFlag = flag.String("tokens", "", "Comma-separated token contract addresses to resolve")
		chain      = flag.String("chain", "polygon", "Chain name recorded in the registry")
		chainID    = flag.Int64("chain-id", 0, "Chain ID recorded in the registry (default: CHAIN_ID env)")
		outPath    = flag.String("out", "out/decimals.json", "Registry snapshot path (merged if it exists)")
		timeout    = flag.Duration("timeout", 30*time.Second, "Total RPC timeout")
	)
	flag.Parse()

	rpcURL := dotenv.String("RPC_URL", "RPC_WS_URL")
	if rpcURL == "" {
		log.Fatalf("[fatal] RPC_URL or RPC_WS_URL required (set RPC_URL in .env)")
	}
	if *chainID == 0 {
		*chainID = dotenv.Int64(0, "CHAIN_ID")
	}

	tokens, err := parseTokenList(*tokensFlag)
	if err != nil {
		log.Fatalf("[fatal] %v", err)
	}
	if len(tokens) == 0 {
		log.Fatalf("[fatal] -tokens required (comma-separated hex addresses)")
	}

	reg, found, err := registry.Load(*outPath)
	if err != nil {
		log.Fatalf("[fatal] load registry: %v", err)
	}
	if found {
		log.Printf("merging into existing snapshot %s (%d entries)", *outPath, reg.Len())
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := erc20.Resolve(ctx, rpcURL, *chain, *chainID, tokens, reg); err != nil {
		log.Fatalf("[fatal] %v", err)
	}

	if err := reg.Save(*outPath); err != nil {
		log.Fatalf("[fatal] save registry: %v", err)
	}

	for _, token := range tokens {
		fmt.Printf("resolved %s\n", strings.ToLower(token.Hex()))
	}
	fmt.Printf("snapshot: %s (%d entries)\n", *outPath, reg.Len())
}

func parseTokenList(s string) ([]common.Address, error) {
	var out []common.Address
	for _, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("invalid token address %q", raw)
		}
		out = append(out, common.HexToAddress(raw))
	}
	return out, nil
}
