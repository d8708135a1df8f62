package erc20

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestParseDecimalsResult(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		out := make([]byte, 32)
		out[31] = 6
		d, err := parseDecimalsResult(out)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if d != 6 {
			t.Fatalf("got %d want 6", d)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := parseDecimalsResult(nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		out := make([]byte, 32)
		out[30] = 1 // 256
		if _, err := parseDecimalsResult(out); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestParseSymbolResult_DynamicString(t *testing.T) {
	// offset=32, len=4, "USDC" padded to a word.
	raw := "0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000004" +
		"5553444300000000000000000000000000000000000000000000000000000000"
	out, err := hex.DecodeString(raw)
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	sym, err := parseSymbolResult(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sym != "USDC" {
		t.Fatalf("got %q want %q", sym, "USDC")
	}
}

func TestParseSymbolResult_Bytes32(t *testing.T) {
	out := make([]byte, 32)
	copy(out, "MKR")
	sym, err := parseSymbolResult(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sym != "MKR" {
		t.Fatalf("got %q want %q", sym, "MKR")
	}
}

func TestParseSymbolResult_BadOffsets(t *testing.T) {
	// Offset pointing past the payload.
	out := make([]byte, 64)
	out[31] = 0xFF
	if _, err := parseSymbolResult(out); err == nil {
		t.Fatal("expected error")
	}

	// Length overrunning the payload.
	out = bytes.Repeat([]byte{0}, 64)
	out[31] = 32 // offset
	out[63] = 64 // claimed length, but no data follows
	if _, err := parseSymbolResult(out); err == nil {
		t.Fatal("expected error")
	}
}
