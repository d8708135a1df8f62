package main

import (
	"log"

	"token-units/internal/jsonl"
)

type convertLogEvent struct {
	TsMs int64  `json:"ts_ms"`
	Op   string `json:"op"`

	Amount   string `json:"amount,omitempty"`
	Decimals int    `json:"decimals,omitempty"`
	From     int    `json:"from,omitempty"`
	To       int    `json:"to,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Bps      int64  `json:"bps,omitempty"`

	Result string `json:"result,omitempty"`
	Err    string `json:"err,omitempty"`
}

func logConvertEvent(w *jsonl.Writer, ev convertLogEvent) {
	if w == nil {
		return
	}
	if err := w.Write(ev); err != nil {
		log.Printf("[warn] audit log write failed: %v", err)
	}
}
