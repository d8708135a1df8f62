package main

type tickLogEvent struct {
	TsMs   int64  `json:"ts_ms"`
	Symbol string `json:"symbol"`
	Price  string `json:"price"`

	RatioNum string `json:"ratio_num"`
	RatioDen string `json:"ratio_den"`

	AmountIn  int64  `json:"amount_in,omitempty"`
	AmountOut string `json:"amount_out,omitempty"`

	// TickMs is the feed's own timestamp, when it sends one.
	TickMs int64 `json:"tick_ms,omitempty"`
}
