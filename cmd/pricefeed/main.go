package main

import (
	"context"
	"flag"
	"log"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"token-units/internal/dotenv"
	"token-units/internal/feed"
	"token-units/internal/jsonl"
	"token-units/internal/units"
)

func main() {
	log.SetFlags(0)

	if err := dotenv.Load(); err != nil {
		log.Printf("[warn] %v", err)
	}

	var (
		urlFlag  = flag.String("url", "", "Ticker WebSocket URL (default: FEED_WS_URL env)")
		symbols  = flag.String("symbols", "", "Comma-separated symbols to subscribe")
		quoteDec = flag.Int("quote-decimals", 8, "Quote decimals used to build the price ratio")
		amount   = flag.Int64("amount", 0, "Optional amount (minor units) to convert at each tick")
		fromDec  = flag.Int("from", 6, "Source decimals for -amount conversion")
		toDec    = flag.Int("to", 6, "Target decimals for -amount conversion")
		logPath  = flag.String("log", "", "Optional JSONL output path")
	)
	flag.Parse()

	url := strings.TrimSpace(*urlFlag)
	if url == "" {
		url = dotenv.String("FEED_WS_URL")
	}
	if url == "" {
		log.Fatalf("[fatal] -url or FEED_WS_URL required")
	}

	subs := splitSymbols(*symbols)
	if len(subs) == 0 {
		log.Fatalf("[fatal] -symbols required")
	}

	out := jsonl.New(*logPath)
	defer out.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ticks, errs := feed.Start(ctx, url, subs, feed.Options{})
	log.Printf("subscribed to %s (%d symbols)", url, len(subs))

	for {
		select {
		case <-ctx.Done():
			log.Printf("shutting down")
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			log.Printf("[warn] feed: %v", err)
		case tick, ok := <-ticks:
			if !ok {
				return
			}
			handleTick(out, tick, *quoteDec, *amount, *fromDec, *toDec)
		}
	}
}

func handleTick(out *jsonl.Writer, tick feed.Tick, quoteDec int, amount int64, fromDec, toDec int) {
	ratio, err := units.PriceRatioDecimals(quoteDec, units.Text(tick.Price))
	if err != nil {
		log.Printf("[warn] %s price %q: %v", tick.Symbol, tick.Price, err)
		return
	}

	ev := tickLogEvent{
		TsMs:     time.Now().UnixMilli(),
		Symbol:   tick.Symbol,
		Price:    tick.Price,
		RatioNum: ratio.Num.String(),
		RatioDen: ratio.Den.String(),
		TickMs:   tick.TsMs,
	}

	if amount > 0 {
		converted, err := units.ConvertUnitsByDecimals(big.NewInt(amount), fromDec, toDec, ratio)
		if err != nil {
			log.Printf("[warn] convert %d via %s: %v", amount, tick.Price, err)
		} else {
			ev.AmountIn = amount
			ev.AmountOut = converted.String()
		}
	}

	log.Printf("%s price=%s ratio=%s/%s out=%s", tick.Symbol, tick.Price, ev.RatioNum, ev.RatioDen, ev.AmountOut)
	if out != nil {
		if err := out.Write(ev); err != nil {
			log.Printf("[warn] tick log write failed: %v", err)
		}
	}
}

func splitSymbols(s string) []string {
	var out []string
	for _, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw != "" {
			out = append(out, raw)
		}
	}
	return out
}
