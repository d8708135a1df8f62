// Package feed streams ticker prices over a WebSocket so they can be turned
// into exact price ratios. The stream carries decimal strings end to end;
// nothing here parses a price into a float.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const DefaultPingInterval = 10 * time.Second

// Tick is one price observation for a symbol. Price stays a decimal string;
// converting it to a ratio is the consumer's job.
type Tick struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
	TsMs   int64  `json:"ts_ms"`
}

type subscribeRequest struct {
	Op      string   `json:"op"`
	Symbols []string `json:"symbols"`
}

type Options struct {
	PingInterval time.Duration

	BackoffMin time.Duration
	BackoffMax time.Duration

	OutBuffer int
}

func (o Options) withDefaults() Options {
	if o.PingInterval <= 0 {
		o.PingInterval = DefaultPingInterval
	}
	if o.BackoffMin <= 0 {
		o.BackoffMin = 500 * time.Millisecond
	}
	if o.BackoffMax <= 0 {
		o.BackoffMax = 30 * time.Second
	}
	if o.OutBuffer <= 0 {
		o.OutBuffer = 128
	}
	return o
}

// Start connects to the ticker WebSocket and emits decoded ticks until ctx is
// done, reconnecting with jittered backoff. Both channels close on shutdown.
func Start(ctx context.Context, url string, symbols []string, opts Options) (<-chan Tick, <-chan error) {
	opts = opts.withDefaults()

	out := make(chan Tick, opts.OutBuffer)
	errs := make(chan error, 16)

	go func() {
		defer close(out)
		defer close(errs)

		backoff := opts.BackoffMin
		for {
			if ctx.Err() != nil {
				return
			}

			conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
			if err != nil {
				emitErr(errs, fmt.Errorf("feed dial: %w", err))
				sleepWithJitter(ctx, backoff)
				backoff = nextBackoff(backoff, opts.BackoffMax)
				continue
			}

			backoff = opts.BackoffMin

			if err := runSession(ctx, conn, symbols, opts.PingInterval, out, errs); err != nil && ctx.Err() == nil {
				emitErr(errs, err)
			}

			_ = conn.Close()
			if ctx.Err() != nil {
				return
			}
			sleepWithJitter(ctx, backoff)
			backoff = nextBackoff(backoff, opts.BackoffMax)
		}
	}()

	return out, errs
}

func runSession(
	ctx context.Context,
	conn *websocket.Conn,
	symbols []string,
	pingInterval time.Duration,
	out chan<- Tick,
	errs chan<- error,
) error {
	if conn == nil {
		return fmt.Errorf("feed session: nil conn")
	}

	req, err := json.Marshal(subscribeRequest{Op: "subscribe", Symbols: symbols})
	if err != nil {
		return fmt.Errorf("feed subscribe marshal: %w", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, req); err != nil {
		return fmt.Errorf("feed subscribe write: %w", err)
	}

	var writeMu sync.Mutex
	stop := make(chan struct{})
	var stopOnce sync.Once
	stopAll := func() { stopOnce.Do(func() { close(stop) }) }

	go func() {
		defer stopAll()
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-t.C:
				writeMu.Lock()
				_ = conn.SetWriteDeadline(time.Now().Add(3 * time.Second))
				werr := conn.WriteMessage(websocket.PingMessage, nil)
				writeMu.Unlock()
				if werr != nil {
					emitErr(errs, fmt.Errorf("feed ping: %w", werr))
					_ = conn.Close()
					return
				}
			}
		}
	}()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			stopAll()
			if errors.Is(err, websocket.ErrCloseSent) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("feed read: %w", err)
		}

		if typ != websocket.TextMessage || len(msg) == 0 {
			continue
		}

		var tick Tick
		if err := json.Unmarshal(msg, &tick); err != nil {
			emitErr(errs, fmt.Errorf("feed json decode: %w", err))
			continue
		}
		if tick.Symbol == "" || tick.Price == "" {
			continue
		}

		// Drop rather than block: a stale tick is worthless.
		select {
		case out <- tick:
		default:
		}
	}
}

func emitErr(ch chan<- error, err error) {
	if err == nil {
		return
	}
	select {
	case ch <- err:
	default:
	}
}

func nextBackoff(cur, max time.Duration) time.Duration {
	next := cur * 2
	if next > max {
		return max
	}
	return next
}

func sleepWithJitter(ctx context.Context, d time.Duration) {
	jitter := time.Duration(rand.Int63n(int64(d)/2 + 1))
	select {
	case <-ctx.Done():
	case <-time.After(d + jitter):
	}
}
