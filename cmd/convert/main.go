package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"token-units/internal/dotenv"
	"token-units/internal/jsonl"
	"token-units/internal/registry"
	"token-units/internal/units"
)

func main() {
	log.SetFlags(0)

	if err := dotenv.Load(); err != nil {
		log.Printf("[warn] %v", err)
	}

	var (
		op       = flag.String("op", "", "Operation: tominor | fromminor | scale | applybps | slippage-down | slippage-up | split | ratio | convert | avgprice")
		amount   = flag.String("amount", "", "Human amount (tominor/ratio) or integer minor units (everything else)")
		decimals = flag.Int("decimals", -1, "Decimal precision for tominor/fromminor")
		fromDec  = flag.Int("from", -1, "Source decimals for scale/convert")
		toDec    = flag.Int("to", -1, "Target decimals for scale/convert")
		modeName = flag.String("mode", "", "Rounding mode override: floor | ceil | round | bankers")
		bps      = flag.Int64("bps", 0, "Basis points for applybps/slippage-down/slippage-up")
		lot      = flag.String("lot", "", "Lot size for split")
		price    = flag.String("price", "", "Price string for ratio/convert")
		quoteDec = flag.Int("quote-decimals", -1, "Quote decimals for ratio/convert")
		filled   = flag.String("filled", "", "Cumulative filled quantity (minor units) for avgprice")
		spent    = flag.String("spent", "", "Cumulative spent fiat (minor units) for avgprice")
		outDec   = flag.Int("out-decimals", -1, "Filled-side decimals for avgprice")
		fiatDec  = flag.Int("fiat-decimals", -1, "Fiat-side decimals for avgprice")
		scale    = flag.Int("scale", 0, "Display precision for avgprice (0 = default 8)")
		symbol   = flag.String("symbol", "", "Resolve -decimals from a registry snapshot by symbol")
		regPath  = flag.String("registry", "", "Registry snapshot path (see cmd/resolve)")
		logPath  = flag.String("log", "", "Optional JSONL audit log path")
	)
	flag.Parse()

	if *op == "" {
		log.Fatalf("[fatal] -op required")
	}

	if *symbol != "" {
		d, err := lookupSymbolDecimals(*regPath, *symbol)
		if err != nil {
			log.Fatalf("[fatal] %v", err)
		}
		*decimals = d
	}

	auditLog := jsonl.New(*logPath)
	defer auditLog.Close()

	result, err := run(*op, args{
		amount:   *amount,
		decimals: *decimals,
		fromDec:  *fromDec,
		toDec:    *toDec,
		modeName: *modeName,
		bps:      *bps,
		lot:      *lot,
		price:    *price,
		quoteDec: *quoteDec,
		filled:   *filled,
		spent:    *spent,
		outDec:   *outDec,
		fiatDec:  *fiatDec,
		scale:    *scale,
	})

	logConvertEvent(auditLog, convertLogEvent{
		TsMs:     time.Now().UnixMilli(),
		Op:       *op,
		Amount:   *amount,
		Decimals: *decimals,
		From:     *fromDec,
		To:       *toDec,
		Mode:     *modeName,
		Bps:      *bps,
		Result:   result,
		Err:      errString(err),
	})

	if err != nil {
		log.Fatalf("[fatal] %s: %v", *op, err)
	}
	fmt.Println(result)
}

type args struct {
	amount   string
	decimals int
	fromDec  int
	toDec    int
	modeName string
	bps      int64
	lot      string
	price    string
	quoteDec int
	filled   string
	spent    string
	outDec   int
	fiatDec  int
	scale    int
}

func run(op string, a args) (string, error) {
	switch op {
	case "tominor":
		mode, err := pickMode(a.modeName, units.Round)
		if err != nil {
			return "", err
		}
		m, err := units.ToMinorMode(units.Text(a.amount), a.decimals, mode)
		if err != nil {
			return "", err
		}
		return m.String(), nil

	case "fromminor":
		minor, err := parseBig("amount", a.amount)
		if err != nil {
			return "", err
		}
		return units.FromMinor(minor, a.decimals)

	case "scale":
		mode, err := pickMode(a.modeName, units.Floor)
		if err != nil {
			return "", err
		}
		x, err := parseBig("amount", a.amount)
		if err != nil {
			return "", err
		}
		out, err := units.ScaleUnitsMode(x, a.fromDec, a.toDec, mode)
		if err != nil {
			return "", err
		}
		return out.String(), nil

	case "applybps":
		mode, err := pickMode(a.modeName, units.Round)
		if err != nil {
			return "", err
		}
		x, err := parseBig("amount", a.amount)
		if err != nil {
			return "", err
		}
		out, err := units.ApplyBpsMode(x, a.bps, mode)
		if err != nil {
			return "", err
		}
		return out.String(), nil

	case "slippage-down":
		x, err := parseBig("amount", a.amount)
		if err != nil {
			return "", err
		}
		return units.SlippageDown(x, a.bps).String(), nil

	case "slippage-up":
		x, err := parseBig("amount", a.amount)
		if err != nil {
			return "", err
		}
		return units.SlippageUp(x, a.bps).String(), nil

	case "split":
		x, err := parseBig("amount", a.amount)
		if err != nil {
			return "", err
		}
		lot, err := parseBig("lot", a.lot)
		if err != nil {
			return "", err
		}
		chunks, err := units.SplitAmount(x, lot)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(chunks))
		for i, c := range chunks {
			parts[i] = c.String()
		}
		return strings.Join(parts, ","), nil

	case "ratio":
		r, err := units.PriceRatioDecimals(a.quoteDec, units.Text(a.price))
		if err != nil {
			return "", err
		}
		return r.Num.String() + "/" + r.Den.String(), nil

	case "convert":
		mode, err := pickMode(a.modeName, units.Round)
		if err != nil {
			return "", err
		}
		x, err := parseBig("amount", a.amount)
		if err != nil {
			return "", err
		}
		r, err := units.PriceRatioDecimals(a.quoteDec, units.Text(a.price))
		if err != nil {
			return "", err
		}
		out, err := units.ConvertUnitsByDecimalsMode(x, a.fromDec, a.toDec, r, mode)
		if err != nil {
			return "", err
		}
		return out.String(), nil

	case "avgprice":
		filled, err := parseBig("filled", a.filled)
		if err != nil {
			return "", err
		}
		spent, err := parseBig("spent", a.spent)
		if err != nil {
			return "", err
		}
		return units.AvgFiatPricePerUnit(units.AvgPriceArgs{
			FilledQty:    filled,
			SpentFiat:    spent,
			OutDecimals:  a.outDec,
			FiatDecimals: a.fiatDec,
			Scale:        a.scale,
		})

	default:
		return "", fmt.Errorf("unknown -op %q", op)
	}
}

func pickMode(name string, fallback units.Mode) (units.Mode, error) {
	if strings.TrimSpace(name) == "" {
		return fallback, nil
	}
	mode, ok := units.ParseMode(name)
	if !ok {
		return 0, fmt.Errorf("unknown -mode %q", name)
	}
	return mode, nil
}

func parseBig(name, s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("-%s required", name)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid -%s %q (want a base-10 integer)", name, s)
	}
	return v, nil
}

func lookupSymbolDecimals(regPath, symbol string) (int, error) {
	if strings.TrimSpace(regPath) == "" {
		return 0, fmt.Errorf("-symbol needs -registry")
	}
	reg, found, err := registry.Load(regPath)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("registry snapshot %s not found", regPath)
	}
	if d, ok := reg.Symbol(symbol); ok {
		return d, nil
	}
	return 0, fmt.Errorf("symbol %q not in registry %s", symbol, regPath)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
