package units

import (
	"math/big"
	"strings"
)

// DefaultPriceScale is the display precision for rendered prices.
const DefaultPriceScale = 8

// Ratio is an exact price as a rational number. Den is never zero. The ratio
// is never reduced to lowest terms: every consumer multiplies and divides
// straight through it.
type Ratio struct {
	Num *big.Int
	Den *big.Int
}

// PriceRatioDecimals builds the exact rational equal to a price quoted at
// quoteDecimals precision. Digits beyond quoteDecimals are dropped, not
// rounded. Negative prices are rejected.
func PriceRatioDecimals(quoteDecimals int, price Amount) (Ratio, error) {
	if quoteDecimals < 0 {
		return Ratio{}, ErrDecimals.New("quote decimals must be >= 0, got %d", quoteDecimals)
	}
	p, err := Normalize(price)
	if err != nil {
		return Ratio{}, err
	}
	if p.Neg {
		return Ratio{}, ErrNegativePrice.New("price %q is negative", price.amountText())
	}

	frac := p.Frac
	if len(frac) > quoteDecimals {
		frac = frac[:quoteDecimals]
	}
	frac += strings.Repeat("0", quoteDecimals-len(frac))

	num, _ := new(big.Int).SetString(p.Int, 10)
	num.Mul(num, pow10(quoteDecimals))
	if frac != "" {
		f, _ := new(big.Int).SetString(frac, 10)
		num.Add(num, f)
	}
	return Ratio{Num: num, Den: new(big.Int).Set(pow10(quoteDecimals))}, nil
}

// ConvertUnitsByDecimals converts amount through the price ratio and rescales
// between the two minor-unit precisions, rounding half away from zero.
func ConvertUnitsByDecimals(amount *big.Int, fromDecimals, toDecimals int, r Ratio) (*big.Int, error) {
	return ConvertUnitsByDecimalsMode(amount, fromDecimals, toDecimals, r, Round)
}

// ConvertUnitsByDecimalsMode converts amount through the price ratio, then
// rescales by the precision gap. Both rounding steps use the same mode.
func ConvertUnitsByDecimalsMode(amount *big.Int, fromDecimals, toDecimals int, r Ratio, mode Mode) (*big.Int, error) {
	if fromDecimals < 0 || toDecimals < 0 {
		return nil, ErrDecimals.New("decimals must be >= 0, got %d -> %d", fromDecimals, toDecimals)
	}
	out, err := MulDivMode(amount, r.Num, r.Den, mode)
	if err != nil {
		return nil, err
	}
	if toDecimals >= fromDecimals {
		return MulDivMode(out, pow10(toDecimals-fromDecimals), oneInt, mode)
	}
	return MulDivMode(out, oneInt, pow10(fromDecimals-toDecimals), mode)
}

// DivToDecimalString renders num/den as a decimal string with exactly scale
// digits after the point, or no point at all when scale is zero. Displayed
// digits are truncated, never rounded: this is a formatter, not a rounding
// primitive. Zero never gets a sign.
func DivToDecimalString(num, den *big.Int, scale int) (string, error) {
	if den.Sign() == 0 {
		return "", ErrDivideByZero.New("zero denominator")
	}
	if scale < 0 {
		return "", ErrDecimals.New("scale must be >= 0, got %d", scale)
	}
	neg := (num.Sign() < 0) != (den.Sign() < 0)

	mag := new(big.Int).Abs(num)
	mag.Mul(mag, pow10(scale))
	mag.Quo(mag, new(big.Int).Abs(den))

	var s string
	if scale == 0 {
		s = mag.String()
	} else {
		digits := mag.String()
		if pad := scale + 1 - len(digits); pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}
		cut := len(digits) - scale
		s = digits[:cut] + "." + digits[cut:]
	}
	if neg && mag.Sign() != 0 {
		s = "-" + s
	}
	return s, nil
}

// AvgPriceArgs are the cumulative totals an average unit price is computed
// from. FilledQty is denominated in OutDecimals minor units and SpentFiat in
// FiatDecimals minor units.
type AvgPriceArgs struct {
	FilledQty    *big.Int
	SpentFiat    *big.Int
	OutDecimals  int
	FiatDecimals int
	// Scale is the display precision; zero selects DefaultPriceScale.
	Scale int
}

// AvgFiatPricePerUnit renders the average fiat price paid per whole unit
// filled. The two minor-unit bases cancel in the exact rational
// spentFiat*10^outDecimals / (filledQty*10^fiatDecimals), so the result does
// not depend on either side's precision.
func AvgFiatPricePerUnit(args AvgPriceArgs) (string, error) {
	if args.FilledQty == nil || args.FilledQty.Sign() <= 0 {
		return "", ErrQuantity.New("filled quantity must be > 0")
	}
	if args.SpentFiat == nil {
		return "", ErrQuantity.New("spent fiat required")
	}
	if args.OutDecimals < 0 || args.FiatDecimals < 0 {
		return "", ErrDecimals.New("decimals must be >= 0, got out=%d fiat=%d", args.OutDecimals, args.FiatDecimals)
	}
	scale := args.Scale
	if scale == 0 {
		scale = DefaultPriceScale
	}
	if scale < 0 {
		return "", ErrDecimals.New("scale must be >= 0, got %d", scale)
	}

	num := new(big.Int).Mul(args.SpentFiat, pow10(args.OutDecimals))
	den := new(big.Int).Mul(args.FilledQty, pow10(args.FiatDecimals))
	return DivToDecimalString(num, den, scale)
}
