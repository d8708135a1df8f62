package units

import (
	"math/big"
	"strings"
)

// ToMinor converts a human-readable amount into minor units at the given
// precision, rounding half away from zero.
func ToMinor(amount Amount, decimals int) (*big.Int, error) {
	return ToMinorMode(amount, decimals, Round)
}

// ToMinorMode converts amount into decimals minor units under mode.
//
// The fraction is padded or cut to decimals+1 digits: the first decimals
// digits are kept and the last acts as a rounding indicator, where only its
// non-zero-ness matters. The magnitude is rounded before the sign is applied,
// so Floor behaves as truncation toward zero on negative inputs rather than
// mathematical floor. Callers depend on that order; do not change it.
func ToMinorMode(amount Amount, decimals int, mode Mode) (*big.Int, error) {
	if decimals < 0 {
		return nil, ErrDecimals.New("decimals must be >= 0, got %d", decimals)
	}
	p, err := Normalize(amount)
	if err != nil {
		return nil, err
	}

	frac := p.Frac
	if len(frac) > decimals+1 {
		frac = frac[:decimals+1]
	}
	frac += strings.Repeat("0", decimals+1-len(frac))
	keep, indicator := frac[:decimals], frac[decimals]

	out, _ := new(big.Int).SetString(p.Int, 10)
	out.Mul(out, pow10(decimals))
	if keep != "" {
		kept, _ := new(big.Int).SetString(keep, 10)
		out.Add(out, kept)
	}
	if indicator != '0' {
		roundAdjust(out, mode)
	}
	if p.Neg {
		out.Neg(out)
	}
	return out, nil
}

// FromMinor renders minor units as a decimal string with exactly decimals
// fractional digits. The output is fixed width: trailing zeros are kept, and
// no radix point is emitted when decimals is zero. Zero never gets a sign.
func FromMinor(minor *big.Int, decimals int) (string, error) {
	if decimals < 0 {
		return "", ErrDecimals.New("decimals must be >= 0, got %d", decimals)
	}
	abs := new(big.Int).Abs(minor)
	neg := minor.Sign() < 0

	if decimals == 0 {
		if neg {
			return "-" + abs.String(), nil
		}
		return abs.String(), nil
	}

	q, r := new(big.Int).QuoRem(abs, pow10(decimals), new(big.Int))
	frac := r.String()
	if pad := decimals - len(frac); pad > 0 {
		frac = strings.Repeat("0", pad) + frac
	}
	s := q.String() + "." + frac
	if neg {
		s = "-" + s
	}
	return s, nil
}
