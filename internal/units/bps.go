package units

import "math/big"

// BpsScale is the number of basis points in 100%.
const BpsScale = 10_000

var bpsScaleInt = big.NewInt(BpsScale)

// MulDiv computes a*b/c rounding half away from zero.
func MulDiv(a, b, c *big.Int) (*big.Int, error) {
	return MulDivMode(a, b, c, Round)
}

// MulDivMode computes a*b/c under the given rounding mode. The product is
// exact; only the final division rounds.
func MulDivMode(a, b, c *big.Int, mode Mode) (*big.Int, error) {
	return DivRound(new(big.Int).Mul(a, b), c, mode)
}

// ApplyBps scales units by bps/10000, rounding half away from zero.
func ApplyBps(units *big.Int, bps int64) (*big.Int, error) {
	return ApplyBpsMode(units, bps, Round)
}

// ApplyBpsMode scales units by bps/10000 under the given rounding mode.
func ApplyBpsMode(units *big.Int, bps int64, mode Mode) (*big.Int, error) {
	return MulDivMode(units, big.NewInt(bps), bpsScaleInt, mode)
}

// ClampBps limits bps to [0, 10000].
func ClampBps(bps int64) int64 {
	if bps < 0 {
		return 0
	}
	if bps > BpsScale {
		return BpsScale
	}
	return bps
}

// ApplySlippage reduces amountOut by bps, always flooring: slippage
// protection on an exact-input trade must never round in the trader's favor.
// Negative bps is rejected.
func ApplySlippage(amountOut *big.Int, bps int64) (*big.Int, error) {
	if bps < 0 {
		return nil, ErrBps.New("bps must be >= 0, got %d", bps)
	}
	return MulDivMode(amountOut, big.NewInt(BpsScale-bps), bpsScaleInt, Floor)
}

// SlippageDown is ApplySlippage with bps clamped to [0, 10000] instead of
// rejected.
func SlippageDown(amount *big.Int, bps int64) *big.Int {
	// Denominator is the constant 10000; the division cannot fail.
	out, _ := MulDivMode(amount, big.NewInt(BpsScale-ClampBps(bps)), bpsScaleInt, Floor)
	return out
}

// SlippageUp inflates amount by clamped bps with ceiling division, giving a
// maximum-input bound for exact-output trades that never rounds in the
// trader's favor.
func SlippageUp(amount *big.Int, bps int64) *big.Int {
	out, _ := MulDivMode(amount, big.NewInt(BpsScale+ClampBps(bps)), bpsScaleInt, Ceil)
	return out
}
