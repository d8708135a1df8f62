package units

import "math/big"

// ScaleUnits rescales amount from one minor-unit precision to another,
// flooring when precision is discarded. Flooring is the conservative default
// for a narrowing conversion; widening is always exact.
func ScaleUnits(amount *big.Int, fromDecimals, toDecimals int) (*big.Int, error) {
	return ScaleUnitsMode(amount, fromDecimals, toDecimals, Floor)
}

// ScaleUnitsMode rescales amount from fromDecimals to toDecimals precision
// under the given rounding mode. Only a narrowing conversion rounds.
func ScaleUnitsMode(amount *big.Int, fromDecimals, toDecimals int, mode Mode) (*big.Int, error) {
	if fromDecimals < 0 || toDecimals < 0 {
		return nil, ErrDecimals.New("decimals must be >= 0, got %d -> %d", fromDecimals, toDecimals)
	}
	switch {
	case fromDecimals == toDecimals:
		return new(big.Int).Set(amount), nil
	case toDecimals > fromDecimals:
		return new(big.Int).Mul(amount, pow10(toDecimals-fromDecimals)), nil
	default:
		return DivRound(amount, pow10(fromDecimals-toDecimals), mode)
	}
}
