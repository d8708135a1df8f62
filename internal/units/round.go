package units

import "math/big"

// Mode selects how a discarded remainder adjusts a quotient.
type Mode int

const (
	// Floor rounds toward negative infinity.
	Floor Mode = iota
	// Ceil rounds toward positive infinity.
	Ceil
	// Round rounds half away from zero.
	Round
	// Bankers rounds half to even.
	Bankers
)

func (m Mode) String() string {
	switch m {
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	case Round:
		return "round"
	case Bankers:
		return "bankers"
	}
	return "unknown"
}

// ParseMode maps a mode name (as accepted on the command line) to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "floor":
		return Floor, true
	case "ceil":
		return Ceil, true
	case "round":
		return Round, true
	case "bankers":
		return Bankers, true
	}
	return 0, false
}

var oneInt = big.NewInt(1)

// DivRound divides num by den under the given rounding mode. This is the
// single rounding primitive: every mode-sensitive operation in the package
// routes through here so tie-break behavior stays consistent.
func DivRound(num, den *big.Int, mode Mode) (*big.Int, error) {
	if den.Sign() == 0 {
		return nil, ErrDivideByZero.New("divide %s by zero", num.String())
	}

	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q, nil
	}
	neg := (num.Sign() < 0) != (den.Sign() < 0)

	switch mode {
	case Floor:
		if neg {
			q.Sub(q, oneInt)
		}
	case Ceil:
		if !neg {
			q.Add(q, oneInt)
		}
	case Round:
		if twiceAbs(r).CmpAbs(den) >= 0 {
			stepAwayFromZero(q, neg)
		}
	case Bankers:
		switch twiceAbs(r).CmpAbs(den) {
		case 1:
			stepAwayFromZero(q, neg)
		case 0:
			// Exact tie: adjust only if the truncated quotient is odd.
			if q.Bit(0) == 1 {
				stepAwayFromZero(q, neg)
			}
		}
	}
	return q, nil
}

func twiceAbs(r *big.Int) *big.Int {
	return new(big.Int).Lsh(new(big.Int).Abs(r), 1)
}

// stepAwayFromZero moves the truncated quotient one unit away from zero; neg
// is the sign of the exact (pre-truncation) result.
func stepAwayFromZero(q *big.Int, neg bool) {
	if neg {
		q.Sub(q, oneInt)
	} else {
		q.Add(q, oneInt)
	}
}

// roundAdjust adds a single unit in the last place to a truncated
// non-negative magnitude whose discarded next digit was non-zero. Floor never
// adjusts; Ceil and Round always do; Bankers adjusts only an odd base.
// Used by the minor-unit codec, which rounds the magnitude before applying
// the sign.
func roundAdjust(base *big.Int, mode Mode) {
	switch mode {
	case Ceil, Round:
		base.Add(base, oneInt)
	case Bankers:
		if base.Bit(0) == 1 {
			base.Add(base, oneInt)
		}
	}
}
