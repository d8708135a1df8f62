package units

import (
	"strconv"
	"strings"
	"unicode"
)

// Amount is a human-readable amount: either literal text or a plain number.
// A Number is coerced to its text form exactly once, before parsing, so the
// rest of the package only ever sees digit strings.
type Amount interface {
	amountText() string
}

// Text is a decimal amount given as a string, e.g. "1_234.56" or "1.234,56".
type Text string

func (t Text) amountText() string { return string(t) }

// Number is a decimal amount given as a plain number.
type Number float64

func (n Number) amountText() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Parsed is the sign/magnitude view of a decimal amount. Int carries no
// leading zeros (except the single digit "0"); Frac may be empty.
type Parsed struct {
	Neg  bool
	Int  string
	Frac string
}

// Normalize splits an amount into sign, integer digits and fraction digits.
//
// Underscores and internal whitespace are grouping and are dropped. The last
// occurrence of '.' or ',' is the radix point, whichever character shows up
// later; any earlier occurrence of either is grouping. That accepts both US
// and EU separator conventions without a locale knob: position decides, not
// the character.
func Normalize(amount Amount) (Parsed, error) {
	raw := amount.amountText()
	s := strings.TrimSpace(raw)
	if s == "" {
		return Parsed{}, ErrFormat.New("empty amount")
	}

	var p Parsed
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		p.Neg = true
		s = s[1:]
	}

	s = stripGrouping(s)

	intPart, fracPart := s, ""
	if radix := strings.LastIndexAny(s, ".,"); radix >= 0 {
		intPart, fracPart = s[:radix], s[radix+1:]
	}
	intPart = strings.Map(dropSeparator, intPart)

	if intPart == "" && fracPart == "" {
		return Parsed{}, ErrFormat.New("no digits in %q", raw)
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return Parsed{}, ErrFormat.New("non-digit characters in %q", raw)
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	p.Int = intPart
	p.Frac = fracPart
	return p, nil
}

func stripGrouping(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func dropSeparator(r rune) rune {
	if r == '.' || r == ',' {
		return -1
	}
	return r
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
