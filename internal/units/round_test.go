package units

import (
	"math/big"
	"testing"
)

func divRound(t *testing.T, num, den int64, mode Mode) int64 {
	t.Helper()
	q, err := DivRound(big.NewInt(num), big.NewInt(den), mode)
	if err != nil {
		t.Fatalf("DivRound(%d, %d, %s): %v", num, den, mode, err)
	}
	return q.Int64()
}

func TestDivRound_Exact(t *testing.T) {
	for _, mode := range []Mode{Floor, Ceil, Round, Bankers} {
		if got := divRound(t, 10, 2, mode); got != 5 {
			t.Fatalf("%s: got %d want 5", mode, got)
		}
		if got := divRound(t, -10, 2, mode); got != -5 {
			t.Fatalf("%s: got %d want -5", mode, got)
		}
	}
}

func TestDivRound_Floor(t *testing.T) {
	if got := divRound(t, 7, 2, Floor); got != 3 {
		t.Fatalf("got %d want 3", got)
	}
	if got := divRound(t, -7, 2, Floor); got != -4 {
		t.Fatalf("got %d want -4", got)
	}
	if got := divRound(t, 7, -2, Floor); got != -4 {
		t.Fatalf("got %d want -4", got)
	}
}

func TestDivRound_Ceil(t *testing.T) {
	if got := divRound(t, 7, 2, Ceil); got != 4 {
		t.Fatalf("got %d want 4", got)
	}
	if got := divRound(t, -7, 2, Ceil); got != -3 {
		t.Fatalf("got %d want -3", got)
	}
	if got := divRound(t, -7, -2, Ceil); got != 4 {
		t.Fatalf("got %d want 4", got)
	}
}

func TestDivRound_HalfAwayFromZero(t *testing.T) {
	if got := divRound(t, 5, 2, Round); got != 3 {
		t.Fatalf("got %d want 3", got)
	}
	if got := divRound(t, -5, 2, Round); got != -3 {
		t.Fatalf("got %d want -3", got)
	}
	if got := divRound(t, 4, 3, Round); got != 1 {
		t.Fatalf("got %d want 1", got)
	}
	if got := divRound(t, 5, 3, Round); got != 2 {
		t.Fatalf("got %d want 2", got)
	}
}

func TestDivRound_Bankers(t *testing.T) {
	// Exact halves round to the even neighbor.
	if got := divRound(t, 5, 2, Bankers); got != 2 {
		t.Fatalf("2.5: got %d want 2", got)
	}
	if got := divRound(t, 7, 2, Bankers); got != 4 {
		t.Fatalf("3.5: got %d want 4", got)
	}
	if got := divRound(t, -5, 2, Bankers); got != -2 {
		t.Fatalf("-2.5: got %d want -2", got)
	}
	if got := divRound(t, -7, 2, Bankers); got != -4 {
		t.Fatalf("-3.5: got %d want -4", got)
	}
	// Non-halves behave like half away from zero.
	if got := divRound(t, 7, 3, Bankers); got != 2 {
		t.Fatalf("7/3: got %d want 2", got)
	}
	if got := divRound(t, 8, 3, Bankers); got != 3 {
		t.Fatalf("8/3: got %d want 3", got)
	}
}

func TestDivRound_ZeroDenominator(t *testing.T) {
	if _, err := DivRound(big.NewInt(1), big.NewInt(0), Round); !ErrDivideByZero.Has(err) {
		t.Fatalf("expected division-by-zero error, got %v", err)
	}
}

func TestDivRound_DoesNotMutateInputs(t *testing.T) {
	num := big.NewInt(7)
	den := big.NewInt(2)
	if _, err := DivRound(num, den, Bankers); err != nil {
		t.Fatalf("DivRound: %v", err)
	}
	if num.Int64() != 7 || den.Int64() != 2 {
		t.Fatalf("inputs mutated: num=%s den=%s", num, den)
	}
}
