package units

import "testing"

func TestNormalize_PlainInteger(t *testing.T) {
	p, err := Normalize(Text("1234"))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.Neg || p.Int != "1234" || p.Frac != "" {
		t.Fatalf("got %+v", p)
	}
}

func TestNormalize_SignHandling(t *testing.T) {
	p, err := Normalize(Text("-12.5"))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !p.Neg || p.Int != "12" || p.Frac != "5" {
		t.Fatalf("got %+v", p)
	}

	p, err = Normalize(Text("+0.25"))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.Neg || p.Int != "0" || p.Frac != "25" {
		t.Fatalf("got %+v", p)
	}

	// A sign anywhere but position 0 is not a digit.
	if _, err := Normalize(Text("1-2")); !ErrFormat.Has(err) {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestNormalize_GroupingSeparators(t *testing.T) {
	cases := []struct {
		in   string
		i, f string
	}{
		{"1_234_567.89", "1234567", "89"},
		{"1 234 567,89", "1234567", "89"},
		{"1,234,567.89", "1234567", "89"}, // US grouping, dot decimal
		{"1.234.567,89", "1234567", "89"}, // EU grouping, comma decimal
		{"1,234", "1", "234"},             // single comma is the radix point
	}
	for _, tc := range cases {
		p, err := Normalize(Text(tc.in))
		if err != nil {
			t.Fatalf("normalize %q: %v", tc.in, err)
		}
		if p.Int != tc.i || p.Frac != tc.f {
			t.Fatalf("normalize %q: got int=%q frac=%q want int=%q frac=%q", tc.in, p.Int, p.Frac, tc.i, tc.f)
		}
	}
}

func TestNormalize_LastSeparatorWins(t *testing.T) {
	// Whichever of '.' or ',' occurs later is the radix point.
	p, err := Normalize(Text("1,234.56"))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.Int != "1234" || p.Frac != "56" {
		t.Fatalf("got %+v", p)
	}

	p, err = Normalize(Text("1.234,56"))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.Int != "1234" || p.Frac != "56" {
		t.Fatalf("got %+v", p)
	}
}

func TestNormalize_LeadingZeros(t *testing.T) {
	p, err := Normalize(Text("000123.45"))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.Int != "123" {
		t.Fatalf("got int=%q", p.Int)
	}

	p, err = Normalize(Text("0000"))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.Int != "0" {
		t.Fatalf("got int=%q", p.Int)
	}

	// Bare fraction keeps a "0" integer part.
	p, err = Normalize(Text(".5"))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.Int != "0" || p.Frac != "5" {
		t.Fatalf("got %+v", p)
	}
}

func TestNormalize_NumberInput(t *testing.T) {
	p, err := Normalize(Number(12.25))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.Neg || p.Int != "12" || p.Frac != "25" {
		t.Fatalf("got %+v", p)
	}

	p, err = Normalize(Number(-3))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !p.Neg || p.Int != "3" || p.Frac != "" {
		t.Fatalf("got %+v", p)
	}
}

func TestNormalize_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "-", "+", ".", ",", "abc", "12a.5", "1.2.3x", "--1"} {
		if _, err := Normalize(Text(in)); !ErrFormat.Has(err) {
			t.Fatalf("normalize %q: expected format error, got %v", in, err)
		}
	}
}
