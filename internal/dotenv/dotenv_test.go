package dotenv

import "testing"

func TestString_FirstNonBlankWins(t *testing.T) {
	t.Setenv("UNITS_TEST_A", "")
	t.Setenv("UNITS_TEST_B", "  ")
	t.Setenv("UNITS_TEST_C", "wss://example")

	if got := String("UNITS_TEST_A", "UNITS_TEST_B", "UNITS_TEST_C"); got != "wss://example" {
		t.Fatalf("got %q", got)
	}
	if got := String("UNITS_TEST_A", "UNITS_TEST_B"); got != "" {
		t.Fatalf("got %q want empty", got)
	}
}

func TestInt64_FallbackAndParse(t *testing.T) {
	t.Setenv("UNITS_TEST_ID", "137")
	if got := Int64(0, "UNITS_TEST_ID"); got != 137 {
		t.Fatalf("got %d want 137", got)
	}

	t.Setenv("UNITS_TEST_BAD", "not-a-number")
	if got := Int64(42, "UNITS_TEST_BAD"); got != 42 {
		t.Fatalf("got %d want fallback 42", got)
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	if err := Load("does-not-exist.env"); err != nil {
		t.Fatalf("load: %v", err)
	}
}
