package parseliteral

import (
	"testing"

	"github.com/wildfunctions/realexact/pkg/interval"
)

func mustIntervalAt(t *testing.T, s string, p uint) interval.Interval {
	t.Helper()
	l, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	iv, err := l.IntervalAt(p)
	if err != nil {
		t.Fatalf("IntervalAt: %v", err)
	}
	return iv
}

func TestParseInteger(t *testing.T) {
	iv := mustIntervalAt(t, "42", 3)
	if iv.Width().Cmp(iv.Width()) != 0 || !iv.Lower.Equal(iv.Upper) {
		t.Errorf("42 should parse exact, got %v", iv)
	}
}

func TestParseNegativeFraction(t *testing.T) {
	iv := mustIntervalAt(t, "-3.25", 6)
	if !iv.Negative() {
		t.Errorf("-3.25 should parse negative, got %v", iv)
	}
}

func TestParseExponent(t *testing.T) {
	iv := mustIntervalAt(t, "1.5e2", 4)
	if !iv.Positive() {
		t.Errorf("1.5e2 should parse positive, got %v", iv)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{"", "abc", "1.2.3", "+-1", "."}
	for _, c := range cases {
		if _, err := Parse(c); err != ErrInvalidStringNumber {
			t.Errorf("Parse(%q) = _, %v, want ErrInvalidStringNumber", c, err)
		}
	}
}
