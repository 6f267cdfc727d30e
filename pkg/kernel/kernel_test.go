package kernel

import (
	"testing"

	"github.com/wildfunctions/realexact/pkg/digit"
)

func toFloat(n digit.Number) float64 {
	f := 0.0
	for _, d := range n.Digits {
		f = f*float64(digit.B) + float64(d)
	}
	scale := n.Exponent - len(n.Digits)
	for i := 0; i < scale; i++ {
		f *= float64(digit.B)
	}
	for i := 0; i > scale; i-- {
		f /= float64(digit.B)
	}
	if !n.Sign {
		f = -f
	}
	return f
}

func approxEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestExpZero(t *testing.T) {
	got := Exp(digit.Zero(), 10, false)
	if toFloat(got) < 0.99 || toFloat(got) > 1.01 {
		t.Errorf("exp(0) ~= %v, want ~1", toFloat(got))
	}
}

func TestExpOne(t *testing.T) {
	got := Exp(digit.FromInt64(1), 8, true)
	f := toFloat(got)
	if !approxEqual(f, 2.718281828, 0.01) {
		t.Errorf("exp(1) ~= %v, want ~2.71828", f)
	}
}

func TestExpRoundingDirection(t *testing.T) {
	down := Exp(digit.FromInt64(1), 8, false)
	up := Exp(digit.FromInt64(1), 8, true)
	if down.Cmp(up) > 0 {
		t.Errorf("exp round-down %v should be <= round-up %v", down, up)
	}
}

func TestLogOfOne(t *testing.T) {
	got, err := Log(digit.FromInt64(1), 8, false)
	if err != nil {
		t.Fatal(err)
	}
	if f := toFloat(got); f < -0.01 || f > 0.01 {
		t.Errorf("log(1) ~= %v, want ~0", f)
	}
}

func TestLogDomainError(t *testing.T) {
	_, err := Log(digit.FromInt64(-1), 8, false)
	if err != ErrLogDomain {
		t.Errorf("expected ErrLogDomain, got %v", err)
	}
	_, err = Log(digit.Zero(), 8, false)
	if err != ErrLogDomain {
		t.Errorf("expected ErrLogDomain for zero, got %v", err)
	}
}

func TestLogOfE(t *testing.T) {
	e := Exp(digit.FromInt64(1), 10, false)
	got, err := Log(e, 6, false)
	if err != nil {
		t.Fatal(err)
	}
	if f := toFloat(got); !approxEqual(f, 1.0, 0.01) {
		t.Errorf("log(exp(1)) ~= %v, want ~1", f)
	}
}

func TestSinCosZero(t *testing.T) {
	sin, cos := SinCos(digit.Zero(), 8, false)
	if f := toFloat(sin); !approxEqual(f, 0, 0.01) {
		t.Errorf("sin(0) ~= %v, want 0", f)
	}
	if f := toFloat(cos); !approxEqual(f, 1, 0.01) {
		t.Errorf("cos(0) ~= %v, want 1", f)
	}
}

func TestSinCosPythagorean(t *testing.T) {
	for _, x := range []int64{0, 1, 2} {
		sin, cos := SinCos(digit.FromInt64(x), 8, false)
		s, c := toFloat(sin), toFloat(cos)
		sum := s*s + c*c
		if !approxEqual(sum, 1.0, 0.05) {
			t.Errorf("sin(%d)^2+cos(%d)^2 ~= %v, want ~1", x, x, sum)
		}
	}
}
