package interval

import (
	"testing"

	"github.com/wildfunctions/realexact/pkg/digit"
)

func TestSignClassification(t *testing.T) {
	pos := New(digit.FromInt64(1), digit.FromInt64(2))
	if !pos.Positive() || pos.Negative() || pos.ContainsZero() {
		t.Errorf("[1,2] should be classified positive only")
	}

	neg := New(digit.FromInt64(-5), digit.FromInt64(-1))
	if !neg.Negative() || neg.Positive() || neg.ContainsZero() {
		t.Errorf("[-5,-1] should be classified negative only")
	}

	straddle := New(digit.FromInt64(-1), digit.FromInt64(1))
	if !straddle.ContainsZero() || straddle.Positive() || straddle.Negative() {
		t.Errorf("[-1,1] should straddle zero")
	}

	touchesZero := New(digit.FromInt64(0), digit.FromInt64(1))
	if !touchesZero.ContainsZero() {
		t.Errorf("[0,1] touches zero and must not be classified positive")
	}
}

func TestSubset(t *testing.T) {
	outer := New(digit.FromInt64(0), digit.FromInt64(10))
	inner := New(digit.FromInt64(2), digit.FromInt64(5))
	if !inner.Subset(outer) {
		t.Errorf("[2,5] should be a subset of [0,10]")
	}
	if outer.Subset(inner) {
		t.Errorf("[0,10] should not be a subset of [2,5]")
	}
}

func TestContains(t *testing.T) {
	iv := New(digit.FromInt64(1), digit.FromInt64(5))
	if !iv.Contains(digit.FromInt64(3)) {
		t.Error("3 should be contained in [1,5]")
	}
	if iv.Contains(digit.FromInt64(6)) {
		t.Error("6 should not be contained in [1,5]")
	}
}
