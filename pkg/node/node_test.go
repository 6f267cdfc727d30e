package node

import (
	"testing"

	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/leaf"
)

func lf(v int64, label string) *Node {
	return Leaf(leaf.NewExplicit(digit.FromInt64(v)), label)
}

func TestNodeCountAndDepth(t *testing.T) {
	a := lf(1, "1")
	b := lf(2, "2")
	sum := Add(a, b)
	if sum.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", sum.NodeCount())
	}
	if sum.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", sum.Depth())
	}

	sinSum := Sin(sum)
	if sinSum.NodeCount() != 4 {
		t.Errorf("NodeCount = %d, want 4", sinSum.NodeCount())
	}
	if sinSum.Depth() != 3 {
		t.Errorf("Depth = %d, want 3", sinSum.Depth())
	}
}

func TestStringRendering(t *testing.T) {
	a := lf(1, "1")
	b := lf(2, "2")
	sum := Add(a, b)
	if got, want := sum.String(), "(1 + 2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	s := Sin(sum)
	if got, want := s.String(), "sin((1 + 2))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDAGSharing(t *testing.T) {
	shared := lf(7, "7")
	left := Add(shared, lf(1, "1"))
	right := Mul(shared, lf(2, "2"))
	top := Sub(left, right)

	if top.NodeCount() != 7 {
		t.Errorf("NodeCount with shared leaf counted per-reference = %d, want 7", top.NodeCount())
	}
	if top.Lhs.Lhs != top.Rhs.Lhs {
		t.Error("shared leaf should be the same pointer on both sides")
	}
}
