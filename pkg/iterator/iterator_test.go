package iterator

import (
	"math"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/realexact/pkg/config"
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/leaf"
	"github.com/wildfunctions/realexact/pkg/node"
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

func rationalLeaf(t *testing.T, num, den int64, label string) *node.Node {
	t.Helper()
	r, err := leaf.NewRational(digit.FromInt64(num), digit.FromInt64(den))
	require.NoError(t, err)
	return node.Leaf(r, label)
}

func beginDefault(n *node.Node) *Iterator {
	return Begin(n, config.DefaultPolicy(), logr.Discard())
}

// Scenario 1: MUL same sign, 1.9 x 1.9 (a Rational leaf, since 1.9 has no
// finite base-B expansion for an Explicit leaf to hold).
func TestScenarioMulSameSign(t *testing.T) {
	x := rationalLeaf(t, 19, 10, "1.9")
	tree := node.Mul(x, x)
	it := beginDefault(tree)
	require.NoError(t, it.Err())
	require.True(t, it.Interval().Positive())

	prev := it.Interval()
	for p := 0; p < 4; p++ {
		require.NoError(t, it.Next())
		cur := it.Interval()
		require.True(t, cur.Subset(prev), "interval must narrow: %v not subset of %v", cur, prev)
		prev = cur
	}
	require.InDelta(t, 3.61, toFloat(it.Interval().Lower), 0.01)
	require.InDelta(t, 3.61, toFloat(it.Interval().Upper), 0.01)
}

// Scenario 2: MUL algorithmic x algorithmic, recurring 9s (1.999... squared).
func TestScenarioMulRecurringNines(t *testing.T) {
	nines := leaf.NewAlgorithmic(func(i uint64) (uint32, error) {
		if i == 1 {
			return 1, nil
		}
		return uint32(digit.B - 1), nil
	}, 1, true, 0)
	x := node.Leaf(nines, "1.999...")
	tree := node.Mul(x, x)
	it := beginDefault(tree)
	require.NoError(t, it.Err())

	prev := it.Interval()
	for p := 0; p < 6; p++ {
		require.NoError(t, it.Next())
		cur := it.Interval()
		require.True(t, cur.Subset(prev))
		require.True(t, cur.Upper.Cmp(digit.FromInt64(4)) <= 0)
		prev = cur
	}
	require.InDelta(t, 4.0, toFloat(it.Interval().Upper), 0.001)
	require.InDelta(t, 4.0, toFloat(it.Interval().Lower), 0.01)
}

// Scenario 3: MUL opposite signs.
func TestScenarioMulOppositeSigns(t *testing.T) {
	neg := rationalLeaf(t, -19, 10, "-1.9")
	pos := rationalLeaf(t, 111, 100, "1.11")
	tree := node.Mul(neg, pos)
	it := beginDefault(tree)
	require.NoError(t, it.Err())
	require.True(t, it.Interval().Negative())

	require.NoError(t, it.Advance(3))
	require.True(t, it.Interval().Negative())
	require.InDelta(t, -2.109, toFloat(it.Interval().Lower), 0.01)
	require.InDelta(t, -2.109, toFloat(it.Interval().Upper), 0.01)
}

// Scenario 4: DIV near zero must advance past a zero-straddling denominator
// or fail divergent_division_result at the cap.
func TestScenarioDivNearZero(t *testing.T) {
	one := rationalLeaf(t, 1, 1, "1")
	tenth := leaf.NewAlgorithmic(func(i uint64) (uint32, error) { return 0, nil }, 0, true, 0)
	x := node.Leaf(tenth, "x")
	tree := node.Div(one, x)

	tight := config.Policy{MaxPrecision: 3}
	it := Begin(tree, tight, logr.Discard())
	require.Error(t, it.Err())
	require.Equal(t, ErrDivergentDivisionResult, it.Err())
}

func TestScenarioDivNearZeroEventuallyResolves(t *testing.T) {
	one := rationalLeaf(t, 1, 1, "1")
	x := rationalLeaf(t, 1, 8, "0.125")
	tree := node.Div(one, x)
	it := beginDefault(tree)
	require.NoError(t, it.Err())
	require.False(t, it.Interval().ContainsZero())
	// At precision 1 the one-digit reciprocal bounds are [7, 9]; one more
	// digit brings the lower bound to within a billionth of 8.
	require.NoError(t, it.Advance(1))
	require.InDelta(t, 8.0, toFloat(it.Interval().Lower), 0.5)
}

// Scenario 5: LOG of a strictly positive algorithmic leaf returns
// monotone-refining intervals containing the true value.
func TestScenarioLogPositiveAlgorithmic(t *testing.T) {
	e := leaf.NewAlgorithmic(func(i uint64) (uint32, error) {
		if i == 1 {
			return 2, nil
		}
		return 0, nil
	}, 1, true, 0)
	tree := node.Log(node.Leaf(e, "2"))
	it := beginDefault(tree)
	require.NoError(t, it.Err())

	prev := it.Interval()
	for p := 0; p < 4; p++ {
		require.NoError(t, it.Next())
		cur := it.Interval()
		require.True(t, cur.Subset(prev))
		prev = cur
	}
	require.InDelta(t, 0.693, toFloat(it.Interval().Lower), 0.05)
}

// Scenario 6: IPOW with a non-integer exponent fails once the right
// operand reaches max_precision still holding a fractional digit.
func TestScenarioIPowNonIntegerExponent(t *testing.T) {
	base := rationalLeaf(t, 2, 1, "2")
	frac := rationalLeaf(t, 3, 2, "1.5")
	tree := node.IPow(base, frac)
	it := Begin(tree, config.Policy{MaxPrecision: 4}, logr.Discard())
	require.Error(t, it.Err())
	require.Equal(t, ErrNonIntegralExponent, it.Err())
}

func TestScenarioIPowIntegerExponent(t *testing.T) {
	base := rationalLeaf(t, 2, 1, "2")
	exp := rationalLeaf(t, 3, 1, "3")
	tree := node.IPow(base, exp)
	it := beginDefault(tree)
	require.NoError(t, it.Err())
	require.InDelta(t, 8.0, toFloat(it.Interval().Lower), 0.01)
	require.InDelta(t, 8.0, toFloat(it.Interval().Upper), 0.01)
}

// Universal invariant: addition commutes on the interval, exactly.
func TestInvariantAdditionCommutes(t *testing.T) {
	a := rationalLeaf(t, 7, 3, "7/3")
	b := rationalLeaf(t, -5, 2, "-5/2")
	ab := beginDefault(node.Add(a, b))
	ba := beginDefault(node.Add(b, a))
	require.NoError(t, ab.Err())
	require.NoError(t, ba.Err())
	require.True(t, ab.Interval().Lower.Equal(ba.Interval().Lower))
	require.True(t, ab.Interval().Upper.Equal(ba.Interval().Upper))
}

// Universal invariant: nesting. Every later interval is a subset of every
// earlier one, for any operator tree.
func TestInvariantNesting(t *testing.T) {
	a := rationalLeaf(t, 22, 7, "22/7")
	tree := node.Sin(node.Mul(a, rationalLeaf(t, 3, 1, "3")))
	it := beginDefault(tree)
	require.NoError(t, it.Err())
	prev := it.Interval()
	for p := 0; p < 5; p++ {
		require.NoError(t, it.Next())
		require.True(t, it.Interval().Subset(prev))
		prev = it.Interval()
	}
}

// Universal invariant: leaf width bound. An Explicit leaf's enclosure
// width shrinks (or stays exact-zero) as precision advances, and is zero
// once enough digits have been retained to cover the whole value.
func TestInvariantLeafWidth(t *testing.T) {
	e := leaf.NewExplicit(digit.FromInt64(355))
	tree := node.Leaf(e, "355")
	it := beginDefault(tree)
	require.NoError(t, it.Err())
	prevWidth := it.Interval().Width()
	for p := uint(1); p <= 5; p++ {
		require.NoError(t, it.Advance(1))
		width := it.Interval().Width()
		require.True(t, width.Cmp(prevWidth) <= 0, "width must not grow: %v > %v", width, prevWidth)
		prevWidth = width
	}
	require.True(t, prevWidth.IsZero(), "an integer Explicit leaf's width should collapse to exact")
}

// Universal invariant: sign correctness of MUL once both operands avoid
// zero.
func TestInvariantMulSignCorrectness(t *testing.T) {
	cases := []struct {
		a, b     int64
		positive bool
	}{
		{3, 4, true},
		{-3, -4, true},
		{-3, 4, false},
		{3, -4, false},
	}
	for _, c := range cases {
		tree := node.Mul(rationalLeaf(t, c.a, 1, "a"), rationalLeaf(t, c.b, 1, "b"))
		it := beginDefault(tree)
		require.NoError(t, it.Err())
		require.Equal(t, c.positive, it.Interval().Positive())
	}
}

// Universal invariant: soundness. The enclosure at every precision must
// contain the true value, checked against math.* as an independent
// reference library (a different implementation from pkg/kernel's own
// Taylor series, so this isn't just re-deriving the same arithmetic).
func TestInvariantSoundness(t *testing.T) {
	two := leaf.NewAlgorithmic(func(i uint64) (uint32, error) {
		if i == 1 {
			return 2, nil
		}
		return 0, nil
	}, 1, true, 0)

	cases := []struct {
		label string
		tree  *node.Node
		ref   float64
	}{
		{"log(2)", node.Log(node.Leaf(two, "2")), math.Log(2)},
		{"exp(1)", node.Exp(rationalLeaf(t, 1, 1, "1")), math.Exp(1)},
		{"sin(22/7)", node.Sin(rationalLeaf(t, 22, 7, "22/7")), math.Sin(22.0 / 7.0)},
		{"cos(22/7)", node.Cos(rationalLeaf(t, 22, 7, "22/7")), math.Cos(22.0 / 7.0)},
		{"1/8 * 3", node.Mul(rationalLeaf(t, 1, 8, "1/8"), rationalLeaf(t, 3, 1, "3")), 0.125 * 3},
	}
	for _, c := range cases {
		it := beginDefault(c.tree)
		require.NoError(t, it.Err(), c.label)
		for p := 0; p < 6; p++ {
			require.NoError(t, it.Next(), c.label)
		}
		require.NoError(t, it.Err(), c.label)
		lo, hi := toFloat(it.Interval().Lower), toFloat(it.Interval().Upper)
		require.LessOrEqual(t, lo, c.ref+1e-6, "%s: reference %v below lower bound %v", c.label, c.ref, lo)
		require.GreaterOrEqual(t, hi, c.ref-1e-6, "%s: reference %v above upper bound %v", c.label, c.ref, hi)
	}
}

// Universal invariant: division termination. For any R whose true value is
// not zero, DIV must eventually succeed (no sticky error) within a generous
// max_precision, even when R's leaf starts out containing zero.
func TestInvariantDivisionTermination(t *testing.T) {
	// B^-2: its first digit is 0, so at precision 1 its interval is [0, B^-1].
	startsAtZero := leaf.NewAlgorithmic(func(i uint64) (uint32, error) {
		if i == 2 {
			return 1, nil
		}
		return 0, nil
	}, 0, true, 0)
	denominators := []*node.Node{
		rationalLeaf(t, 1, 8, "0.125"),
		rationalLeaf(t, -1, 3, "-1/3"),
		rationalLeaf(t, 1, 1000000, "1e-6"),
		node.Leaf(startsAtZero, "B^-2"),
	}

	one := rationalLeaf(t, 1, 1, "1")
	generous := config.Policy{MaxPrecision: 64}
	for _, denom := range denominators {
		it := Begin(node.Div(one, denom), generous, logr.Discard())
		require.NoError(t, it.Err())
		require.False(t, it.Interval().ContainsZero())
	}
}
