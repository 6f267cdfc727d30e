// Package real is the public facade of spec.md §6's "operator surface": a
// thin, friendly wrapper over pkg/node/pkg/iterator so a client can write
// `a.Add(b).Sin()` instead of threading *node.Node values through the
// constructors directly.
package real

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/wildfunctions/realexact/pkg/config"
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/iterator"
	"github.com/wildfunctions/realexact/pkg/leaf"
	"github.com/wildfunctions/realexact/pkg/node"
	"github.com/wildfunctions/realexact/pkg/parseliteral"
)

// Real is an expression-tree handle: an immutable description of how to
// compute ever-tighter enclosing intervals, not a number itself (spec.md
// §1's framing). Values are cheap to copy; the underlying *node.Node may
// be shared across many Reals (DAG sharing, spec.md's ownership
// invariant).
type Real struct {
	node *node.Node
}

// FromDigits wraps an already-built Digit Number as an Explicit leaf.
func FromDigits(x digit.Number) Real {
	return Real{node: node.Leaf(leaf.NewExplicit(x), x.String())}
}

// FromString parses a decimal literal (pkg/parseliteral) into a leaf.
func FromString(s string) (Real, error) {
	l, err := parseliteral.Parse(s)
	if err != nil {
		return Real{}, err
	}
	return Real{node: node.Leaf(l, s)}, nil
}

// FromAlgorithmic wraps a pure digit-stream function as an Algorithmic
// leaf (spec.md §3/§6).
func FromAlgorithmic(digitFn leaf.DigitFunc, exponent int, sign bool, maxPrecision uint) Real {
	a := leaf.NewAlgorithmic(digitFn, exponent, sign, maxPrecision)
	return Real{node: node.Leaf(a, "")}
}

// FromRational wraps a numerator/denominator Digit Number pair as a
// Rational leaf.
func FromRational(num, den digit.Number) (Real, error) {
	r, err := leaf.NewRational(num, den)
	if err != nil {
		return Real{}, err
	}
	return Real{node: node.Leaf(r, "")}, nil
}

func (r Real) Add(o Real) Real { return Real{node: node.Add(r.node, o.node)} }
func (r Real) Sub(o Real) Real { return Real{node: node.Sub(r.node, o.node)} }
func (r Real) Mul(o Real) Real { return Real{node: node.Mul(r.node, o.node)} }
func (r Real) Div(o Real) Real { return Real{node: node.Div(r.node, o.node)} }
func (r Real) Pow(o Real) Real { return Real{node: node.IPow(r.node, o.node)} }
func (r Real) Exp() Real       { return Real{node: node.Exp(r.node)} }
func (r Real) Log() Real       { return Real{node: node.Log(r.node)} }
func (r Real) Sin() Real       { return Real{node: node.Sin(r.node)} }
func (r Real) Cos() Real       { return Real{node: node.Cos(r.node)} }
func (r Real) Tan() Real       { return Real{node: node.Tan(r.node)} }
func (r Real) Cot() Real       { return Real{node: node.Cot(r.node)} }
func (r Real) Sec() Real       { return Real{node: node.Sec(r.node)} }
func (r Real) Csc() Real       { return Real{node: node.Csc(r.node)} }

// defaultLogger is the production logger used whenever a caller doesn't
// supply its own: a stdr-backed logr.Logger (spec.md's ambient-stack
// default per SPEC_FULL.md §10), distinct from the bare
// iterator.Begin(...) used directly in tests, which defaults to
// logr.Discard() when given a zero-value Logger.
var defaultLogger = stdr.New(log.New(os.Stderr, "", log.LstdFlags))

// Iterator begins refinement of r under cfg using the package's default
// stdr-backed logger (spec.md §6 "begin() -> iterator").
func (r Real) Iterator(cfg config.Policy) *iterator.Iterator {
	return r.IteratorWithLogger(cfg, defaultLogger)
}

// IteratorWithLogger begins refinement with a caller-supplied logger,
// e.g. logr.Discard() in tests or a request-scoped logger in a server.
func (r Real) IteratorWithLogger(cfg config.Policy, logger logr.Logger) *iterator.Iterator {
	return iterator.Begin(r.node, cfg, logger)
}

// String renders an infix expression for diagnostics.
func (r Real) String() string { return r.node.String() }

// LaTeX renders a LaTeX expression, generalizing the teacher expr
// package's LaTeX() method from arithmetic-plus-special-function nodes
// to the thirteen interval operators.
func (r Real) LaTeX() string { return r.node.LaTeX() }

// NodeCount and Depth expose the underlying tree's shape, mirroring the
// teacher's ExprNode diagnostics.
func (r Real) NodeCount() int { return r.node.NodeCount() }
func (r Real) Depth() int     { return r.node.Depth() }
