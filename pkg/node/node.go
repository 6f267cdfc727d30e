// Package node implements the Operation Node of spec.md §3/§4.4: a tagged
// binary/unary operator node linking to operand trees. Following spec.md's
// Design Notes, dispatch is a tagged enum switched on inside
// pkg/iterator's updateBounds rather than virtual-dispatch inheritance, to
// keep the hot refinement path monomorphic.
package node

import (
	"fmt"

	"github.com/wildfunctions/realexact/pkg/leaf"
)

// OpCode tags the operation a Node performs. OpLeaf marks a leaf node,
// which carries a leaf.Real instead of operand children.
type OpCode int

const (
	OpLeaf OpCode = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpIPow
	OpExp
	OpLog
	OpSin
	OpCos
	OpTan
	OpCot
	OpSec
	OpCsc
)

var opNames = map[OpCode]string{
	OpLeaf: "leaf",
	OpAdd:  "+",
	OpSub:  "-",
	OpMul:  "*",
	OpDiv:  "/",
	OpIPow: "^",
	OpExp:  "exp",
	OpLog:  "log",
	OpSin:  "sin",
	OpCos:  "cos",
	OpTan:  "tan",
	OpCot:  "cot",
	OpSec:  "sec",
	OpCsc:  "csc",
}

func (op OpCode) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "no_operation"
}

// unaryOps is the set of operators that only use Lhs.
var unaryOps = map[OpCode]bool{
	OpExp: true, OpLog: true,
	OpSin: true, OpCos: true, OpTan: true, OpCot: true, OpSec: true, OpCsc: true,
}

// Node is a tagged expression-tree node. Leaf nodes (Op == OpLeaf) carry a
// Leaf and no children; operator nodes carry Lhs (and Rhs, for binary
// operators) and no Leaf. Nodes are immutable and may be shared across
// trees (DAG sharing, per spec.md's ownership invariant) — all mutable
// refinement state lives in pkg/iterator, never here.
type Node struct {
	Op    OpCode
	Lhs   *Node
	Rhs   *Node
	Leaf  leaf.Real
	Label string // display label for leaves, e.g. "1.9" or "x"; cosmetic only
}

// Leaf wraps a leaf.Real as a Node.
func Leaf(l leaf.Real, label string) *Node {
	return &Node{Op: OpLeaf, Leaf: l, Label: label}
}

func binary(op OpCode, a, b *Node) *Node { return &Node{Op: op, Lhs: a, Rhs: b} }
func unary(op OpCode, a *Node) *Node     { return &Node{Op: op, Lhs: a} }

func Add(a, b *Node) *Node { return binary(OpAdd, a, b) }
func Sub(a, b *Node) *Node { return binary(OpSub, a, b) }
func Mul(a, b *Node) *Node { return binary(OpMul, a, b) }
func Div(a, b *Node) *Node { return binary(OpDiv, a, b) }
func IPow(a, b *Node) *Node { return binary(OpIPow, a, b) }
func Exp(a *Node) *Node { return unary(OpExp, a) }
func Log(a *Node) *Node { return unary(OpLog, a) }
func Sin(a *Node) *Node { return unary(OpSin, a) }
func Cos(a *Node) *Node { return unary(OpCos, a) }
func Tan(a *Node) *Node { return unary(OpTan, a) }
func Cot(a *Node) *Node { return unary(OpCot, a) }
func Sec(a *Node) *Node { return unary(OpSec, a) }
func Csc(a *Node) *Node { return unary(OpCsc, a) }

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool { return n.Op == OpLeaf }

// IsUnary reports whether n is a unary operator node.
func (n *Node) IsUnary() bool { return unaryOps[n.Op] }

// NodeCount returns the number of nodes in the tree rooted at n, counting
// shared subtrees once per reference (a DAG-unaware count, matching the
// teacher expr package's NodeCount).
func (n *Node) NodeCount() int {
	if n.IsLeaf() {
		return 1
	}
	if n.IsUnary() {
		return 1 + n.Lhs.NodeCount()
	}
	return 1 + n.Lhs.NodeCount() + n.Rhs.NodeCount()
}

// Depth returns the height of the tree rooted at n.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 1
	}
	if n.IsUnary() {
		return 1 + n.Lhs.Depth()
	}
	ld, rd := n.Lhs.Depth(), n.Rhs.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// String renders an infix expression, generalizing the teacher expr
// package's String() from arithmetic-plus-special-function nodes to the
// thirteen interval operators.
func (n *Node) String() string {
	switch {
	case n.IsLeaf():
		if n.Label != "" {
			return n.Label
		}
		return "?"
	case n.IsUnary():
		return fmt.Sprintf("%s(%s)", n.Op, n.Lhs.String())
	default:
		return fmt.Sprintf("(%s %s %s)", n.Lhs.String(), n.Op, n.Rhs.String())
	}
}

var latexUnary = map[OpCode]string{
	OpExp: "\\exp", OpLog: "\\ln",
	OpSin: "\\sin", OpCos: "\\cos", OpTan: "\\tan",
	OpCot: "\\cot", OpSec: "\\sec", OpCsc: "\\csc",
}

// LaTeX renders a LaTeX expression, in the same spirit as the teacher
// expr package's LaTeX() method.
func (n *Node) LaTeX() string {
	switch {
	case n.IsLeaf():
		if n.Label != "" {
			return n.Label
		}
		return "?"
	case n.IsUnary():
		return fmt.Sprintf("%s{(%s)}", latexUnary[n.Op], n.Lhs.LaTeX())
	case n.Op == OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", n.Lhs.LaTeX(), n.Rhs.LaTeX())
	case n.Op == OpIPow:
		return fmt.Sprintf("{%s}^{%s}", n.Lhs.LaTeX(), n.Rhs.LaTeX())
	case n.Op == OpMul:
		return fmt.Sprintf("{%s} \\cdot {%s}", n.Lhs.LaTeX(), n.Rhs.LaTeX())
	default:
		return fmt.Sprintf("{%s} %s {%s}", n.Lhs.LaTeX(), n.Op, n.Rhs.LaTeX())
	}
}
