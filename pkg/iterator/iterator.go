// Package iterator implements the Precision Iterator of spec.md §3/§4.4/§5
// — the lazy refinement engine that walks an operator tree, demand-
// propagating precision increments to leaves, recomputing enclosures, and
// enforcing the max-precision and domain-error policies. This is the
// heart of the system: nothing computes until a client asks for the next
// interval.
package iterator

import (
	"github.com/go-logr/logr"

	"github.com/wildfunctions/realexact/pkg/config"
	"github.com/wildfunctions/realexact/pkg/interval"
	"github.com/wildfunctions/realexact/pkg/node"
)

// Iterator walks one node of an expression tree, holding its own
// precision cursor and current enclosure. Operator iterators additionally
// hold their own operand iterators — never shared, even when the
// underlying Nodes are shared via a DAG (spec.md §3's ownership
// invariant: "each expression tree holds its own iterator stack").
type Iterator struct {
	node         *node.Node
	maxPrecision uint
	logger       logr.Logger

	precision uint
	interval  interval.Interval
	err       error

	lhs *Iterator
	rhs *Iterator
}

// Begin constructs a fresh iterator over n at precision 1, pre-populated
// with its first enclosure (spec.md §6 "begin() → iterator").
func Begin(n *node.Node, policy config.Policy, logger logr.Logger) *Iterator {
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}
	it := build(n, policy, logger)
	_ = it.Advance(1)
	return it
}

func build(n *node.Node, policy config.Policy, logger logr.Logger) *Iterator {
	it := &Iterator{node: n, maxPrecision: policy.MaxPrecision, logger: logger}
	if !n.IsLeaf() {
		it.lhs = build(n.Lhs, policy, logger)
		if !n.IsUnary() {
			it.rhs = build(n.Rhs, policy, logger)
		}
	}
	return it
}

// Precision returns the iterator's current working precision.
func (it *Iterator) Precision() uint { return it.precision }

// Interval returns the current enclosure.
func (it *Iterator) Interval() interval.Interval { return it.interval }

// Err returns the sticky failure recorded on this iterator, if any.
func (it *Iterator) Err() error { return it.err }

// MaxPrecision returns the configured refinement cap.
func (it *Iterator) MaxPrecision() uint { return it.maxPrecision }

// Next advances the iterator by one digit of precision (spec.md §6 "++":
// single suspension unit). Per spec.md §4.4's operation_iterate rule, a
// child iterator is only re-advanced here if its precision currently
// equals the parent's — avoiding redundant work when the child has
// already been advanced elsewhere in a shared subtree.
func (it *Iterator) Next() error {
	if it.err != nil {
		return it.err
	}
	if it.node.IsLeaf() {
		return it.advanceLeaf(it.precision + 1)
	}
	if it.lhs.precision == it.precision {
		if err := it.lhs.Next(); err != nil {
			return it.fail(err)
		}
	}
	if it.rhs != nil && it.rhs.precision == it.precision {
		if err := it.rhs.Next(); err != nil {
			return it.fail(err)
		}
	}
	it.precision++
	return it.fail(it.updateBounds())
}

// Advance advances the iterator by n digits of precision (spec.md §6
// "iterate_n_times(n)"). Every child whose precision lags behind the new
// target is brought up to it, regardless of where it started.
func (it *Iterator) Advance(n uint) error {
	if it.err != nil {
		return it.err
	}
	if n == 0 {
		return nil
	}
	if it.node.IsLeaf() {
		return it.advanceLeaf(it.precision + n)
	}
	target := it.precision + n
	if err := it.ensureChild(it.lhs, target); err != nil {
		return it.fail(err)
	}
	if it.rhs != nil {
		if err := it.ensureChild(it.rhs, target); err != nil {
			return it.fail(err)
		}
	}
	it.precision = target
	return it.fail(it.updateBounds())
}

func (it *Iterator) ensureChild(child *Iterator, target uint) error {
	if child.precision < target {
		return child.Advance(target - child.precision)
	}
	return nil
}

func (it *Iterator) advanceLeaf(to uint) error {
	it.precision = to
	iv, err := it.node.Leaf.IntervalAt(to)
	if err != nil {
		return it.fail(err)
	}
	it.interval = iv
	return nil
}

func (it *Iterator) fail(err error) error {
	if err != nil {
		it.err = err
		it.logger.Error(err, "iterator failed", "op", it.node.Op.String(), "precision", it.precision)
	}
	return err
}

// atCap reports whether the iterator has already reached its configured
// refinement ceiling.
func (it *Iterator) atCap() bool {
	return it.maxPrecision > 0 && it.precision >= it.maxPrecision
}
