package iterator

import (
	"github.com/wildfunctions/realexact/pkg/interval"
	"github.com/wildfunctions/realexact/pkg/kernel"
)

// updateExp implements spec.md §4.4 EXP. exp is strictly monotone
// increasing everywhere, so the outward-rounded endpoints map straight
// across without any sign casework.
func (it *Iterator) updateExp() error {
	p := it.precision
	L := it.lhs.interval
	lower := kernel.Exp(down(L.Lower, p), p, false)
	upper := kernel.Exp(up(L.Upper, p), p, true)
	it.interval = interval.New(lower, upper)
	return nil
}

// updateLog implements spec.md §4.4 LOG. log is only defined for strictly
// positive arguments, so the operand is advanced until its lower bound
// clears zero; if the cap is hit first this fails with
// kernel.ErrLogDomain, matching LOG's "no_positive_bound" domain error.
func (it *Iterator) updateLog() error {
	for !it.lhs.interval.Positive() {
		if it.atCap() {
			return kernel.ErrLogDomain
		}
		it.precision++
		it.logger.V(1).Info("log: operand not yet confirmed positive, advancing", "precision", it.precision)
		if err := it.lhs.Advance(1); err != nil {
			return err
		}
	}

	p := it.precision
	L := it.lhs.interval
	lower, err := kernel.Log(down(L.Lower, p), p, false)
	if err != nil {
		return err
	}
	upper, err := kernel.Log(up(L.Upper, p), p, true)
	if err != nil {
		return err
	}
	it.interval = interval.New(lower, upper)
	return nil
}
