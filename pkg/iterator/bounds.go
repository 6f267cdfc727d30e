package iterator

import (
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/node"
)

// down and up are the two directed-truncation helpers used throughout
// updateBounds: every operator projects its operands' bounds onto the
// node's current working precision before combining them (spec.md §4.4).
func down(x digit.Number, p uint) digit.Number { return digit.TruncateTo(x, int(p), false) }
func up(x digit.Number, p uint) digit.Number   { return digit.TruncateTo(x, int(p), true) }

// updateBounds computes it's enclosure from its (already-advanced)
// operand iterators, dispatching on the node's tagged operator (spec.md
// §4.4's "update_bounds(N)").
func (it *Iterator) updateBounds() error {
	switch it.node.Op {
	case node.OpAdd:
		return it.updateAdd()
	case node.OpSub:
		return it.updateSub()
	case node.OpMul:
		return it.updateMul()
	case node.OpDiv:
		return it.updateDiv()
	case node.OpIPow:
		return it.updateIPow()
	case node.OpExp:
		return it.updateExp()
	case node.OpLog:
		return it.updateLog()
	case node.OpSin:
		return it.updateSin()
	case node.OpCos:
		return it.updateCos()
	case node.OpTan:
		return it.updateTan()
	case node.OpCot:
		return it.updateCot()
	case node.OpSec:
		return it.updateSec()
	case node.OpCsc:
		return it.updateCsc()
	default:
		return ErrNoOperation
	}
}
