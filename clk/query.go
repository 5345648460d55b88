package clk

import (
	"fmt"

	"github.com/golang/glog"
)

// Rate computes the node's current effective frequency in Hz by walking
// up to the reference source, re-reading every register-dependent field
// on the way. Nothing is cached between calls: a mux may have been
// reselected or a PLL reprogrammed since the last query.
//
// A zero rate is a legitimate result, not an error: an unpowered upstream
// clock reports 0 Hz and every node downstream of it does too. Zero
// divisors, untabulated mux selections and (defensively) cycles are
// errors local to this call; the graph stays valid and the query may be
// retried.
func (g *Graph) Rate(n *Node) (uint64, error) {
	seen := make(map[*Node]struct{}, 8)
	return g.rate(n, seen)
}

// RateByName is Rate for a node looked up by name.
func (g *Graph) RateByName(name string) (uint64, error) {
	n, ok := g.byName[name]
	if !ok {
		return 0, fmt.Errorf("clk: no clock named %q", name)
	}
	return g.Rate(n)
}

func (g *Graph) rate(n *Node, seen map[*Node]struct{}) (uint64, error) {
	// A query follows a single path to the root (a mux recurses only into
	// its selected parent), so revisiting any node means the descriptor
	// tables were corrupted into a loop.
	if _, ok := seen[n]; ok {
		return 0, fmt.Errorf("%w: revisited %q", ErrCycleDetected, n.name)
	}
	seen[n] = struct{}{}

	switch n.kind {
	case KindFixed:
		return n.rate, nil

	case KindPLL:
		parent, err := g.rate(n.parents[0], seen)
		if err != nil {
			return 0, err
		}
		return g.pllRate(n, parent)

	case KindFixedFactor:
		parent, err := g.rate(n.parents[0], seen)
		if err != nil {
			return 0, err
		}
		return parent * uint64(n.mult) / uint64(n.div), nil

	case KindDiv:
		parent, err := g.rate(n.parents[0], seen)
		if err != nil {
			return 0, err
		}
		return g.divRate(n, parent)

	case KindMux:
		p, err := g.muxParent(n)
		if err != nil {
			return 0, err
		}
		// Frequency-transparent: the selected parent's rate passes
		// through unscaled.
		return g.rate(p, seen)
	}
	return 0, fmt.Errorf("clk: %q has unknown kind %d", n.name, n.kind)
}

// pllRate applies parent * FBDV / (INDV * OTDV1 * OTDV2) with the divisor
// fields read live from the PLL control register. uint64 intermediates
// hold the ~27-bit rate times the 12-bit feedback divisor with plenty of
// headroom.
func (g *Graph) pllRate(n *Node, parent uint64) (uint64, error) {
	if parent == 0 {
		// An unclocked PLL reports 0 Hz.
		glog.V(3).Infof("%s: parent rate is zero", n.name)
		return 0, nil
	}
	val, err := g.w.Read32(n.reg)
	if err != nil {
		return 0, err
	}
	fbdv := uint64(n.fields.FBDV.Get(val))
	indv := uint64(n.fields.INDV.Get(val))
	otdv1 := uint64(n.fields.OTDV1.Get(val))
	otdv2 := uint64(n.fields.OTDV2.Get(val))

	div := indv * otdv1 * otdv2
	if div == 0 {
		return 0, fmt.Errorf("%w: %q INDV*OTDV1*OTDV2 = %d*%d*%d", ErrDivideByZero, n.name, indv, otdv1, otdv2)
	}
	rate := parent * fbdv / div
	glog.V(3).Infof("%s: %d * %d / %d = %d", n.name, parent, fbdv, div, rate)
	return rate, nil
}

func (g *Graph) divRate(n *Node, parent uint64) (uint64, error) {
	val, err := g.w.Read32(n.reg)
	if err != nil {
		return 0, err
	}
	field := uint64((val >> n.shift) & (1<<n.width - 1))
	div := field
	if n.pow2 {
		div = 1 << field
	}
	if div == 0 {
		return 0, fmt.Errorf("%w: %q divisor field reads 0", ErrDivideByZero, n.name)
	}
	return parent / div, nil
}

// muxParent reads the selector field and maps it through the node's table
// to the currently selected parent.
func (g *Graph) muxParent(n *Node) (*Node, error) {
	val, err := g.w.Read32(n.reg)
	if err != nil {
		return nil, err
	}
	field := (val >> n.shift) & n.mask
	for i, raw := range n.table {
		if raw == field {
			glog.V(3).Infof("%s: selector %d -> %s", n.name, field, n.parents[i].name)
			return n.parents[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q selector reads %d", ErrInvalidSelector, n.name, field)
}
