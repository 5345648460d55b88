package clk

// Kind discriminates the closed set of clock node types. The set is fixed
// by the hardware, so nodes are a tagged variant rather than an open
// interface.
type Kind uint8

const (
	// KindFixed is a fixed-rate source, e.g. the reference oscillator.
	KindFixed Kind = iota
	// KindPLL multiplies its parent by FBDV/(INDV*OTDV1*OTDV2), with the
	// divisor fields read live from the PLL's control register.
	KindPLL
	// KindFixedFactor scales its parent by a compile-time mult/div ratio,
	// e.g. the half-rate taps off the PLLs.
	KindFixedFactor
	// KindDiv divides its parent by a divisor field read live from a
	// register, either directly or as a power of two.
	KindDiv
	// KindMux forwards the rate of the parent currently selected by a
	// register field, with no scaling.
	KindMux
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindPLL:
		return "pll"
	case KindFixedFactor:
		return "fixed-factor"
	case KindDiv:
		return "div"
	case KindMux:
		return "mux"
	}
	return "unknown"
}

// NotExported is the export index carried by clocks that are internal to
// the tree and not published to consumers.
const NotExported = -1

// Node is one clock in a built graph. Nodes are created by Build and
// never mutated afterwards; everything register-dependent is re-read from
// the hardware on each Rate call.
type Node struct {
	name    string
	kind    Kind
	index   int
	parents []*Node

	// KindFixed
	rate uint64

	// KindPLL
	reg    uint32
	fields PLLFields

	// KindFixedFactor
	mult, div uint32

	// KindDiv (reg shared with KindPLL)
	shift uint32
	width uint32
	pow2  bool

	// KindMux (reg, shift shared)
	mask  uint32
	table []uint32
}

func (n *Node) Name() string { return n.name }
func (n *Node) Kind() Kind   { return n.kind }

// Index returns the node's export index, or NotExported.
func (n *Node) Index() int { return n.index }

// NumParents returns the number of candidate parents: 0 for a fixed
// source, 1 for PLLs, fixed factors and dividers, and the mux fan-in for
// muxes.
func (n *Node) NumParents() int { return len(n.parents) }

// Parent returns the i'th candidate parent. For a mux this is the static
// candidate list, not the currently selected input.
func (n *Node) Parent(i int) *Node { return n.parents[i] }
