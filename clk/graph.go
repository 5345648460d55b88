// Package clk builds a queryable model of a clock-distribution tree from
// static descriptor tables plus a window onto the clock controller's
// register block. The hardware is configured once by firmware before boot;
// this package only reconstructs the topology and computes rates, it never
// writes a register.
package clk

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/npcm-tools/npcm8xx-clk/mmio"
)

// Graph is an immutable, fully wired clock tree. It is safe for
// concurrent readers: Rate does not mutate any node.
type Graph struct {
	w       mmio.Window
	byName  map[string]*Node
	byIndex []*Node
	order   []*Node
}

// Build wires the descriptor tables into a Graph, reading the register
// window to verify that every referenced register is reachable. Every
// descriptor's parents must already have been registered by an earlier
// descriptor; a forward reference fails the build. Build is all-or-nothing:
// on any error the nodes constructed so far are unwound in reverse
// registration order and no graph is returned.
func Build(t Tables, w mmio.Window) (*Graph, error) {
	g := &Graph{
		w:       w,
		byName:  make(map[string]*Node, len(t.Descs)),
		byIndex: make([]*Node, t.NumIndexes),
	}
	for _, d := range t.Descs {
		if err := g.register(d); err != nil {
			g.unwind()
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) register(d Desc) error {
	var n *Node
	switch d := d.(type) {
	case FixedDesc:
		n = &Node{name: d.Name, kind: KindFixed, index: d.Index, rate: d.Rate}

	case PLLDesc:
		p, err := g.resolve(d.Name, d.Parent)
		if err != nil {
			return err
		}
		if err := g.probe(d.Name, d.Reg); err != nil {
			return err
		}
		n = &Node{
			name: d.Name, kind: KindPLL, index: d.Index,
			parents: []*Node{p}, reg: d.Reg, fields: d.Fields,
		}

	case FixedFactorDesc:
		p, err := g.resolve(d.Name, d.Parent)
		if err != nil {
			return err
		}
		if d.Mult == 0 || d.Div == 0 {
			return fmt.Errorf("%w: fixed factor %q declares %d/%d", ErrDivideByZero, d.Name, d.Mult, d.Div)
		}
		n = &Node{
			name: d.Name, kind: KindFixedFactor, index: d.Index,
			parents: []*Node{p}, mult: d.Mult, div: d.Div,
		}

	case DivDesc:
		p, err := g.resolve(d.Name, d.Parent)
		if err != nil {
			return err
		}
		if err := g.probe(d.Name, d.Reg); err != nil {
			return err
		}
		n = &Node{
			name: d.Name, kind: KindDiv, index: d.Index,
			parents: []*Node{p}, reg: d.Reg,
			shift: d.Shift, width: d.Width, pow2: d.Pow2,
		}

	case MuxDesc:
		if len(d.Table) != len(d.Parents) {
			return fmt.Errorf("clk: mux %q has %d table entries for %d parents", d.Name, len(d.Table), len(d.Parents))
		}
		parents := make([]*Node, len(d.Parents))
		for i, name := range d.Parents {
			p, err := g.resolve(d.Name, name)
			if err != nil {
				return err
			}
			parents[i] = p
		}
		if err := g.probe(d.Name, d.Reg); err != nil {
			return err
		}
		n = &Node{
			name: d.Name, kind: KindMux, index: d.Index,
			parents: parents, reg: d.Reg,
			shift: d.Shift, mask: d.Mask, table: d.Table,
		}

	default:
		return fmt.Errorf("clk: unknown descriptor type %T", d)
	}

	return g.insert(n)
}

// resolve looks up a parent name in the graph built so far.
func (g *Graph) resolve(child, parent string) (*Node, error) {
	p, ok := g.byName[parent]
	if !ok {
		return nil, fmt.Errorf("%w: %q needs %q", ErrUnresolvedParent, child, parent)
	}
	return p, nil
}

// probe reads the register a descriptor points at, establishing at build
// time that the window covers it. The value is thrown away; queries
// re-read it live.
func (g *Graph) probe(name string, reg uint32) error {
	if _, err := g.w.Read32(reg); err != nil {
		return fmt.Errorf("clk: %q register at 0x%02X: %w", name, reg, err)
	}
	return nil
}

func (g *Graph) insert(n *Node) error {
	if _, ok := g.byName[n.name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, n.name)
	}
	if n.index != NotExported {
		if n.index < 0 || n.index >= len(g.byIndex) {
			return fmt.Errorf("clk: %q export index %d out of range [0,%d)", n.name, n.index, len(g.byIndex))
		}
		if other := g.byIndex[n.index]; other != nil {
			return fmt.Errorf("%w: %q and %q both claim index %d", ErrExportCollision, other.name, n.name, n.index)
		}
		g.byIndex[n.index] = n
	}
	g.byName[n.name] = n
	g.order = append(g.order, n)
	glog.V(2).Infof("registered %s %q, %d parent(s)", n.kind, n.name, len(n.parents))
	return nil
}

// unwind tears down a partially built graph in reverse registration
// order. Nothing outside Build ever sees the partial state.
func (g *Graph) unwind() {
	for i := len(g.order) - 1; i >= 0; i-- {
		n := g.order[i]
		if n.index != NotExported {
			g.byIndex[n.index] = nil
		}
		delete(g.byName, n.name)
		glog.V(2).Infof("unwound %q", n.name)
	}
	g.order = nil
}

// Lookup returns the node with the given name.
func (g *Graph) Lookup(name string) (*Node, bool) {
	n, ok := g.byName[name]
	return n, ok
}

// ByIndex returns the node exported under idx. Indexes inside the table's
// range that no clock claims return false, matching consumers that probe
// for optional clocks.
func (g *Graph) ByIndex(idx int) (*Node, bool) {
	if idx < 0 || idx >= len(g.byIndex) || g.byIndex[idx] == nil {
		return nil, false
	}
	return g.byIndex[idx], true
}

// NumIndexes returns the size of the export table.
func (g *Graph) NumIndexes() int { return len(g.byIndex) }

// Nodes returns every clock in registration order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	copy(out, g.order)
	return out
}
