package clk

// Descriptors are the static, data-only declarations the graph is built
// from. Order matters: Build processes Tables.Descs front to back and a
// descriptor may name as parent only a clock that appears earlier.

// BitField locates an unsigned field inside a 32-bit register.
type BitField struct {
	Shift uint32
	Width uint32
}

// Get extracts the field from a register value.
func (f BitField) Get(val uint32) uint32 {
	return (val >> f.Shift) & (1<<f.Width - 1)
}

// PLLFields is the bit geometry of a PLL control register: the feedback,
// input and two output divisor fields.
type PLLFields struct {
	FBDV  BitField
	INDV  BitField
	OTDV1 BitField
	OTDV2 BitField
}

// FixedDesc declares a fixed-rate source.
type FixedDesc struct {
	Name  string
	Rate  uint64
	Index int
}

// PLLDesc declares a PLL fed from its control register at Reg.
type PLLDesc struct {
	Reg    uint32
	Fields PLLFields
	Name   string
	Parent string
	Index  int
}

// FixedFactorDesc declares a fixed Mult/Div ratio off a parent.
type FixedFactorDesc struct {
	Name   string
	Parent string
	Mult   uint32
	Div    uint32
	Index  int
}

// DivDesc declares a register-controlled divider. The divisor field is
// Width bits at Shift in the register at Reg; if Pow2 is set the field
// holds an exponent and the divisor is 2^field.
type DivDesc struct {
	Reg    uint32
	Shift  uint32
	Width  uint32
	Pow2   bool
	Name   string
	Parent string
	Index  int
}

// MuxDesc declares a selector among Parents. The raw selector field is
// read at Reg, shifted down by Shift and masked with Mask; Table[i] is
// the raw value that selects Parents[i]. Raw values absent from Table are
// invalid selections.
type MuxDesc struct {
	Reg     uint32
	Shift   uint32
	Mask    uint32
	Table   []uint32
	Name    string
	Parents []string
	Index   int
}

// Desc is the sum of the five descriptor kinds.
type Desc interface {
	desc()
}

func (FixedDesc) desc()       {}
func (PLLDesc) desc()         {}
func (FixedFactorDesc) desc() {}
func (DivDesc) desc()         {}
func (MuxDesc) desc()         {}

// Tables is the full build input: descriptors in registration order plus
// the size of the export table (one past the largest export index).
type Tables struct {
	Descs      []Desc
	NumIndexes int
}
