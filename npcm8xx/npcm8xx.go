// Package npcm8xx models the clock generator of the Nuvoton NPCM8xx BMC.
// All clocks are initialized by the bootloader, so only reading of the
// current settings directly from the hardware is supported.
package npcm8xx

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/npcm-tools/npcm8xx-clk/clk"
	"github.com/npcm-tools/npcm8xx-clk/mmio"
)

// DefaultRefHz is the nominal reference oscillator frequency.
const DefaultRefHz uint64 = 25_000_000

// Tables assembles the full descriptor set in dependency order: the
// reference and bypass sources, the PLLs, their half-rate taps, the
// muxes, the system-clock tap, the configurable dividers and finally the
// bus taps hanging off the throttle divider.
func Tables(refHz uint64) clk.Tables {
	t := clk.Tables{NumIndexes: NumClocks}

	t.Descs = append(t.Descs,
		clk.FixedDesc{Name: RefClk, Rate: refHz, Index: ClkRefClk},
		// Board-level bypass inputs. Their rates aren't knowable from the
		// clock controller's registers; they read as 0 Hz unless a caller
		// builds custom tables with measured values.
		clk.FixedDesc{Name: SysBypCk, Rate: 0, Index: clk.NotExported},
		clk.FixedDesc{Name: McBypCk, Rate: 0, Index: clk.NotExported},
	)
	for _, d := range plls {
		t.Descs = append(t.Descs, d)
	}
	for _, d := range pllTaps {
		t.Descs = append(t.Descs, d)
	}
	for _, d := range muxes {
		t.Descs = append(t.Descs, d)
	}
	for _, d := range sysTaps {
		t.Descs = append(t.Descs, d)
	}
	for _, d := range divs {
		t.Descs = append(t.Descs, d)
	}
	for _, d := range busTaps {
		t.Descs = append(t.Descs, d)
	}
	return t
}

// Setup builds the NPCM8xx clock tree over the given register window,
// using refHz as the reference oscillator rate (DefaultRefHz on real
// boards). The window must cover at least BlockSize bytes.
func Setup(w mmio.Window, refHz uint64) (*clk.Graph, error) {
	if refHz == 0 {
		return nil, fmt.Errorf("npcm8xx: reference rate is zero")
	}
	g, err := clk.Build(Tables(refHz), w)
	if err != nil {
		return nil, fmt.Errorf("npcm8xx: building clock tree: %w", err)
	}
	glog.V(1).Infof("npcm8xx: built %d clocks, %d exportable", len(g.Nodes()), NumClocks)
	return g, nil
}
