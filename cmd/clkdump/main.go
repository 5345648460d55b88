// clkdump prints the current rate of every clock in the NPCM8xx tree,
// reading either the live register block through /dev/mem or a raw
// register dump taken from one.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/npcm-tools/npcm8xx-clk/clk"
	"github.com/npcm-tools/npcm8xx-clk/mmio"
	"github.com/npcm-tools/npcm8xx-clk/npcm8xx"
	"github.com/npcm-tools/npcm8xx-clk/platform"
)

var platFile = flag.String("platform", "", "YAML platform description giving the register block and reference rate")
var base = flag.Uint64("base", 0xF0801000, "Physical base address of the clock controller block")
var size = flag.Uint64("size", npcm8xx.BlockSize, "Size of the clock controller block in bytes")
var refHz = flag.Uint64("refclk", npcm8xx.DefaultRefHz, "Reference oscillator rate in Hz")
var dump = flag.String("dump", "", "Raw register dump file to read instead of /dev/mem")

func openWindow() (mmio.Window, func(), uint64, error) {
	if *dump != "" {
		b, err := os.ReadFile(*dump)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("couldn't read dump: %v", err)
		}
		if len(b) < npcm8xx.BlockSize {
			return nil, nil, 0, fmt.Errorf("dump is %d bytes, need at least %d", len(b), npcm8xx.BlockSize)
		}
		return mmio.SliceWindow(b), func() {}, *refHz, nil
	}

	regBase, regSize, hz := *base, *size, *refHz
	if *platFile != "" {
		p, err := platform.Load(*platFile)
		if err != nil {
			return nil, nil, 0, err
		}
		regBase, regSize, hz = p.Reg.Base, p.Reg.Size, p.RefClockHz
		glog.V(1).Infof("platform %q: reg %08X+%X, refclk %d Hz", p.Name, regBase, regSize, hz)
	}
	w, err := mmio.Map(uintptr(regBase), int(regSize))
	if err != nil {
		return nil, nil, 0, err
	}
	return w, func() { w.Close() }, hz, nil
}

func main() {
	flag.Parse()
	defer glog.Flush()

	w, closeWin, hz, err := openWindow()
	if err != nil {
		glog.Exitf("Couldn't open register window: %v", err)
	}
	defer closeWin()

	g, err := npcm8xx.Setup(w, hz)
	if err != nil {
		glog.Exitf("Couldn't build clock tree: %v", err)
	}

	for _, n := range g.Nodes() {
		idx := "-"
		if n.Index() != clk.NotExported {
			idx = fmt.Sprintf("%d", n.Index())
		}
		rate, err := g.Rate(n)
		if err != nil {
			// Query errors are local to one clock; keep dumping.
			fmt.Printf("%-16s %-12s %3s  error: %v\n", n.Name(), n.Kind(), idx, err)
			continue
		}
		fmt.Printf("%-16s %-12s %3s  %d Hz\n", n.Name(), n.Kind(), idx, rate)
	}
}
