package npcm8xx

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npcm-tools/npcm8xx-clk/clk"
	"github.com/npcm-tools/npcm8xx-clk/mmio"
)

func image(regs map[uint32]uint32) mmio.SliceWindow {
	b := make([]byte, BlockSize)
	for off, val := range regs {
		binary.LittleEndian.PutUint32(b[off:], val)
	}
	return mmio.SliceWindow(b)
}

func pllcon(fbdv, indv, otdv1, otdv2 uint32) uint32 {
	return fbdv<<16 | otdv2<<13 | otdv1<<8 | indv
}

// bootImage is a plausible firmware configuration:
//
//	pll0 500 MHz, pll1 1 GHz, pll2 1.2 GHz, pll_gfx 400 MHz
//	cpu <- pll1, system clock 1 GHz, pre_clk 500 MHz, ahb 250 MHz
func bootImage() map[uint32]uint32 {
	sel := uint32(1)<<0 | // cpu <- pll1
		uint32(0)<<4 | // gfx_pixel <- pll_gfx
		uint32(3)<<6 | // sd <- pll2_div2
		uint32(0)<<8 | // uart <- pll0
		uint32(3)<<10 | // serial_usb <- pll2_div2
		uint32(0)<<12 | // mc <- pll1_div2
		uint32(2)<<14 | // adc <- refclk
		uint32(0)<<16 | // gfx <- pll0
		uint32(4)<<18 | // clkout <- pll2_div2
		uint32(3)<<21 | // gfxm <- pll2_div2
		uint32(3)<<23 | // dvc <- pll2
		uint32(1)<<25 | // rg <- pll1
		uint32(1)<<27 // rcp <- pll1

	div1 := uint32(1)<<28 | // adc /2 (pow2)
		uint32(2)<<26 | // ahb /2
		uint32(5)<<21 | // pre adc /5
		uint32(10)<<16 | // uart /10
		uint32(12)<<11 | // mmc /12
		uint32(2)<<6 | // spi3 /2
		uint32(5)<<2 // pci /5

	div2 := uint32(2)<<30 | // apb4 /4 (pow2)
		uint32(2)<<28 | // apb3 /4
		uint32(2)<<26 | // apb2 /4
		uint32(2)<<24 | // apb1 /4
		uint32(2)<<22 | // apb5 /4
		uint32(6)<<16 | // clkout /6
		uint32(5)<<13 | // gfx /5
		uint32(12)<<8 | // usb_bridge /12
		uint32(12)<<4 | // usb_host /12
		uint32(12)<<0 // sdhc /12

	div3 := uint32(25)<<16 | // spi1 /25
		uint32(20)<<11 | // uart2 /20
		uint32(5)<<6 | // spi0 /5
		uint32(10)<<1 // spix /10

	div4 := uint32(10)<<28 | // rg /10
		uint32(8)<<12 // rcp /8

	return map[uint32]uint32{
		CLKSEL:   sel,
		CLKDIV1:  div1,
		CLKDIV2:  div2,
		CLKDIV3:  div3,
		CLKDIV4:  div4,
		ThrtlCnt: 1, // th = cpu/2 (pow2)
		PLLCON0:  pllcon(40, 1, 2, 1), // 500 MHz
		PLLCON1:  pllcon(80, 2, 1, 1), // 1 GHz
		PLLCON2:  pllcon(96, 1, 2, 1), // 1.2 GHz
		PLLCONG:  pllcon(32, 1, 2, 1), // 400 MHz
	}
}

func TestSetupRegistersEveryClock(t *testing.T) {
	g, err := Setup(image(bootImage()), DefaultRefHz)
	require.NoError(t, err)

	// 3 fixed sources, 4 PLLs, 5 fixed factors, 13 muxes, 24 dividers.
	assert.Len(t, g.Nodes(), 49)

	// Every exported clock appears exactly once in the export table, under
	// its binding index.
	seen := make(map[int]string)
	for _, n := range g.Nodes() {
		if n.Index() == clk.NotExported {
			continue
		}
		prev, dup := seen[n.Index()]
		require.Falsef(t, dup, "index %d claimed by %q and %q", n.Index(), prev, n.Name())
		seen[n.Index()] = n.Name()

		got, ok := g.ByIndex(n.Index())
		require.True(t, ok)
		assert.Same(t, n, got)
	}

	cpu, ok := g.ByIndex(ClkCPU)
	require.True(t, ok)
	assert.Equal(t, CpuMux, cpu.Name())
	ref, ok := g.ByIndex(ClkRefClk)
	require.True(t, ok)
	assert.Equal(t, RefClk, ref.Name())

	// ClkMC and ClkTimer exist in the binding but nothing registers them.
	_, ok = g.ByIndex(ClkMC)
	assert.False(t, ok)
	_, ok = g.ByIndex(ClkTimer)
	assert.False(t, ok)
}

func TestBootImageRates(t *testing.T) {
	g, err := Setup(image(bootImage()), DefaultRefHz)
	require.NoError(t, err)

	tests := []struct {
		name string
		want uint64
	}{
		{RefClk, 25_000_000},
		{Pll0, 500_000_000},
		{Pll1, 1_000_000_000},
		{Pll2, 1_200_000_000},
		{PllGfx, 400_000_000},
		{Pll1Div2, 500_000_000},
		{Pll2Div2, 600_000_000},
		{CpuMux, 1_000_000_000},
		{PreClk, 500_000_000},
		{Ahb, 250_000_000},
		{Apb1, 62_500_000},
		{Apb2, 62_500_000},
		{Apb5, 62_500_000},
		{Spi0, 50_000_000},
		{Spi1, 10_000_000},
		{Spi3, 125_000_000},
		{Spix, 25_000_000},
		{Uart, 50_000_000},
		{Uart2, 25_000_000},
		{Mmc, 50_000_000},
		{Sdhc, 50_000_000},
		{AdcMux, 25_000_000},
		{PreAdc, 5_000_000},
		{Adc, 2_500_000},
		{Pci, 100_000_000},
		{Gfx, 100_000_000},
		{PixMux, 400_000_000},
		{Clkout, 100_000_000},
		{UsbBridge, 50_000_000},
		{UsbHost, 50_000_000},
		{McMux, 500_000_000},
		{DvcMux, 1_200_000_000},
		{Rg, 100_000_000},
		{Rcp, 125_000_000},
		{Th, 500_000_000},
		{Axi, 250_000_000},
		{Atb, 125_000_000},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rate, err := g.RateByName(test.name)
			require.NoError(t, err)
			assert.Equal(t, test.want, rate)
		})
	}
}

func TestBypassSelectionReadsZero(t *testing.T) {
	// cpu <- sysbypck, a board input this block can't measure.
	regs := bootImage()
	regs[CLKSEL] = regs[CLKSEL]&^uint32(0x3) | 3

	g, err := Setup(image(regs), DefaultRefHz)
	require.NoError(t, err)

	rate, err := g.RateByName(CpuMux)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), rate)

	// Everything downstream of the system clock follows it to 0 Hz, with
	// no error: an unpowered upstream is a valid hardware state.
	rate, err = g.RateByName(Ahb)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), rate)
}

func TestInvalidSelectorIsLocal(t *testing.T) {
	// serial_usb's table is {2,3}; firmware left the field at 0.
	regs := bootImage()
	regs[CLKSEL] &^= uint32(0x3) << 10

	g, err := Setup(image(regs), DefaultRefHz)
	require.NoError(t, err, "build doesn't interpret selector fields")

	_, err = g.RateByName(UsbBridge)
	assert.ErrorIs(t, err, clk.ErrInvalidSelector)

	// Other clocks are unaffected.
	rate, err := g.RateByName(Uart)
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000_000), rate)
}

func TestSetupWindowTooSmall(t *testing.T) {
	g, err := Setup(mmio.SliceWindow(make([]byte, 0x40)), DefaultRefHz)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, mmio.ErrIOFault)
}

func TestSetupZeroReference(t *testing.T) {
	_, err := Setup(image(bootImage()), 0)
	assert.Error(t, err)
}
