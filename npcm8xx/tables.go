package npcm8xx

import "github.com/npcm-tools/npcm8xx-clk/clk"

// The tables below reproduce the hardware's register contract: byte
// offsets, field geometry and selector encodings are fixed by the chip
// and must not be changed. Within each table, and across the groups the
// way Tables() concatenates them, every entry's parents appear earlier;
// the builder rejects anything else.

// PLLCONx field geometry, shared by all four PLLs.
var pllconFields = clk.PLLFields{
	FBDV:  clk.BitField{Shift: 16, Width: 12}, // bits 27:16
	OTDV2: clk.BitField{Shift: 13, Width: 3},  // bits 15:13
	OTDV1: clk.BitField{Shift: 8, Width: 3},   // bits 10:8
	INDV:  clk.BitField{Shift: 0, Width: 6},   // bits 5:0
}

var plls = []clk.PLLDesc{
	{Reg: PLLCON0, Fields: pllconFields, Name: Pll0, Parent: RefClk, Index: clk.NotExported},
	{Reg: PLLCON1, Fields: pllconFields, Name: Pll1, Parent: RefClk, Index: clk.NotExported},
	{Reg: PLLCON2, Fields: pllconFields, Name: Pll2, Parent: RefClk, Index: clk.NotExported},
	{Reg: PLLCONG, Fields: pllconFields, Name: PllGfx, Parent: RefClk, Index: clk.NotExported},
}

// Half-rate taps off the PLLs; mux parents, so they register before the
// muxes.
var pllTaps = []clk.FixedFactorDesc{
	{Name: Pll1Div2, Parent: Pll1, Mult: 1, Div: 2, Index: clk.NotExported},
	{Name: Pll2Div2, Parent: Pll2, Mult: 1, Div: 2, Index: clk.NotExported},
}

// Mux selector tables. Table[i] is the raw CLKSEL field value selecting
// Parents[i]; raw values outside the table are invalid selections.
var pllMuxTable = []uint32{0, 1, 2, 3}
var pllMuxParents = []string{Pll0, Pll1, RefClk, Pll2Div2}

var cpuckMuxTable = []uint32{0, 1, 2, 3, 7}
var cpuckMuxParents = []string{Pll0, Pll1, RefClk, SysBypCk, Pll2}

var pixckselMuxTable = []uint32{0, 2}
var pixckselMuxParents = []string{PllGfx, RefClk}

var suckselMuxTable = []uint32{2, 3}
var suckselMuxParents = []string{RefClk, Pll2Div2}

var mcckselMuxTable = []uint32{0, 2, 3}
var mcckselMuxParents = []string{Pll1Div2, RefClk, McBypCk}

var clkoutselMuxTable = []uint32{0, 1, 2, 3, 4}
var clkoutselMuxParents = []string{Pll0, Pll1, RefClk, PllGfx, Pll2Div2}

var gfxmselMuxTable = []uint32{2, 3}
var gfxmselMuxParents = []string{RefClk, Pll2Div2}

var dvcsselMuxTable = []uint32{2, 3}
var dvcsselMuxParents = []string{RefClk, Pll2}

var muxes = []clk.MuxDesc{
	{Reg: CLKSEL, Shift: 0, Mask: 0x3, Table: cpuckMuxTable, Name: CpuMux,
		Parents: cpuckMuxParents, Index: ClkCPU},
	{Reg: CLKSEL, Shift: 4, Mask: 0x3, Table: pixckselMuxTable, Name: PixMux,
		Parents: pixckselMuxParents, Index: ClkGFXPixel},
	{Reg: CLKSEL, Shift: 6, Mask: 0x3, Table: pllMuxTable, Name: SdMux,
		Parents: pllMuxParents, Index: clk.NotExported},
	{Reg: CLKSEL, Shift: 8, Mask: 0x3, Table: pllMuxTable, Name: UartMux,
		Parents: pllMuxParents, Index: clk.NotExported},
	{Reg: CLKSEL, Shift: 10, Mask: 0x3, Table: suckselMuxTable, Name: SuMux,
		Parents: suckselMuxParents, Index: clk.NotExported},
	{Reg: CLKSEL, Shift: 12, Mask: 0x3, Table: mcckselMuxTable, Name: McMux,
		Parents: mcckselMuxParents, Index: clk.NotExported},
	{Reg: CLKSEL, Shift: 14, Mask: 0x3, Table: pllMuxTable, Name: AdcMux,
		Parents: pllMuxParents, Index: clk.NotExported},
	{Reg: CLKSEL, Shift: 16, Mask: 0x3, Table: pllMuxTable, Name: GfxMux,
		Parents: pllMuxParents, Index: clk.NotExported},
	{Reg: CLKSEL, Shift: 18, Mask: 0x7, Table: clkoutselMuxTable, Name: ClkoutMux,
		Parents: clkoutselMuxParents, Index: clk.NotExported},
	{Reg: CLKSEL, Shift: 21, Mask: 0x3, Table: gfxmselMuxTable, Name: GfxmMux,
		Parents: gfxmselMuxParents, Index: clk.NotExported},
	{Reg: CLKSEL, Shift: 23, Mask: 0x3, Table: dvcsselMuxTable, Name: DvcMux,
		Parents: dvcsselMuxParents, Index: clk.NotExported},
	{Reg: CLKSEL, Shift: 25, Mask: 0x3, Table: pllMuxTable, Name: RgMux,
		Parents: pllMuxParents, Index: clk.NotExported},
	{Reg: CLKSEL, Shift: 27, Mask: 0x3, Table: pllMuxTable, Name: RcpMux,
		Parents: pllMuxParents, Index: clk.NotExported},
}

// Half-rate tap off the selected system clock; feeds the AHB divider.
var sysTaps = []clk.FixedFactorDesc{
	{Name: PreClk, Parent: CpuMux, Mult: 1, Div: 2, Index: ClkPreClk},
}

// Configurable dividers.
var divs = []clk.DivDesc{
	{Reg: CLKDIV1, Shift: 26, Width: 2, Name: Ahb, Parent: PreClk,
		Index: ClkAHB}, // CLK4DIV, bits 27:26
	{Reg: CLKDIV1, Shift: 21, Width: 5, Name: PreAdc, Parent: AdcMux,
		Index: ClkPreADC}, // PRE-ADCCKDIV, bits 25:21
	{Reg: CLKDIV1, Shift: 28, Width: 3, Pow2: true, Name: Adc, Parent: PreAdc,
		Index: ClkADC}, // ADCCKDIV, bits 30:28
	{Reg: CLKDIV1, Shift: 16, Width: 5, Name: Uart, Parent: UartMux,
		Index: ClkUART}, // UARTDIV, bits 20:16
	{Reg: CLKDIV1, Shift: 11, Width: 5, Name: Mmc, Parent: SdMux,
		Index: ClkMMC}, // MMCCKDIV, bits 15:11
	{Reg: CLKDIV1, Shift: 6, Width: 5, Name: Spi3, Parent: Ahb,
		Index: ClkSPI3}, // AHB3CKDIV, bits 10:6
	{Reg: CLKDIV1, Shift: 2, Width: 4, Name: Pci, Parent: GfxMux,
		Index: ClkPCI}, // PCICKDIV, bits 5:2

	{Reg: CLKDIV2, Shift: 30, Width: 2, Pow2: true, Name: Apb4, Parent: Ahb,
		Index: ClkAPB4}, // APB4CKDIV, bits 31:30
	{Reg: CLKDIV2, Shift: 28, Width: 2, Pow2: true, Name: Apb3, Parent: Ahb,
		Index: ClkAPB3}, // APB3CKDIV, bits 29:28
	{Reg: CLKDIV2, Shift: 26, Width: 2, Pow2: true, Name: Apb2, Parent: Ahb,
		Index: ClkAPB2}, // APB2CKDIV, bits 27:26
	{Reg: CLKDIV2, Shift: 24, Width: 2, Pow2: true, Name: Apb1, Parent: Ahb,
		Index: ClkAPB1}, // APB1CKDIV, bits 25:24
	{Reg: CLKDIV2, Shift: 22, Width: 2, Pow2: true, Name: Apb5, Parent: Ahb,
		Index: ClkAPB5}, // APB5CKDIV, bits 23:22
	{Reg: CLKDIV2, Shift: 16, Width: 5, Name: Clkout, Parent: ClkoutMux,
		Index: ClkClkout}, // CLKOUTDIV, bits 20:16
	{Reg: CLKDIV2, Shift: 13, Width: 3, Name: Gfx, Parent: GfxMux,
		Index: ClkGFX}, // GFXCKDIV, bits 15:13
	{Reg: CLKDIV2, Shift: 8, Width: 5, Name: UsbBridge, Parent: SuMux,
		Index: ClkSU}, // SUCKDIV, bits 12:8
	{Reg: CLKDIV2, Shift: 4, Width: 4, Name: UsbHost, Parent: SuMux,
		Index: ClkSU48}, // SU48CKDIV, bits 7:4
	{Reg: CLKDIV2, Shift: 0, Width: 4, Name: Sdhc, Parent: SdMux,
		Index: ClkSDHC}, // SD1CKDIV, bits 3:0

	{Reg: CLKDIV3, Shift: 16, Width: 8, Name: Spi1, Parent: Ahb,
		Index: ClkSPI1}, // SPI1CKDV, bits 23:16
	{Reg: CLKDIV3, Shift: 11, Width: 5, Name: Uart2, Parent: UartMux,
		Index: ClkUART2}, // UARTDIV2, bits 15:11
	{Reg: CLKDIV3, Shift: 6, Width: 5, Name: Spi0, Parent: Ahb,
		Index: ClkSPI0}, // SPI0CKDV, bits 10:6
	{Reg: CLKDIV3, Shift: 1, Width: 5, Name: Spix, Parent: Ahb,
		Index: ClkSPIX}, // SPIXCKDV, bits 5:1

	{Reg: CLKDIV4, Shift: 28, Width: 4, Name: Rg, Parent: RgMux,
		Index: ClkRG}, // RGREFDIV, bits 31:28
	{Reg: CLKDIV4, Shift: 12, Width: 4, Name: Rcp, Parent: RcpMux,
		Index: ClkRCP}, // RCPREFDIV, bits 15:12

	{Reg: ThrtlCnt, Shift: 0, Width: 2, Pow2: true, Name: Th, Parent: CpuMux,
		Index: ClkTH}, // TH_DIV, bits 1:0
}

// Bus taps downstream of the throttle divider.
var busTaps = []clk.FixedFactorDesc{
	{Name: Axi, Parent: Th, Mult: 1, Div: 2, Index: ClkAXI},
	{Name: Atb, Parent: Axi, Mult: 1, Div: 2, Index: clk.NotExported},
}
