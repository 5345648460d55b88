package npcm8xx

// Byte offsets of the clock controller registers within the block. Only
// CLKSEL, the CLKDIVs, the PLLCONs and THRTL_CNT feed the tree model; the
// rest are listed to document the block layout.
const (
	CLKEN1     = 0x00
	CLKSEL     = 0x04
	CLKDIV1    = 0x08
	PLLCON0    = 0x0C
	PLLCON1    = 0x10
	SWRSTR     = 0x14
	IRQWAKECON = 0x18
	IRQWAKEFLA = 0x1C
	IPSRST1    = 0x20
	IPSRST2    = 0x24
	CLKEN2     = 0x28
	CLKDIV2    = 0x2C
	CLKEN3     = 0x30
	IPSRST3    = 0x34
	WD0RCR     = 0x38
	WD1RCR     = 0x3C
	WD2RCR     = 0x40
	SWRSTC1    = 0x44
	SWRSTC2    = 0x48
	SWRSTC3    = 0x4C
	SWRSTC4    = 0x50
	PLLCON2    = 0x54
	CLKDIV3    = 0x58
	CORSTC     = 0x5C
	PLLCONG    = 0x60
	AHBCKFI    = 0x64
	SECCNT     = 0x68
	CNTR25M    = 0x6C
	CLKEN4     = 0x70
	CLKDIV4    = 0x7C
	ThrtlCnt   = 0xC0
)

// BlockSize covers every register above; a window at least this large is
// needed to build the tree.
const BlockSize = 0xC4
