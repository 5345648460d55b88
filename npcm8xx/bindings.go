package npcm8xx

// Export indices under which consumers look clocks up, following the
// npcm845 clock binding. Clocks internal to the tree carry
// clk.NotExported instead.
const (
	ClkCPU = iota
	ClkGFXPixel
	ClkMC
	ClkADC
	ClkAHB
	ClkTimer
	ClkUART
	ClkUART2
	ClkMMC
	ClkSPI3
	ClkPCI
	ClkAXI
	ClkAPB4
	ClkAPB3
	ClkAPB2
	ClkAPB1
	ClkAPB5
	ClkClkout
	ClkGFX
	ClkSU
	ClkSU48
	ClkSDHC
	ClkSPI0
	ClkSPI1
	ClkSPIX
	ClkRG
	ClkRCP
	ClkPreADC
	ClkTH
	ClkRefClk
	ClkPreClk

	NumClocks
)
