package npcm8xx

// Single copy of the strings used to refer to clocks within this package.
// Names are the graph's primary key; parents are linked by these strings.
const (
	RefClk    = "refclk"
	SysBypCk  = "sysbypck"
	McBypCk   = "mcbypck"
	Pll0      = "pll0"
	Pll1      = "pll1"
	Pll1Div2  = "pll1_div2"
	Pll2      = "pll2"
	PllGfx    = "pll_gfx"
	Pll2Div2  = "pll2_div2"
	PixMux    = "gfx_pixel"
	McMux     = "mc_phy"
	CpuMux    = "cpu" // AKA system clock
	Axi       = "axi" // AKA CLK2
	Ahb       = "ahb" // AKA CLK4
	ClkoutMux = "clkout_mux"
	UartMux   = "uart_mux"
	SdMux     = "sd_mux"
	GfxmMux   = "gfxm_mux"
	SuMux     = "serial_usb_mux"
	DvcMux    = "dvc_mux"
	GfxMux    = "gfx_mux"
	AdcMux    = "adc_mux"
	Spi0      = "spi0"
	Spi1      = "spi1"
	Spi3      = "spi3"
	Spix      = "spix"
	Apb1      = "apb1"
	Apb2      = "apb2"
	Apb3      = "apb3"
	Apb4      = "apb4"
	Apb5      = "apb5"
	Clkout    = "clkout"
	PreAdc    = "pre adc"
	Uart      = "uart"
	Uart2     = "uart2"
	Mmc       = "mmc"
	Sdhc      = "sdhc"
	Adc       = "adc"
	Gfx       = "gfx0_gfx1_mem"
	UsbHost   = "usb_host"
	UsbBridge = "usb_bridge"
	Pci       = "pci"
	Th        = "th"
	Atb       = "atb"
	PreClk    = "pre_clk"
	RgMux     = "rg_mux"
	RcpMux    = "rcp_mux"
	Rg        = "rg"
	Rcp       = "rcp"
)
