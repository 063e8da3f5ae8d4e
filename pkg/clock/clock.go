package clock

// Context is the capability a place-and-route tool exposes to pre-pack hooks.
type Context interface {
	AddClock(name string, frequencyMHz int)
}

// Domain is a single named clock registration.
type Domain struct {
	Name         string `json:"name" yaml:"name"`
	FrequencyMHz int    `json:"frequency_mhz" yaml:"frequency_mhz"`
}

// Fixed domain names and frequencies.
const (
	DomainPicoSoC   = "clk_picosoc"
	DomainPLL       = "clk"
	DomainSignal    = "sig_clk"
	DomainSignalBuf = "sig_clk_buf"

	PicoSoCMHz = 12
	// SignalMHz is a packing approximation, not the measured signal rate.
	SignalMHz = 50
)

// Domains returns the registrations for a design whose PLL runs at pllMHz,
// in the order they must be applied.
func Domains(pllMHz int) []Domain {
	return []Domain{
		{Name: DomainPicoSoC, FrequencyMHz: PicoSoCMHz},
		{Name: DomainPLL, FrequencyMHz: pllMHz},
		{Name: DomainSignal, FrequencyMHz: SignalMHz},
		{Name: DomainSignalBuf, FrequencyMHz: SignalMHz},
	}
}

// Apply registers domains on ctx in slice order.
func Apply(ctx Context, domains []Domain) {
	for _, d := range domains {
		ctx.AddClock(d.Name, d.FrequencyMHz)
	}
}
