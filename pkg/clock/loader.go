package clock

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Config selects the device whose PLL frequency drives the clk domain.
type Config struct {
	Device string // device identifier, e.g. "up5k" (required)
	Dir    string // build root containing src/ (default: working directory)
}

// Loader resolves and registers the pre-pack clock domains for one device.
type Loader struct {
	cfg    Config
	logger zerolog.Logger
}

// Option customises a Loader.
type Option func(*Loader)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader for cfg.
func NewLoader(cfg Config, opts ...Option) *Loader {
	l := &Loader{
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns the loader configuration.
func (l *Loader) Config() Config {
	return l.cfg
}

// Path returns the PLL frequency file the loader reads.
func (l *Loader) Path() string {
	return FrequencyPath(l.cfg.Dir, l.cfg.Device)
}

// Load reads the PLL frequency and returns the domains to register without
// touching any context.
func (l *Loader) Load() ([]Domain, error) {
	if l.cfg.Device == "" {
		return nil, fmt.Errorf("%w: DEVICE is not set", ErrMissingConfiguration)
	}

	path := l.Path()
	l.logger.Debug().
		Str("device", l.cfg.Device).
		Str("path", path).
		Msg("reading PLL frequency")

	mhz, err := ReadFrequency(path)
	if err != nil {
		return nil, err
	}

	l.logger.Debug().
		Str("device", l.cfg.Device).
		Int("pll_mhz", mhz).
		Msg("PLL frequency resolved")

	return Domains(mhz), nil
}

// Run loads the domains and registers them on ctx. On error no AddClock call
// has been made.
func (l *Loader) Run(ctx Context) error {
	domains, err := l.Load()
	if err != nil {
		return err
	}

	for _, d := range domains {
		l.logger.Debug().
			Str("domain", d.Name).
			Int("frequency_mhz", d.FrequencyMHz).
			Msg("registering clock")
		ctx.AddClock(d.Name, d.FrequencyMHz)
	}

	l.logger.Info().
		Str("device", l.cfg.Device).
		Int("domains", len(domains)).
		Msg("clock domains registered")
	return nil
}
