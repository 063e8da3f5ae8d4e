// Package clock registers the pre-pack clock domains of the picosoc FPGA
// build against a place-and-route context.
//
// The place-and-route tool owns the context; this package only calls its
// AddClock capability. A Loader resolves the PLL frequency for a device from
// src/<device>_pll_freq and registers four domains in a fixed order:
//
//	clk_picosoc  12 MHz
//	clk          the PLL frequency read from the device file
//	sig_clk      50 MHz
//	sig_clk_buf  50 MHz
//
// sig_clk and sig_clk_buf are registered at 50 MHz regardless of the real
// signal clock rate so the packer works against a tighter constraint.
//
// # Usage
//
//	loader := clock.NewLoader(clock.Config{Device: "up5k"})
//	if err := loader.Run(ctx); err != nil {
//		return err
//	}
//
// Every failure happens before the first AddClock call, so a context never
// sees a partial set of registrations.
package clock
