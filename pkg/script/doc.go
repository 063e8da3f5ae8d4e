// Package script renders and reads nextpnr pre-pack scripts.
//
// nextpnr executes a pre-pack script with a ctx object in scope. The scripts
// handled here consist only of '#' comments and ctx.addClock calls:
//
//	# device: up5k
//	ctx.addClock("clk_picosoc", 12)
//	ctx.addClock("clk", 48)
//
// Writer implements clock.Context, so a clock.Loader can register its domains
// straight into a script. Parser reads such a script back into domains that
// can be replayed against any clock.Context.
package script
