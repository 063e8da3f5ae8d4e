package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/prepack/internal/config"
	xlog "github.com/OpenTraceLab/prepack/internal/log"
	"github.com/OpenTraceLab/prepack/pkg/clock"
)

var (
	// Global flags
	verbose  bool
	logLevel string
	device   string
	buildDir string
	envFile  string

	// lookupEnv is swapped out in tests.
	lookupEnv config.Lookup = config.OSLookup
)

var rootCmd = &cobra.Command{
	Use:   "prepack",
	Short: "nextpnr pre-pack clock constraints for picosoc builds",
	Long: `prepack reads the PLL frequency for a device from src/<DEVICE>_pll_freq
and registers the pre-pack clock domains for nextpnr:

  clk_picosoc  12 MHz
  clk          PLL frequency
  sig_clk      50 MHz
  sig_clk_buf  50 MHz

The device comes from --device, the DEVICE environment variable or a
.env file, in that order.

Examples:
  prepack show --device up5k                  # List the clock domains
  prepack generate -o pre_pack.py             # Write a nextpnr pre-pack script
  prepack generate -o pre_pack.py --watch     # Regenerate when the PLL file changes
  prepack inspect pre_pack.py                 # List clocks in an existing script`,
	Version:       "0.9.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logLevel
		if verbose {
			level = "debug"
		}
		xlog.Configure(xlog.Config{Level: level, Output: cmd.ErrOrStderr(), Pretty: true})
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&device, "device", "d", "", "target device (default: $DEVICE)")
	rootCmd.PersistentFlags().StringVar(&buildDir, "dir", "", "build root containing src/ (default: working directory)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file providing DEVICE (default: .env if present)")
}

// newLoader resolves the configuration from flags and environment.
func newLoader() (*clock.Loader, error) {
	cfg, err := config.Resolve(config.Options{
		Device:  device,
		Dir:     buildDir,
		EnvFile: envFile,
		Lookup:  lookupEnv,
	})
	if err != nil {
		return nil, err
	}
	return clock.NewLoader(cfg, clock.WithLogger(xlog.WithComponent("loader"))), nil
}
