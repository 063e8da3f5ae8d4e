package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/prepack/pkg/clock"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List the clock domains for a device",
	Long: `Resolve the device PLL frequency and list the clock domains that would be
registered with nextpnr, in registration order.

Examples:
  prepack show --device up5k
  DEVICE=up5k prepack show --output json`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showOutput, "output", "o", "text",
		"output format: text, json or yaml")
}

func runShow(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}

	rec := clock.NewRecorder()
	if err := loader.Run(rec); err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), showOutput, ClockReport{
		Device:  loader.Config().Device,
		Source:  loader.Path(),
		Domains: rec.Calls(),
	})
}
