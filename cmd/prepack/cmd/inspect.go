package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/prepack/pkg/script"
)

var inspectOutput string

var inspectCmd = &cobra.Command{
	Use:   "inspect <script>",
	Short: "List the clock registrations in a pre-pack script",
	Long: `Parse a pre-pack script made of ctx.addClock calls and comments, such as
one written by "prepack generate", and list its clock registrations.

Examples:
  prepack inspect build/pre_pack.py
  prepack inspect build/pre_pack.py --output yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", "text",
		"output format: text, json or yaml")
}

func runInspect(cmd *cobra.Command, args []string) error {
	parser, err := script.NewParser()
	if err != nil {
		return err
	}

	s, err := parser.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	domains, err := s.Domains()
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), inspectOutput, ClockReport{
		Source:  args[0],
		Domains: domains,
	})
}
