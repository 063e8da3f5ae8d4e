package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	xlog "github.com/OpenTraceLab/prepack/internal/log"
	"github.com/OpenTraceLab/prepack/internal/watch"
	"github.com/OpenTraceLab/prepack/pkg/clock"
	"github.com/OpenTraceLab/prepack/pkg/script"
)

var (
	generateOutput string
	generateWatch  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a nextpnr pre-pack script",
	Long: `Render the clock registrations as a nextpnr pre-pack script.

The script is written atomically to --out, or to stdout when --out is "-".
With --watch the command keeps running and rewrites the script whenever the
device PLL frequency file changes.

Examples:
  prepack generate --device up5k
  prepack generate --device up5k -o build/pre_pack.py
  prepack generate -o build/pre_pack.py --watch`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "-",
		`output script path ("-" for stdout)`)
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false,
		"regenerate when the PLL frequency file changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateWatch && generateOutput == "-" {
		return fmt.Errorf("--watch requires --out to name a file")
	}

	loader, err := newLoader()
	if err != nil {
		return err
	}

	if err := generateOnce(cmd, loader); err != nil {
		return err
	}
	if !generateWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := xlog.WithComponent("generate")
	w := watch.New(loader.Path(), watch.DefaultDebounce, xlog.WithComponent("watch"))
	return w.Run(ctx, func() {
		if err := generateOnce(cmd, loader); err != nil {
			logger.Error().Err(err).Str("path", loader.Path()).Msg("regenerate failed")
			return
		}
		logger.Info().Str("out", generateOutput).Msg("pre-pack script regenerated")
	})
}

func generateOnce(cmd *cobra.Command, loader *clock.Loader) error {
	rec := clock.NewRecorder()
	if err := loader.Run(rec); err != nil {
		return err
	}

	data := script.Render(loader.Config().Device, loader.Path(), rec.Calls())
	if generateOutput == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return script.WriteFile(generateOutput, data)
}
