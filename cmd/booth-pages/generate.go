// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/booth-pages/internal/generate"
	"github.com/pdiddy/booth-pages/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate booth pages from the booth data file",
	Long: `Generate reads every <start> ... <end> record from the booth data file and
writes <id>.html for each into the output directory, overwriting existing
pages. A booth that fails to write is reported and the rest continue; the
command exits non-zero at the end if any failed. A file with no records is
not an error.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := generateConfig(viper.GetViper())
	if err != nil {
		return err
	}
	format := types.SummaryFormat(viper.GetString("summary"))
	if err := checkSummaryFormat(format); err != nil {
		return err
	}
	slog.Debug("resolved paths", "input", cfg.InputPath, "output_dir", cfg.OutputDir)

	result, err := generate.Run(cmd.Context(), cfg, os.Stdout)
	if err != nil {
		return err
	}
	if err := generate.WriteSummary(os.Stdout, format, result); err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d booth page(s) failed to write", result.Failed)
	}
	return nil
}

func checkSummaryFormat(f types.SummaryFormat) error {
	switch f {
	case types.SummaryNone, types.SummaryYAML, types.SummaryJSON:
		return nil
	}
	return fmt.Errorf("unsupported summary format %q: use yaml or json", f)
}
