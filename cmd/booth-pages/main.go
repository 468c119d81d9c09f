// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the booth-pages CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/booth-pages/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the booth-pages CLI. Run without a
// subcommand it behaves like generate.
var rootCmd = &cobra.Command{
	Use:   "booth-pages",
	Short: "Generate one static HTML page per booth",
	Long: `booth-pages reads the event's booth data file (public/all_booths.txt) and
writes one HTML page per booth into public/booths/, named <id>.html. The map
front end loads these pages by file name.

Paths are resolved against the project root, which defaults to the parent of
the directory holding the binary (<root>/bin/booth-pages). Override it with
--root, or give absolute --input and --output-dir paths.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
	RunE: runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./booth-pages.yaml or ~/.config/booth-pages/booth-pages.yaml)")
	pf.String("root", "", "project root for relative paths (default: parent of the binary's directory)")
	pf.String("input", types.DefaultInputPath, "booth data file")
	pf.String("output-dir", types.DefaultOutputDir, "directory for generated pages")
	pf.Bool("escape", false, "HTML-escape booth text (for untrusted input)")
	pf.String("summary", "", "print a run summary after generation: yaml or json")
	pf.BoolP("verbose", "v", false, "debug logging on stderr")

	for key, flag := range map[string]string{
		"root":       "root",
		"input":      "input",
		"output_dir": "output-dir",
		"escape":     "escape",
		"summary":    "summary",
		"verbose":    "verbose",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("booth-pages")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "booth-pages"))
		}
	}

	viper.SetEnvPrefix("BOOTH_PAGES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
