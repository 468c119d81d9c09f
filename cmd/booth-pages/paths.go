// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/booth-pages/pkg/types"
)

// executable is swapped in tests.
var executable = os.Executable

// generateConfig builds the run configuration from v, resolving relative
// paths against the project root.
func generateConfig(v *viper.Viper) (types.GenerateConfig, error) {
	root := v.GetString("root")
	if root == "" {
		r, err := installRoot()
		if err != nil {
			return types.GenerateConfig{}, err
		}
		root = r
	}

	input := v.GetString("input")
	if input == "" {
		input = types.DefaultInputPath
	}
	outputDir := v.GetString("output_dir")
	if outputDir == "" {
		outputDir = types.DefaultOutputDir
	}

	return types.GenerateConfig{
		InputPath: resolve(root, input),
		OutputDir: resolve(root, outputDir),
		Escape:    v.GetBool("escape"),
	}, nil
}

// installRoot returns the project root implied by the binary's location:
// the parent of the directory holding it.
func installRoot() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
