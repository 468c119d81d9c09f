// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default locations, relative to the project root, used when the config does
// not name the input file or output directory.
const (
	DefaultInputPath = "public/all_booths.txt"
	DefaultOutputDir = "public/booths"
)

// SummaryFormat selects how the batch summary is reported after a run.
type SummaryFormat string

const (
	SummaryNone SummaryFormat = ""
	SummaryYAML SummaryFormat = "yaml"
	SummaryJSON SummaryFormat = "json"
)

// GenerateConfig holds settings for one generation run.
type GenerateConfig struct {
	// InputPath is the booth data file to read.
	InputPath string `json:"input" yaml:"input"`

	// OutputDir is the directory receiving one <id>.html per record.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Escape HTML-escapes record text before rendering. Off by default;
	// the booth file is trusted and may carry inline markup.
	Escape bool `json:"escape" yaml:"escape"`
}
