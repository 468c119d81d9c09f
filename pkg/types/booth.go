// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is one booth entry extracted from the input file. A record is
// immutable once extracted and produces exactly one output document.
type Record struct {
	// ID identifies the booth and names the output file (<id>.html).
	ID string `json:"id" yaml:"id"`

	// Name is the display title of the booth.
	Name string `json:"name" yaml:"name"`

	// Content is the raw, multi-line description text between the
	// description field and the end marker.
	Content string `json:"content" yaml:"content"`
}

// LineKind classifies a trimmed content line.
type LineKind string

const (
	// LineSeparator is a line fully wrapped in <line>...</line>. It renders
	// as a horizontal rule, preceded by a paragraph when it carries text.
	LineSeparator LineKind = "separator"

	// LineText is any other line. It renders as a paragraph with URLs linked.
	LineText LineKind = "text"
)
