// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/booth-pages/pkg/types"
)

// WriteSummary reports result to w in the requested format. SummaryNone
// writes nothing.
func WriteSummary(w io.Writer, format types.SummaryFormat, result BatchResult) error {
	switch format {
	case types.SummaryNone:
		return nil
	case types.SummaryYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case types.SummaryJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		return fmt.Errorf("unsupported summary format %q: use yaml or json", format)
	}
}
