// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package booth

import (
	"regexp"

	"github.com/pdiddy/booth-pages/pkg/types"
)

// space matches any Unicode whitespace, not only the ASCII set RE2's \s covers.
const space = `[\s\v\x1c-\x1f\x{85}\p{Z}]*`

// recordPattern matches one booth entry. The description runs, across line
// breaks, up to the nearest end marker. Entries without an end marker do not
// match and are dropped.
var recordPattern = regexp.MustCompile(`(?s)<start>` + space + `id: "(.*?)"` + space + `name: "(.*?)"` + space + `description: (.*?)<end>`)

// Extract returns the records found in text, in input order. Matches never
// overlap. Text with no complete entry yields an empty slice.
func Extract(text string) []types.Record {
	matches := recordPattern.FindAllStringSubmatch(text, -1)
	records := make([]types.Record, 0, len(matches))
	for _, m := range matches {
		records = append(records, types.Record{
			ID:      m[1],
			Name:    m[2],
			Content: m[3],
		})
	}
	return records
}
