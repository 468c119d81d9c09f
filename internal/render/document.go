// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/booth-pages/pkg/types"
)

// documentTmpl is the page every booth is published as. The stylesheet is
// part of the template; its braces are literal text, not actions.
var documentTmpl = template.Must(template.New("booth").Parse(`<!DOCTYPE html>
<html>

<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.ID}} - {{.Name}}</title>
    <style>
        body { font-family: 'Arial', sans-serif; color: #333; line-height: 1.6; max-width: 600px; margin: 0 auto; }
        h1 { color: #007bff; border-bottom: 2px solid #eee; padding-bottom: 10px; margin-top: 0; }
        .description { background: #edf4f7; border-radius: 8px; padding: 1.5rem; margin-top: 20px; }
        .content-section p { margin: 0.5rem 0; }
        .activity-header { font-weight: bold; color: #28a745; margin-top: 1rem; }
        .tip { margin-top: 1rem; padding: 0.5rem 1rem; border-left: 4px solid #ffc107; background-color: #fff9e6; }
    </style>
</head>
<body>
    <div class="description">
        <div class="content-section">
            {{.Content}}
        </div>
    </div>
</body>
</html>
`))

type documentData struct {
	ID      string
	Name    string
	Content string
}

// Document assembles the full HTML page for rec from its rendered line
// fragments. Fragments are joined with newlines in the order given.
func Document(rec types.Record, fragments []string, opts Options) (string, error) {
	data := documentData{
		ID:      opts.text(rec.ID),
		Name:    opts.text(rec.Name),
		Content: strings.Join(fragments, "\n"),
	}

	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering document %s: %w", rec.ID, err)
	}
	return buf.String(), nil
}

// Page renders rec's description and assembles its document in one step.
func Page(rec types.Record, opts Options) (string, error) {
	return Document(rec, RenderContent(rec.Content, opts), opts)
}
