// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns booth description text into HTML fragments and
// assembles them into standalone documents. Everything here is a pure
// transform; nothing touches the filesystem.
package render

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/pdiddy/booth-pages/pkg/types"
)

var (
	// urlPattern matches http(s) URLs and bare www. hosts. A match ends at
	// any Unicode whitespace (U+3000 and U+00A0 included), an angle bracket,
	// or a double quote.
	urlPattern = regexp.MustCompile(`https?://[^\s\v\x1c-\x1f\x{85}\p{Z}<>"]+|www\.[^\s\v\x1c-\x1f\x{85}\p{Z}<>"]+`)

	// separatorPattern matches a line made entirely of one <line> element.
	// The inner text may not close the element early.
	separatorPattern = regexp.MustCompile(`^<line>(.*?)</line>$`)
)

const hr = "<hr>"

// Options controls rendering. The zero value reproduces the generator's
// historical output: record text passes through unescaped.
type Options struct {
	// Escape HTML-escapes record text. URLs are still linked.
	Escape bool
}

func (o Options) text(s string) string {
	if o.Escape {
		return html.EscapeString(s)
	}
	return s
}

// Lines splits description content into trimmed, non-empty lines.
func Lines(content string) []string {
	var lines []string
	for _, l := range strings.Split(content, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Classify reports whether a trimmed line is a separator or plain text. For
// separators it also returns the trimmed inner text.
func Classify(line string) (types.LineKind, string) {
	m := separatorPattern.FindStringSubmatch(line)
	if m == nil || strings.Contains(m[1], "</line>") {
		return types.LineText, ""
	}
	return types.LineSeparator, strings.TrimSpace(m[1])
}

// RenderLine renders one trimmed content line as an HTML fragment.
//
//	<line></line>      -> <hr>
//	<line>Note</line>  -> <p>Note</p>\n<hr>
//	anything else      -> <p>...</p>
func RenderLine(line string, opts Options) string {
	kind, inner := Classify(line)
	if kind == types.LineSeparator {
		if inner == "" {
			return hr
		}
		return "<p>" + LinkURLs(inner, opts) + "</p>\n" + hr
	}
	return "<p>" + LinkURLs(line, opts) + "</p>"
}

// RenderContent renders every line of a record's description, in order.
func RenderContent(content string, opts Options) []string {
	lines := Lines(content)
	fragments := make([]string, len(lines))
	for i, l := range lines {
		fragments[i] = RenderLine(l, opts)
	}
	return fragments
}

// LinkURLs wraps each URL in text in an anchor that opens a new browsing
// context. A bare www. host gets an https:// href while its visible text is
// left as written. Text between URLs is not modified unless opts.Escape is
// set.
func LinkURLs(text string, opts Options) string {
	locs := urlPattern.FindAllStringIndex(text, -1)
	if locs == nil {
		return opts.text(text)
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(opts.text(text[last:loc[0]]))
		b.WriteString(anchor(text[loc[0]:loc[1]], opts))
		last = loc[1]
	}
	b.WriteString(opts.text(text[last:]))
	return b.String()
}

func anchor(url string, opts Options) string {
	href := url
	if strings.HasPrefix(url, "www.") {
		href = "https://" + url
	}
	return `<a href="` + opts.text(href) + `" target="_blank">` + opts.text(url) + "</a>"
}
