// Package export turns a segment sequence into one standalone HTML report.
// The document is self-contained except for the mermaid script reference:
// prose is converted to HTML server-side, diagram sources are embedded in
// .mermaid containers and rendered client-side when the file is opened.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/codelens/codelens/internal/segment"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

const header = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Code Analysis for %[1]s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; max-width: 1000px; margin: auto; background-color: #f9f9f9; }
        h1, h2, h3, h4 { color: #333; border-bottom: 1px solid #ddd; padding-bottom: 5px; }
        pre { background: #2d2d2d; color: #f1f1f1; padding: 15px; border-radius: 5px; overflow-x: auto; }
        code { font-family: "Courier New", Courier, monospace; }
        .mermaid { text-align: center; margin-bottom: 20px; padding: 10px; border: 1px solid #ddd; border-radius: 5px; background-color: #fff; }
        ul, ol { padding-left: 20px; }
        blockquote { border-left: 4px solid #ddd; padding-left: 10px; color: #555; margin-left: 0; }
    </style>
</head>
<body>
    <h1>Code Analysis for %[1]s</h1>
`

const footer = `    <script type="module">
        import mermaid from 'https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.esm.min.mjs';
        mermaid.initialize({ startOnLoad: true });
    </script>
</body>
</html>
`

// FileName derives the download name for a report from the uploaded file's
// name: base name with the extension replaced by the fixed suffix.
func FileName(uploadedName string) string {
	base := strings.TrimSuffix(uploadedName, filepath.Ext(uploadedName))
	return base + "_analysis.html"
}

// Build renders the segment sequence into the export document. Diagram
// sources go into the containers verbatim; mermaid reads element text, and
// escaping would change the embedded diagram bytes.
func Build(segments []segment.Segment, displayName string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, header, template.HTMLEscapeString(displayName))

	for _, s := range segments {
		if s.Kind == segment.Diagram {
			fmt.Fprintf(&b, "<div class=\"mermaid\">\n%s\n</div>\n", s.Text)
			continue
		}
		html, err := RenderMarkdown(s.Text)
		if err != nil {
			return "", fmt.Errorf("prose conversion failed: %w", err)
		}
		b.WriteString(html)
	}

	b.WriteString(footer)
	return b.String(), nil
}

// RenderMarkdown converts one prose segment to HTML. Shared between the
// export document and the interactive view so both render prose identically.
func RenderMarkdown(prose string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(prose), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
