package export

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ternarybob/gauntlet/internal/services/checklist"
)

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Gauntlet Checklist Report</title>
<style>
body { font-family: -apple-system, Segoe UI, Helvetica, Arial, sans-serif; margin: 2em auto; max-width: 960px; color: #1a1a1a; }
table { border-collapse: collapse; margin: 1em 0; width: 100%%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #f0f0f0; }
blockquote { border-left: 3px solid #ccc; margin-left: 0; padding-left: 1em; color: #555; }
</style>
</head>
<body>
%s</body>
</html>
`

// renderHTML converts the markdown report into a standalone HTML page.
func renderHTML(run *checklist.RunResult) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(renderMarkdown(run)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert report markdown: %w", err)
	}
	return []byte(fmt.Sprintf(htmlShell, body.String())), nil
}
