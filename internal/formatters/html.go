package formatters

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/grovetools/capsgat/internal/transcript"
)

var htmlPage = template.Must(template.New("transcript").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body {
    font-family: 'Courier New', monospace;
    font-size: 10pt;
    line-height: 1.2;
    margin: 20px;
    white-space: pre;
}
</style>
</head>
<body>
{{.Body}}
</body>
</html>`))

// HTML wraps the text rendering in a standalone page. GAT2 angle brackets
// in the transcript are escaped.
func HTML(doc *transcript.Document, opts Options) (string, error) {
	var buf bytes.Buffer
	err := htmlPage.Execute(&buf, struct {
		Title string
		Body  string
	}{
		Title: "GAT2 Transcript",
		Body:  strings.TrimLeft(Text(doc, opts), " "),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return buf.String(), nil
}

// Format is an export file format.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "txt"
)

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	if f == FormatText {
		return ".txt"
	}
	return ".html"
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatHTML, "":
		return FormatHTML, nil
	case FormatText, "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want html or txt)", s)
	}
}

// Render produces the export document in the given format. Timestamps are
// dropped when the transcript has none.
func Render(doc *transcript.Document, format Format, opts Options) (string, error) {
	if !doc.HasTimestamps {
		opts.IncludeTimestamps = false
	}
	if format == FormatText {
		return Text(doc, opts), nil
	}
	return HTML(doc, opts)
}
