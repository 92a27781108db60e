package img2ascii

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/pkg/browser"
)

// HTMLOptions styles the exported page. Colors are #rgb or #rrggbb;
// empty colors emit no style rule.
type HTMLOptions struct {
	Title      string
	Background string
	Foreground string
}

func (o HTMLOptions) validate() error {
	if o.Background != "" {
		if _, err := ParseColor(o.Background); err != nil {
			return fmt.Errorf("background %q: %w", o.Background, err)
		}
	}
	if o.Foreground != "" {
		if _, err := ParseColor(o.Foreground); err != nil {
			return fmt.Errorf("foreground %q: %w", o.Foreground, err)
		}
	}
	return nil
}

// DefaultHTMLOptions is a light-on-dark page in a monospace font.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{
		Title:      "ASCII art",
		Background: "#383838",
		Foreground: "#e0e0e0",
	}
}

var htmlPage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if or .Background .Foreground}}
<style>
body { margin: 0;{{if .Background}} background: {{.Background}};{{end}}{{if .Foreground}} color: {{.Foreground}};{{end}} }
pre { font-family: monospace; line-height: 1; }
</style>
{{- end}}
</head>
<body>
<pre>{{.Text}}</pre>
</body>
</html>
`))

type htmlData struct {
	HTMLOptions
	Text string
}

// WriteHTML writes g as a minimal HTML document with the art inside a
// <pre> element, so whitespace and alignment are kept.
func WriteHTML(w io.Writer, g Grid, opts HTMLOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	return htmlPage.Execute(w, htmlData{HTMLOptions: opts, Text: g.String()})
}

// ExportHTML writes g to a new ascii*.html file in dir (the system temp
// directory when dir is empty) and returns its path. Failures are
// *ExportError; invalid colors fail with Op "render" before any file is
// created.
func ExportHTML(dir string, g Grid, opts HTMLOptions) (string, error) {
	if err := opts.validate(); err != nil {
		return "", &ExportError{Op: "render", Path: dir, Err: err}
	}
	f, err := os.CreateTemp(dir, "ascii*.html")
	if err != nil {
		return "", &ExportError{Op: "create", Path: dir, Err: err}
	}
	path := f.Name()

	err = WriteHTML(f, g, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", &ExportError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}

// OpenInBrowser hands path to the operating system's default handler.
func OpenInBrowser(path string) error {
	if err := openFile(path); err != nil {
		return &ExportError{Op: "open", Path: path, Err: err}
	}
	return nil
}

// openFile is swapped out in tests.
var openFile = browser.OpenFile
