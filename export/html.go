package export

import (
	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/awantoch/beemchart/chart"
)

// DefaultTitle is the <title> of the preview page.
const DefaultTitle = "Mermaid Chart"

// MermaidScriptURL is the ES module the preview page loads.
const MermaidScriptURL = "https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.esm.min.mjs"

// The chart source is HTML-escaped; Mermaid decodes entities before parsing,
// so "--&gt;" still draws an arrow.
var previewTemplate = pongo2.Must(pongo2.FromString(`
    <!DOCTYPE html>
    <html>
    <head>
        <meta charset="UTF-8">
        <title>{{ title }}</title>
        <script type="module">
            import mermaid from '{{ script_url|safe }}';
            mermaid.initialize({ startOnLoad: true });
        </script>
    </head>
    <body>
        <div class="mermaid">
{{ source }}
        </div>
    </body>
    </html>
    `))

type htmlOptions struct {
	title string
}

// HTMLOption customizes the preview page.
type HTMLOption func(*htmlOptions)

// WithTitle sets the page title. Empty keeps DefaultTitle.
func WithTitle(title string) HTMLOption {
	return func(o *htmlOptions) {
		if title != "" {
			o.title = title
		}
	}
}

// RenderHTML wraps the chart source in a standalone page that renders it in
// the browser.
func RenderHTML(c *chart.Chart, opts ...HTMLOption) (string, error) {
	o := htmlOptions{title: DefaultTitle}
	for _, opt := range opts {
		opt(&o)
	}
	return previewTemplate.Execute(pongo2.Context{
		"title":      o.title,
		"script_url": MermaidScriptURL,
		"source":     c.Render(),
	})
}
