// Package export writes rendered charts to files and blob stores.
package export

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/awantoch/beemchart/blob"
	"github.com/awantoch/beemchart/chart"
	"github.com/awantoch/beemchart/constants"
	"github.com/awantoch/beemchart/utils"
)

// Format selects what gets written: raw Mermaid source or an HTML preview.
type Format string

const (
	FormatMermaid Format = "mmd"
	FormatHTML    Format = "html"
)

// ParseFormat accepts "mmd" or "html" in any case. Empty means mmd.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(s, "."))) {
	case "", FormatMermaid:
		return FormatMermaid, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want mmd or html)", s)
	}
}

// Ext is the file extension for the format, including the dot.
func (f Format) Ext() string {
	if f == FormatHTML {
		return constants.ExtHTML
	}
	return constants.ExtMermaid
}

// ContentType is the MIME type stored alongside published blobs.
func (f Format) ContentType() string {
	if f == FormatHTML {
		return constants.ContentTypeHTML
	}
	return constants.ContentTypeMermaid
}

// WithExt appends ext to name unless name already ends with it.
func WithExt(name, ext string) string {
	if strings.HasSuffix(name, ext) {
		return name
	}
	return name + ext
}

// SaveChart writes the Mermaid source to filename, adding ".mmd" if missing,
// and returns the path written.
func SaveChart(c *chart.Chart, filename string) (string, error) {
	path := WithExt(filename, constants.ExtMermaid)
	if err := writeFile(path, c.Render()); err != nil {
		return "", err
	}
	utils.Debug("saved chart to %s", path)
	return path, nil
}

// SaveHTML writes the HTML preview page to filename, adding ".html" if
// missing, and returns the path written.
func SaveHTML(c *chart.Chart, filename string, opts ...HTMLOption) (string, error) {
	page, err := RenderHTML(c, opts...)
	if err != nil {
		return "", err
	}
	path := WithExt(filename, constants.ExtHTML)
	if err := writeFile(path, page); err != nil {
		return "", err
	}
	utils.Debug("saved html preview to %s", path)
	return path, nil
}

// Render returns the chart in the requested format.
func Render(c *chart.Chart, format Format, opts ...HTMLOption) (string, error) {
	if format == FormatHTML {
		return RenderHTML(c, opts...)
	}
	return c.Render(), nil
}

// Publish renders the chart and puts it into store. An empty name lets the
// store pick one; otherwise the format's extension is added if missing.
func Publish(ctx context.Context, store blob.Store, c *chart.Chart, name string, format Format, opts ...HTMLOption) (string, error) {
	body, err := Render(c, format, opts...)
	if err != nil {
		return "", err
	}
	if name != "" {
		name = WithExt(name, format.Ext())
	}
	url, err := store.Put(ctx, []byte(body), format.ContentType(), name)
	if err != nil {
		return "", fmt.Errorf("publish chart: %w", err)
	}
	utils.InfoCtx(ctx, "published chart", "url", url, "format", string(format))
	return url, nil
}

func writeFile(path, body string) error {
	if err := os.WriteFile(path, []byte(body), constants.FilePermission); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
