// SPDX-License-Identifier: MIT
// Package: vizlath/render
//
// encode.go — turning an assembled Chart into bytes and embeds.
//
// Surfaces:
//   • PNG      — raster bytes at the configured size and DPI.
//   • DataURI  — "data:image/png;base64,…" (notebook/inline embedding).
//   • Markdown — an <img> tag wrapping the data URI, optionally sized.
//   • SavePNG  — PNG bytes written to disk (same bytes PNG returns).
//   • QuickSeries — generate-to-file convenience with the default config.
//
// Determinism:
//   • The raster pipeline (vgimg + image/png) carries no timestamps; equal
//     charts encode equal bytes.

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"os"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultAlt is the <img> alt text used when Markdown is given an empty one.
const DefaultAlt = "Data Visualization"

// PNG encodes the chart as PNG bytes at cfg.WidthIn × cfg.HeightIn inches
// and cfg.DPI.
func (c *Chart) PNG() ([]byte, error) {
	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(c.cfg.WidthIn)*vg.Inch, vg.Length(c.cfg.HeightIn)*vg.Inch),
		vgimg.UseDPI(c.cfg.DPI),
	)
	c.plot.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(&buf); err != nil {
		return nil, renderErrorf(opPNG, "encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI encodes the chart as an RFC 2397 data URI:
// "data:image/png;base64,…".
func (c *Chart) DataURI() (string, error) {
	b, err := c.PNG()
	if err != nil {
		return "", renderErrorf(opDataURI, "rendering: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// Markdown wraps the chart's data URI in an HTML <img> tag suitable for
// markdown documents and notebook cells. An empty alt falls back to
// DefaultAlt; widthPx/heightPx add a style attribute when positive, so 0
// means "natural size".
func (c *Chart) Markdown(alt string, widthPx, heightPx int) (string, error) {
	uri, err := c.DataURI()
	if err != nil {
		return "", renderErrorf(opMarkdown, "embedding: %w", err)
	}
	if alt == "" {
		alt = DefaultAlt
	}

	style := ""
	switch {
	case widthPx > 0 && heightPx > 0:
		style = fmt.Sprintf(` style="width: %dpx; height: %dpx"`, widthPx, heightPx)
	case widthPx > 0:
		style = fmt.Sprintf(` style="width: %dpx"`, widthPx)
	case heightPx > 0:
		style = fmt.Sprintf(` style="height: %dpx"`, heightPx)
	}
	return fmt.Sprintf(`<img src="%s" alt="%s"%s>`, uri, html.EscapeString(alt), style), nil
}

// SavePNG writes the chart's PNG bytes to path (0644). The file content is
// byte-identical to what PNG returns.
func (c *Chart) SavePNG(path string) error {
	b, err := c.PNG()
	if err != nil {
		return renderErrorf(opSave, "rendering: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return renderErrorf(opSave, "writing %s: %w", path, err)
	}
	return nil
}

// QuickSeries renders xs with DefaultChartConfig straight to a PNG file.
// It is the one-liner for demos and smoke checks; anything configurable
// should go through Series + SavePNG.
func QuickSeries(xs []float64, path string) error {
	chart, err := Series(xs, DefaultChartConfig())
	if err != nil {
		return renderErrorf(opQuick, "building chart: %w", err)
	}
	return chart.SavePNG(path)
}
