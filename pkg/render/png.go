package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
)

// RenderPNG rasterizes the placement on a white background.
func RenderPNG(width, length float64, pl geom.Placement, opts ...Option) ([]byte, error) {
	c := newConfig(opts...)
	s := c.scale

	w := int((width + 2*c.padding) * s)
	h := int((length + 2*c.padding) * s)
	dc := gg.NewContext(max(w, 1), max(h, 1))
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(parseColor(c.stroke))
	dc.SetLineWidth(s / 2)
	dc.DrawRectangle(c.padding*s, c.padding*s, width*s, length*s)
	dc.Stroke()

	dc.SetColor(parseColor(c.fill))
	for _, p := range pl {
		dc.DrawCircle((p.X+c.padding)*s, (p.Y+c.padding)*s, c.marker*s)
		dc.Fill()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var namedColors = map[string]color.RGBA{
	"black": {0, 0, 0, 255},
	"white": {255, 255, 255, 255},
	"red":   {220, 38, 38, 255},
	"brown": {139, 90, 43, 255},
	"gray":  {128, 128, 128, 255},
}

// parseColor accepts a named color or #rrggbb. Unknown values render black.
func parseColor(s string) color.RGBA {
	if c, ok := namedColors[s]; ok {
		return c
	}
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{r, g, b, 255}
		}
	}
	return namedColors["black"]
}
