package render

import (
	"bytes"
	"fmt"

	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
)

// RenderSVG draws the pan outline and one circle per biscuit. The document
// holds exactly len(pl)+1 shapes.
func RenderSVG(width, length float64, pl geom.Placement, opts ...Option) []byte {
	c := newConfig(opts...)
	pad := c.padding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g">`+"\n",
		width+2*pad, length+2*pad)
	fmt.Fprintf(&buf, `  <path d="M%g,%g v%g h%g v%g z" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
		pad, pad, length, width, -length, c.stroke)
	for _, p := range pl {
		fmt.Fprintf(&buf, `  <circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n",
			p.X+pad, p.Y+pad, c.marker, c.fill)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
