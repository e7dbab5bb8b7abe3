package render

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
)

// RenderPDF draws the placement on a single page sized to the padded pan,
// one pan unit per millimetre.
func RenderPDF(width, length float64, pl geom.Placement, opts ...Option) ([]byte, error) {
	c := newConfig(opts...)
	pad := c.padding

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: width + 2*pad, Ht: length + 2*pad},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	stroke := parseColor(c.stroke)
	pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
	pdf.SetLineWidth(0.3)
	pdf.Rect(pad, pad, width, length, "D")

	fill := parseColor(c.fill)
	pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	for _, p := range pl {
		pdf.Circle(p.X+pad, p.Y+pad, c.marker, "F")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
