package render

import (
	"fmt"
	"strconv"

	"github.com/nathaniel-may/biscuit-packing/pkg/errors"
	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
)

// Format names an output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatDXF  Format = "dxf"
	FormatJSON Format = "json"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatSVG, FormatPNG, FormatPDF, FormatDXF, FormatJSON}

// Render dispatches to the renderer for format.
func Render(format Format, width, length float64, pl geom.Placement, opts ...Option) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(width, length, pl, opts...), nil
	case FormatPNG:
		return RenderPNG(width, length, pl, opts...)
	case FormatPDF:
		return RenderPDF(width, length, pl, opts...)
	case FormatDXF:
		return RenderDXF(width, length, pl, opts...)
	case FormatJSON:
		return RenderJSON(width, length, pl, opts...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q", format)
	}
}

// Filename is the conventional output file name for a run, e.g.
// "5_biscuits_100X200_pan.svg".
func Filename(n int, width, length float64, format Format) string {
	return fmt.Sprintf("%d_biscuits_%sX%s_pan.%s", n, formatNumber(width), formatNumber(length), format)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
