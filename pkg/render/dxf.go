package render

import (
	"os"
	"path/filepath"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"

	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
)

// DXF layer names.
const (
	LayerPan      = "pan"
	LayerBiscuits = "biscuits"
)

// RenderDXF writes a CAD drawing in pan units: the pan outline as four lines
// on LayerPan and one circle per biscuit on LayerBiscuits. Padding is not
// applied; the pan's lower-left corner sits at the origin.
func RenderDXF(width, length float64, pl geom.Placement, opts ...Option) ([]byte, error) {
	c := newConfig(opts...)

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(LayerPan, color.White, table.LT_CONTINUOUS, true); err != nil {
		return nil, err
	}
	corners := [][2]float64{{0, 0}, {width, 0}, {width, length}, {0, length}}
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return nil, err
		}
	}

	if _, err := d.AddLayer(LayerBiscuits, color.Red, table.LT_CONTINUOUS, true); err != nil {
		return nil, err
	}
	for _, p := range pl {
		if _, err := d.Circle(p.X, p.Y, 0, c.marker); err != nil {
			return nil, err
		}
	}

	// the drawing only saves to a path
	dir, err := os.MkdirTemp("", "biscuits-dxf-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "placement.dxf")
	if err := d.SaveAs(path); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
