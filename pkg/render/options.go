package render

// Defaults shared by every renderer.
const (
	DefaultPadding      = 10.0
	DefaultMarkerRadius = 1.0
	DefaultScale        = 4.0 // PNG pixels per pan unit
)

// Option configures a renderer.
type Option func(*config)

type config struct {
	padding float64
	marker  float64
	fill    string
	stroke  string
	scale   float64
}

func WithPadding(p float64) Option      { return func(c *config) { c.padding = p } }
func WithMarkerRadius(r float64) Option { return func(c *config) { c.marker = r } }
func WithFill(color string) Option      { return func(c *config) { c.fill = color } }
func WithStroke(color string) Option    { return func(c *config) { c.stroke = color } }

// WithScale sets the PNG resolution in pixels per pan unit.
func WithScale(s float64) Option { return func(c *config) { c.scale = s } }

func newConfig(opts ...Option) config {
	c := config{
		padding: DefaultPadding,
		marker:  DefaultMarkerRadius,
		fill:    "black",
		stroke:  "black",
		scale:   DefaultScale,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
