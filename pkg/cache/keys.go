package cache

// Keyer derives cache keys.
type Keyer interface {
	SolutionKey(opts SolutionKeyOpts) string
}

// SolutionKeyOpts are the inputs that determine a solution.
type SolutionKeyOpts struct {
	Biscuits   int     `json:"n"`
	Width      float64 `json:"w"`
	Length     float64 `json:"l"`
	Iterations uint64  `json:"iters"`
	Seed       uint64  `json:"seed"`
	Schedule   string  `json:"schedule,omitempty"`
	// Temperature is the initial temperature; zero means the default.
	Temperature float64 `json:"t0,omitempty"`
}

// DefaultKeyer produces "solution:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SolutionKey hashes every field of opts.
func (DefaultKeyer) SolutionKey(opts SolutionKeyOpts) string {
	return hashKey("solution", opts)
}

// ScopedKeyer prefixes another keyer's keys, so that several tools can share
// one Redis database without colliding.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) SolutionKey(opts SolutionKeyOpts) string {
	return k.prefix + k.inner.SolutionKey(opts)
}
