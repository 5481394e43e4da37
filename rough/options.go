package rough

// DefaultSeed is used when Options.Seed is nil. Synthesis is always
// reproducible; an absent seed means "the default look", not true
// randomness.
const DefaultSeed uint64 = 42

// Options defines the style for hand-drawn stroke synthesis.
// It encapsulates every tunable the generator reads in a single value,
// copied per call and never mutated by the generator.
type Options struct {
	// Roughness is the global multiplier on all jitter magnitudes.
	// 0 yields clean geometry. Default: 1.0
	Roughness float32

	// Bowing controls how far a line's midpoint bulges from straight,
	// perpendicular to its direction. Default: 1.0
	Bowing float32

	// StrokeWidth is the nominal width in canvas units, used both for
	// perturbation scaling and triangulation. Default: 1.0
	StrokeWidth float32

	// MaxRandomnessOffset is the upper bound on per-endpoint jitter,
	// clamped relative to segment length. Default: 2.0
	MaxRandomnessOffset float32

	// CurveStepCount is the baseline subdivision count for ellipses.
	// Default: 32
	CurveStepCount int

	// DisableMultiStroke, when false, renders each edge twice with
	// independent randomness for a denser sketch look. Default: false
	DisableMultiStroke bool

	// Seed is the deterministic seed for the element's generator.
	// nil means DefaultSeed.
	Seed *uint64

	// CurveTightness is the Catmull-Rom tightness for curve-through-points
	// smoothing. Default: 0
	CurveTightness float32

	// PreserveVertices keeps the two endpoints of a line exact (shape
	// corners stay put); interior perturbation still applies.
	PreserveVertices bool

	// Dotted switches synthesis from continuous strokes to evenly spaced
	// dot centers, triangulated as pill capsules.
	Dotted bool
}

// DefaultOptions returns an Options with the standard sketch style.
func DefaultOptions() Options {
	return Options{
		Roughness:           1.0,
		Bowing:              1.0,
		StrokeWidth:         1.0,
		MaxRandomnessOffset: 2.0,
		CurveStepCount:      32,
		DisableMultiStroke:  false,
		Seed:                nil,
		CurveTightness:      0,
		PreserveVertices:    false,
		Dotted:              false,
	}
}

// SeedValue returns the effective seed: *Seed if set, DefaultSeed otherwise.
func (o Options) SeedValue() uint64 {
	if o.Seed != nil {
		return *o.Seed
	}
	return DefaultSeed
}

// WithRoughness returns a copy of the Options with the given roughness.
func (o Options) WithRoughness(r float32) Options {
	o.Roughness = r
	return o
}

// WithBowing returns a copy of the Options with the given bowing.
func (o Options) WithBowing(b float32) Options {
	o.Bowing = b
	return o
}

// WithStrokeWidth returns a copy of the Options with the given stroke width.
func (o Options) WithStrokeWidth(w float32) Options {
	o.StrokeWidth = w
	return o
}

// WithSeed returns a copy of the Options pinned to the given seed.
func (o Options) WithSeed(seed uint64) Options {
	o.Seed = &seed
	return o
}

// WithMultiStroke returns a copy of the Options with multi-stroke
// enabled or disabled.
func (o Options) WithMultiStroke(enabled bool) Options {
	o.DisableMultiStroke = !enabled
	return o
}

// WithPreserveVertices returns a copy of the Options with exact endpoint
// preservation enabled or disabled.
func (o Options) WithPreserveVertices(preserve bool) Options {
	o.PreserveVertices = preserve
	return o
}

// WithDotted returns a copy of the Options with dotted mode enabled
// or disabled.
func (o Options) WithDotted(dotted bool) Options {
	o.Dotted = dotted
	return o
}

// Clone creates a deep copy of the Options.
func (o Options) Clone() Options {
	result := o
	if o.Seed != nil {
		seed := *o.Seed
		result.Seed = &seed
	}
	return result
}
