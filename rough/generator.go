package rough

import "math/rand/v2"

// Generator synthesizes hand-drawn stroke geometry. It exclusively owns
// one seeded pseudo-random source; every perturbation draws from it in a
// fixed call order, so output is reproducible bit-for-bit for a fixed
// seed and call sequence.
//
// A Generator is created per finalized element, used to synthesize that
// element's geometry, then discarded. It must not be shared between
// goroutines; concurrent synthesis uses one Generator per element.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded from the given options.
// A nil Options.Seed produces the DefaultSeed generator.
func NewGenerator(o Options) *Generator {
	return NewSeededGenerator(o.SeedValue())
}

// NewSeededGenerator creates a Generator with an explicit seed.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// random returns a uniform value in [0, 1), advancing the internal state.
func (g *Generator) random() float32 {
	return g.rng.Float32()
}

// offset returns a jitter value in [min, max) scaled by the style's
// roughness and the per-call roughness gain.
func (g *Generator) offset(min, max float32, o Options, roughnessGain float32) float32 {
	return o.Roughness * roughnessGain * (g.random()*(max-min) + min)
}

// offsetOpt returns a symmetric jitter value in [-x, x).
func (g *Generator) offsetOpt(x float32, o Options, roughnessGain float32) float32 {
	return g.offset(-x, x, o, roughnessGain)
}
