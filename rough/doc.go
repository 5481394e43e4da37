// Package rough synthesizes hand-drawn, sketch-style stroke geometry.
//
// An idealized shape description (a line segment, rectangle, diamond,
// ellipse or arrow) is turned into wobbly polylines reminiscent of hand
// drawing, then triangulated into vertex/index meshes ready for GPU
// upload. Synthesis is a pure function of the shape parameters, the style
// Options and the generator's seed: a fixed seed reproduces the exact same
// sketch across runs and process restarts, so a saved element only needs
// to persist its Options (including the seed) to look identical after
// reload.
//
// Typical use, one Generator per finalized element:
//
//	opts := rough.DefaultOptions().WithSeed(elementSeed)
//	gen := rough.NewGenerator(opts)
//	for _, line := range gen.Rectangle(pos, size, opts) {
//	    mesh := rough.StrokeMesh(line, color, opts.StrokeWidth)
//	    // upload mesh.Vertices / mesh.Indices
//	}
//
// The engine is synchronous and allocation-light; to synthesize elements
// concurrently, give each goroutine its own Generator.
package rough
