// Package wcanvas provides the drawing-element model and geometry
// synthesis core of a sketch-style whiteboard canvas.
//
// Finalized drawing elements (freehand strokes, rectangles, diamonds,
// circles, arrows) are turned into hand-drawn-looking triangle meshes by
// the rough sub-package's procedural stroke engine. Each element carries
// its own style options and seed, so its sketch look is stable across
// redraws and reloads.
//
//	seed := uint64(7)
//	el := wcanvas.RectangleElement{
//	    Position: rough.Pt(10, 10),
//	    Size:     rough.Pt(120, 80),
//	    Color:    f32.Vec4{0, 0, 0, 1},
//	    Style:    rough.DefaultOptions().WithSeed(seed),
//	}
//	meshes := wcanvas.Synthesize(el)
//
// The produced meshes are flat position+color vertex lists with triangle
// indices in canvas space; the render sub-package describes their GPU
// buffer layout and byte encoding, and the canvas sub-package supplies the
// pan/zoom transform that maps canvas space to the screen.
package wcanvas
