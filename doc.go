// Package canvas provides vector path geometry for 2D canvas widgets.
//
// # Overview
//
// canvas describes shapes (lines, arcs, Bézier curves, rectangles,
// circles) as immutable [Path] values built with a [Builder]. It is the
// geometry half of a canvas widget: a renderer consumes the finished
// paths and handles stroking, filling, and rasterization, none of which
// live here.
//
// # Quick Start
//
//	import "github.com/gocanvas/canvas"
//
//	p := canvas.New(func(b *canvas.Builder) {
//	    b.MoveTo(canvas.Pt(0, 0))
//	    b.LineTo(canvas.Pt(100, 0))
//	    b.ArcTo(canvas.Pt(100, 100), canvas.Pt(0, 100), 25)
//	    b.Close()
//	})
//
//	// One-shot shapes:
//	dot := canvas.Circle(canvas.Pt(50, 50), 4)
//
// # Architecture
//
// Curve tessellation, arc-to-Bézier conversion, and endpoint arc
// solving are delegated to the cogentcore ppath geometry engine; this
// package translates its own drawing vocabulary (points, sizes, arcs,
// ellipses) into the engine's primitive commands. Paths are finalized
// command tapes: lines plus quadratic and cubic Béziers, ready for a
// rasterization pipeline.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians; with y growing downwards, increasing angles
//     sweep clockwise on screen
package canvas

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
