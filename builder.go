package canvas

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
	chewxy "github.com/chewxy/math32"
)

// Builder accumulates a sequence of drawing commands into a [Path].
//
// A Builder has a single owner and is not safe for concurrent use;
// build one path per builder. The high-level operations are translated
// into the primitive commands of the underlying geometry engine, which
// owns all curve tessellation and arc conversion math.
//
// Build finalizes the accumulated commands into an immutable [Path]
// and consumes the builder: no method may be called afterwards.
type Builder struct {
	raw *ppath.Path
}

// NewBuilder creates a new empty Builder.
//
// The builder follows SVG semantics: a drawing command issued before
// any MoveTo starts an implicit subpath at the origin.
func NewBuilder() *Builder {
	return &Builder{raw: ppath.New()}
}

// MoveTo starts a new subpath at the given point without drawing.
func (b *Builder) MoveTo(point Point) {
	b.raw.MoveTo(point.X, point.Y)
}

// LineTo connects the last point in the path to the given point with a
// straight line.
func (b *Builder) LineTo(point Point) {
	b.raw.LineTo(point.X, point.Y)
}

// Arc adds a circular arc to the path from StartAngle, sweeping
// EndAngle radians clockwise.
func (b *Builder) Arc(arc Arc) {
	b.Ellipse(arc.Elliptical())
}

// ArcTo adds a circular arc of the given radius that starts at point a
// and ends at point to.
//
// If the current position is not already a, the arc is first connected
// to it with a straight line. This continuity rule is deliberate: it
// keeps a subpath connected instead of silently starting a disjoint
// one. The arc geometry itself (circle placement between the two
// endpoints) is solved by the geometry engine.
func (b *Builder) ArcTo(a, to Point, radius float32) {
	start := math32.Vec2(a.X, a.Y)
	if b.raw.Pos() != start {
		b.raw.LineTo(a.X, a.Y)
	}
	b.raw.ArcTo(radius, radius, 0, false, false, to.X, to.Y)
}

// Ellipse adds an elliptical arc to the path in a clockwise direction.
//
// The subpath is restarted at the arc's starting point: Ellipse moves
// there without drawing, then appends the engine's quadratic Bézier
// decomposition of the arc. Callers that need the arc connected to the
// current position must draw that connection themselves (or use ArcTo).
func (b *Builder) Ellipse(arc EllipticalArc) {
	rx, ry, phi := arc.Radii.X, arc.Radii.Y, arc.Rotation
	cx, cy := arc.Center.X, arc.Center.Y

	start := ppath.EllipsePos(rx, ry, phi, cx, cy, arc.StartAngle)
	b.raw.MoveTo(start.X, start.Y)

	// EndAngle is the sweep from StartAngle. Endpoint arcs cannot
	// express a full turn, so sweeps of 2π or more are split at the
	// diametrically opposite point, the same way the engine's own
	// center-parameterized Arc does.
	sweep := arc.EndAngle
	dtheta := chewxy.Abs(sweep)
	ccw := sweep > 0
	large := chewxy.Mod(dtheta, 2*chewxy.Pi) > chewxy.Pi
	if dtheta >= 2*chewxy.Pi {
		opposite := math32.Vec2(2*cx-start.X, 2*cy-start.Y)
		b.quadraticArc(start, rx, ry, phi, large, ccw, opposite)
		b.quadraticArc(opposite, rx, ry, phi, large, ccw, start)
		if ppath.Equal(chewxy.Mod(dtheta, 2*chewxy.Pi), 0) {
			return
		}
	}
	end := ppath.EllipsePos(rx, ry, phi, cx, cy, arc.StartAngle+sweep)
	b.quadraticArc(b.raw.Pos(), rx, ry, phi, large, ccw, end)
}

// quadraticArc appends the quadratic Bézier decomposition of the
// endpoint arc from the current position to end. The decomposition
// itself is computed by the geometry engine.
func (b *Builder) quadraticArc(from math32.Vector2, rx, ry, phi float32, large, sweep bool, end math32.Vector2) {
	if ppath.EqualPoint(from, end) {
		return
	}
	seg := ppath.ArcToQuad(from, rx, ry, phi, large, sweep, end)
	for i := 0; i < len(seg); i += ppath.CmdLen(seg[i]) {
		if seg[i] == ppath.QuadTo {
			cp, to := seg.QuadToPoints(i)
			b.raw.QuadTo(cp.X, cp.Y, to.X, to.Y)
		}
	}
}

// BezierCurveTo adds a cubic Bézier curve to the path given its two
// control points and its end point.
func (b *Builder) BezierCurveTo(controlA, controlB, to Point) {
	b.raw.CubeTo(controlA.X, controlA.Y, controlB.X, controlB.Y, to.X, to.Y)
}

// QuadraticCurveTo adds a quadratic Bézier curve to the path given its
// control point and its end point.
func (b *Builder) QuadraticCurveTo(control, to Point) {
	b.raw.QuadTo(control.X, control.Y, to.X, to.Y)
}

// Rectangle adds a rectangle to the path given its top-left corner
// coordinate and its size, traversed clockwise. A negative dimension
// is not an error; it mirrors the traversal.
func (b *Builder) Rectangle(topLeft Point, size Size) {
	b.MoveTo(topLeft)
	b.LineTo(Pt(topLeft.X+size.Width, topLeft.Y))
	b.LineTo(Pt(topLeft.X+size.Width, topLeft.Y+size.Height))
	b.LineTo(Pt(topLeft.X, topLeft.Y+size.Height))
	b.Close()
}

// Circle adds a circle to the path given its center coordinate and its
// radius.
func (b *Builder) Circle(center Point, radius float32) {
	b.Arc(Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: 0,
		EndAngle:   2 * chewxy.Pi,
	})
}

// Close closes the current subpath with a straight line back to its
// starting point. Subsequent commands begin a new subpath.
func (b *Builder) Close() {
	b.raw.Close()
}

// Build finalizes the accumulated commands and returns the resulting
// immutable [Path].
//
// Build consumes the builder: the command buffer is transferred into
// the returned Path and the builder must not be used again. Build a
// new Builder for the next path.
func (b *Builder) Build() Path {
	data := *b.raw
	b.raw = nil

	for i := 0; i < len(data); i += ppath.CmdLen(data[i]) {
		if data[i] == ppath.ArcTo {
			// The engine normally lowers endpoint arcs to cubics as
			// they are added; if that was disabled globally, lower
			// them here so consumers only see line and Bézier segments.
			data = data.ReplaceArcs()
			break
		}
	}
	Logger().Debug("path built", "commands", data.Len())

	return Path{data: data}
}
