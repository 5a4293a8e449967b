package canvas

import (
	"iter"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
)

// Path is an immutable, finalized collection of subpaths made of lines
// and Bézier curves, produced by [Builder.Build] or one of the shape
// constructors. A Path cannot be changed after it is built; deriving a
// different shape (see Transform, Translate, Reverse) always yields a
// new Path.
//
// A renderer consumes a Path either through the decoded [Path.Segments]
// stream or through [Path.Raw] when it speaks the geometry engine's
// format directly.
type Path struct {
	data ppath.Path
}

// New builds a path with the given closure, which receives a fresh
// Builder and issues drawing commands on it.
func New(fn func(*Builder)) Path {
	b := NewBuilder()
	fn(b)
	return b.Build()
}

// Line returns a path representing a straight line from one point to
// another.
func Line(from, to Point) Path {
	return New(func(b *Builder) {
		b.MoveTo(from)
		b.LineTo(to)
	})
}

// Rectangle returns a closed path representing a rectangle given its
// top-left corner coordinate and its size.
func Rectangle(topLeft Point, size Size) Path {
	return New(func(b *Builder) {
		b.Rectangle(topLeft, size)
	})
}

// RoundedRectangle returns a closed path representing a rectangle with
// rounded corners. The corner radius is clamped to half of the smaller
// dimension.
func RoundedRectangle(topLeft Point, size Size, radius float32) Path {
	radius = min(radius, min(size.Width, size.Height)/2)
	k := 0.5522847498 * radius // control point distance for circle approximation

	x, y := topLeft.X, topLeft.Y
	w, h := size.Width, size.Height
	return New(func(b *Builder) {
		b.MoveTo(Pt(x+radius, y))
		b.LineTo(Pt(x+w-radius, y))
		b.BezierCurveTo(Pt(x+w-radius+k, y), Pt(x+w, y+radius-k), Pt(x+w, y+radius))
		b.LineTo(Pt(x+w, y+h-radius))
		b.BezierCurveTo(Pt(x+w, y+h-radius+k), Pt(x+w-radius+k, y+h), Pt(x+w-radius, y+h))
		b.LineTo(Pt(x+radius, y+h))
		b.BezierCurveTo(Pt(x+radius-k, y+h), Pt(x, y+h-radius+k), Pt(x, y+h-radius))
		b.LineTo(Pt(x, y+radius))
		b.BezierCurveTo(Pt(x, y+radius-k), Pt(x+radius-k, y), Pt(x+radius, y))
		b.Close()
	})
}

// Circle returns a closed path representing a circle given its center
// coordinate and its radius.
func Circle(center Point, radius float32) Path {
	return New(func(b *Builder) {
		b.Circle(center, radius)
	})
}

// Ellipse returns a path representing an elliptical arc.
func Ellipse(arc EllipticalArc) Path {
	return New(func(b *Builder) {
		b.Ellipse(arc)
	})
}

// Segment is a single decoded path command. It is one of [MoveTo],
// [LineTo], [QuadTo], [CubicTo], or [Close].
type Segment interface {
	isSegment()
}

// MoveTo starts a new subpath at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isSegment() {}

// QuadTo draws a quadratic Bézier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isSegment() {}

// CubicTo draws a cubic Bézier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isSegment() {}

// Close closes the current subpath with a straight line back to its
// starting point.
type Close struct{}

func (Close) isSegment() {}

// Empty reports whether the path draws nothing: it has no commands, or
// only degenerate ones.
func (p Path) Empty() bool {
	return p.data.Empty()
}

// Closed reports whether the last subpath is closed.
func (p Path) Closed() bool {
	return p.data.Closed()
}

// Vertices returns the start and end coordinates of every segment in
// the path, in drawing order.
func (p Path) Vertices() []Point {
	coords := p.data.Coords()
	pts := make([]Point, len(coords))
	for i, c := range coords {
		pts[i] = enginePoint(c)
	}
	return pts
}

// Segments returns an iterator over the decoded commands of the path,
// in drawing order.
func (p Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		d := p.data
		for i := 0; i < len(d); i += ppath.CmdLen(d[i]) {
			var s Segment
			switch d[i] {
			case ppath.MoveTo:
				s = MoveTo{Point: enginePoint(d.EndPoint(i))}
			case ppath.LineTo:
				s = LineTo{Point: enginePoint(d.EndPoint(i))}
			case ppath.QuadTo:
				cp, end := d.QuadToPoints(i)
				s = QuadTo{Control: enginePoint(cp), Point: enginePoint(end)}
			case ppath.CubeTo:
				cp1, cp2, end := d.CubeToPoints(i)
				s = CubicTo{
					Control1: enginePoint(cp1),
					Control2: enginePoint(cp2),
					Point:    enginePoint(end),
				}
			case ppath.Close:
				s = Close{}
			default:
				continue // arcs are lowered to cubics at build time
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Raw returns a copy of the path in the geometry engine's command
// format, for consumers that process engine paths directly (stroking,
// flattening, rasterization).
func (p Path) Raw() ppath.Path {
	return p.data.Clone()
}

// Transform returns a new path with the affine transformation applied
// to every point. The receiver is unchanged.
func (p Path) Transform(m Matrix) Path {
	return Path{data: p.data.Clone().Transform(m.engine())}
}

// Translate returns a new path moved by (x, y). The receiver is
// unchanged.
func (p Path) Translate(x, y float32) Path {
	return Path{data: p.data.Clone().Translate(x, y)}
}

// Reverse returns a new path with the same geometry traversed in the
// opposite direction. The receiver is unchanged.
func (p Path) Reverse() Path {
	return Path{data: p.data.Clone().Reverse()}
}

func enginePoint(v math32.Vector2) Point {
	return Point{X: v.X, Y: v.Y}
}
