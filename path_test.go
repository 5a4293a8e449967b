package canvas

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New(func(b *Builder) {
		b.MoveTo(Pt(0, 0))
		b.LineTo(Pt(10, 0))
		b.LineTo(Pt(10, 10))
		b.Close()
	})

	if !p.Closed() {
		t.Error("expected a closed subpath")
	}
	assert.Equal(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 0)}, p.Vertices())
}

func TestNew_Empty(t *testing.T) {
	p := New(func(b *Builder) {})
	if !p.Empty() {
		t.Error("a builder with no commands must produce an empty path")
	}
	if got := len(collect(p)); got != 0 {
		t.Errorf("expected no segments, got %d", got)
	}
}

func TestShapeConstructors(t *testing.T) {
	// Each one-shot constructor must match the equivalent builder calls.
	tests := []struct {
		name    string
		shape   Path
		builder func(*Builder)
	}{
		{
			"Line",
			Line(Pt(1, 1), Pt(9, 9)),
			func(b *Builder) { b.MoveTo(Pt(1, 1)); b.LineTo(Pt(9, 9)) },
		},
		{
			"Rectangle",
			Rectangle(Pt(0, 0), Sz(4, 2)),
			func(b *Builder) { b.Rectangle(Pt(0, 0), Sz(4, 2)) },
		},
		{
			"Circle",
			Circle(Pt(3, 3), 5),
			func(b *Builder) { b.Circle(Pt(3, 3), 5) },
		},
		{
			"Ellipse",
			Ellipse(EllipticalArc{Center: Pt(0, 0), Radii: V2(4, 2), EndAngle: math32.Pi}),
			func(b *Builder) {
				b.Ellipse(EllipticalArc{Center: Pt(0, 0), Radii: V2(4, 2), EndAngle: math32.Pi})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, New(tt.builder).Raw(), tt.shape.Raw())
		})
	}
}

func TestRoundedRectangle(t *testing.T) {
	p := RoundedRectangle(Pt(0, 0), Sz(100, 60), 10)

	if !p.Closed() {
		t.Error("expected a closed subpath")
	}
	segs := collect(p)
	m, ok := segs[0].(MoveTo)
	if !ok {
		t.Fatalf("expected leading MoveTo, got %T", segs[0])
	}
	assert.Equal(t, Pt(10, 0), m.Point, "starts past the first rounded corner")

	_, lines, _, cubics := countSegments(p)
	if cubics != 4 {
		t.Errorf("expected 4 corner curves, got %d", cubics)
	}
	if lines == 0 {
		t.Error("expected straight edges between corners")
	}
}

func TestRoundedRectangle_RadiusClamped(t *testing.T) {
	// An oversized radius is clamped to half the smaller dimension.
	p := RoundedRectangle(Pt(0, 0), Sz(40, 40), 100)

	segs := collect(p)
	m := segs[0].(MoveTo)
	assert.Equal(t, Pt(20, 0), m.Point)
}

func TestPath_TransformLeavesSourceUntouched(t *testing.T) {
	src := Rectangle(Pt(0, 0), Sz(10, 10))
	before := src.Vertices()

	got := src.Transform(Translation(5, -5))

	assert.Equal(t, before, src.Vertices(), "source path must not change")
	assert.Equal(t, []Point{Pt(5, -5), Pt(15, -5), Pt(15, 5), Pt(5, 5), Pt(5, -5)}, got.Vertices())
}

func TestPath_Transform_Scale(t *testing.T) {
	src := Line(Pt(1, 1), Pt(2, 3))
	got := src.Transform(Scaling(2, 10))
	assert.Equal(t, []Point{Pt(2, 10), Pt(4, 30)}, got.Vertices())
}

func TestPath_Translate(t *testing.T) {
	src := Line(Pt(0, 0), Pt(1, 1))
	got := src.Translate(3, 4)

	assert.Equal(t, []Point{Pt(3, 4), Pt(4, 5)}, got.Vertices())
	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 1)}, src.Vertices(), "source path must not change")
}

func TestPath_Reverse(t *testing.T) {
	src := New(func(b *Builder) {
		b.MoveTo(Pt(0, 0))
		b.LineTo(Pt(10, 0))
		b.LineTo(Pt(10, 10))
	})
	got := src.Reverse()

	assert.Equal(t, []Point{Pt(10, 10), Pt(10, 0), Pt(0, 0)}, got.Vertices())
	assert.Equal(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, src.Vertices(), "source path must not change")
}

func TestPath_RawIsACopy(t *testing.T) {
	p := Line(Pt(1, 2), Pt(3, 4))

	raw := p.Raw()
	if len(raw) == 0 {
		t.Fatal("expected raw command data")
	}
	raw[1] = 999

	assert.Equal(t, []Point{Pt(1, 2), Pt(3, 4)}, p.Vertices(), "mutating the returned data must not affect the path")
}

func TestPath_SegmentsEarlyStop(t *testing.T) {
	p := Rectangle(Pt(0, 0), Sz(2, 2))

	n := 0
	for range p.Segments() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
