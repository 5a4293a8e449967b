package canvas

// Arc represents a circular arc segment, defined by its center, radius,
// start angle, and angular sweep in radians. The arc runs clockwise in
// the canvas coordinate space (y grows downwards, so increasing angles
// sweep clockwise on screen). Like [EllipticalArc], EndAngle is the
// sweep measured from StartAngle.
type Arc struct {
	Center     Point
	Radius     float32
	StartAngle float32
	EndAngle   float32
}

// Elliptical converts the circular arc into the equivalent elliptical
// arc with equal radii and no axis rotation.
func (a Arc) Elliptical() EllipticalArc {
	return EllipticalArc{
		Center:     a.Center,
		Radii:      V2(a.Radius, a.Radius),
		StartAngle: a.StartAngle,
		EndAngle:   a.EndAngle,
	}
}

// EllipticalArc represents an elliptical arc segment with independent
// radii on the two axes and a rotation of the ellipse's x-axis, all
// angles in radians.
//
// EndAngle is the angular sweep measured from StartAngle, not an
// absolute terminal angle: an arc with StartAngle π/2 and EndAngle π/2
// covers a quarter turn ending at angle π. A sweep of 2π draws the
// full ellipse.
type EllipticalArc struct {
	Center     Point
	Radii      Vec2
	Rotation   float32
	StartAngle float32
	EndAngle   float32
}
