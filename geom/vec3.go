package geom

import "math"

// Vec3 is a 3-D coordinate or displacement, used for both Points and
// direction vectors throughout this module.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the additive identity.
var Zero = Vec3{}

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a×b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean norm of a.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Distance returns the Euclidean distance between a and b.
func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Length()
}

// Normalized returns a scaled to unit length; the zero vector is returned
// unchanged (callers that divide by length should guard separately).
func (a Vec3) Normalized() Vec3 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Lerp returns the point a fraction t of the way from a to b.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// AngleTo returns the unsigned angle in radians between a and b.
func (a Vec3) AngleTo(b Vec3) float64 {
	denom := a.Length() * b.Length()
	if denom == 0 {
		return 0
	}
	cos := a.Dot(b) / denom
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// RotateAround rotates a around the axis through origin in direction axis
// (need not be unit length) by angle radians, using Rodrigues' formula.
func (a Vec3) RotateAround(origin, axis Vec3, angle float64) Vec3 {
	k := axis.Normalized()
	v := a.Sub(origin)
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	rotated := v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
	return origin.Add(rotated)
}

// ProjectOntoLine returns the parameter t such that A+t*(B-A) is the
// closest point on the infinite line through A,B to p.
func ProjectOntoLine(p, a, b Vec3) float64 {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom == 0 {
		return 0
	}
	return p.Sub(a).Dot(ab) / denom
}

// OrthonormalBasis returns two unit vectors u,v spanning the plane
// perpendicular to n, used to give a 2-D parameterization to a plane or a
// circular cross-section.
func OrthonormalBasis(n Vec3) (u, v Vec3) {
	n = n.Normalized()
	ref := Vec3{X: 1}
	if math.Abs(n.Dot(ref)) > 0.9 {
		ref = Vec3{Y: 1}
	}
	u = n.Cross(ref).Normalized()
	v = n.Cross(u)
	return u, v
}

// Centroid returns the arithmetic mean of pts; it panics on an empty slice,
// since an average of zero points is a programming error, not a domain one.
func Centroid(pts []Vec3) Vec3 {
	if len(pts) == 0 {
		panic("geom: Centroid of empty point set")
	}
	sum := Zero
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}
