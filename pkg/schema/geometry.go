package schema

import "math"

// Minimal 2D value types. Coordinates are in the producer's coordinate space
// until transformed by the node's accumulated transform.

// Point is a 2D point or vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle given by two corners.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// ContainsPoint reports whether p falls within r. The minimum edges are
// inclusive, the maximum edges exclusive.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Affine is a 2D affine transform in column-major order (a, b, c, d, e, f):
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Affine [6]float64

// IdentityTransform leaves points unchanged.
var IdentityTransform = Affine{1, 0, 0, 1, 0, 0}

// Translation returns a transform that offsets points by v.
func Translation(v Point) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

func (a Affine) IsIdentity() bool {
	return a == IdentityTransform
}

// Mul composes the transforms: the result applies b first, then a.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

func (a Affine) Transform(p Point) Point {
	return Point{
		X: a[0]*p.X + a[2]*p.Y + a[4],
		Y: a[1]*p.X + a[3]*p.Y + a[5],
	}
}

// TransformRect returns the bounding box of the transformed corners of r.
func (a Affine) TransformRect(r Rect) Rect {
	p00 := a.Transform(Point{r.X0, r.Y0})
	p10 := a.Transform(Point{r.X1, r.Y0})
	p01 := a.Transform(Point{r.X0, r.Y1})
	p11 := a.Transform(Point{r.X1, r.Y1})
	return Rect{
		X0: math.Min(math.Min(p00.X, p10.X), math.Min(p01.X, p11.X)),
		Y0: math.Min(math.Min(p00.Y, p10.Y), math.Min(p01.Y, p11.Y)),
		X1: math.Max(math.Max(p00.X, p10.X), math.Max(p01.X, p11.X)),
		Y1: math.Max(math.Max(p00.Y, p10.Y), math.Max(p01.Y, p11.Y)),
	}
}

// Determinant of the linear part; zero means the transform is not
// invertible.
func (a Affine) Determinant() float64 {
	return a[0]*a[3] - a[1]*a[2]
}

// Inverse returns the inverse transform. The caller must ensure the
// determinant is nonzero.
func (a Affine) Inverse() Affine {
	invDet := 1.0 / a.Determinant()
	return Affine{
		invDet * a[3],
		-invDet * a[1],
		-invDet * a[2],
		invDet * a[0],
		invDet * (a[2]*a[5] - a[3]*a[4]),
		invDet * (a[1]*a[4] - a[0]*a[5]),
	}
}
