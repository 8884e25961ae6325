package coords

import (
	"errors"
	"math"
)

// ErrSingular is returned when inverting a matrix with a zero determinant.
var ErrSingular = errors.New("matrix singular")

// Matrix is a PDF transformation matrix [a b c d e f].
type Matrix [6]float64

func Identity() Matrix { return Matrix{1, 0, 0, 1, 0, 0} }

func Translate(tx, ty float64) Matrix { return Matrix{1, 0, 0, 1, tx, ty} }

func Scale(sx, sy float64) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }

func Rotate(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{c, s, -s, c, 0, 0}
}

// FlipY maps a top-left origin coordinate system of the given height onto
// the bottom-left origin used by PDF user space.
func FlipY(height float64) Matrix { return Matrix{1, 0, 0, -1, 0, height} }

// Multiply returns m followed by o.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
		m[4]*o[0] + m[5]*o[2] + o[4],
		m[4]*o[1] + m[5]*o[3] + o[5],
	}
}

func (m Matrix) IsIdentity() bool { return m == Identity() }

func (m Matrix) Transform(p Point) Point {
	return Point{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
}

// TransformRect maps all four corners of r and returns their bounding box.
func (m Matrix) TransformRect(r Rect) Rect {
	corners := [4]Point{
		m.Transform(Point{r.X0, r.Y0}),
		m.Transform(Point{r.X1, r.Y0}),
		m.Transform(Point{r.X0, r.Y1}),
		m.Transform(Point{r.X1, r.Y1}),
	}
	out := Rect{X0: corners[0].X, Y0: corners[0].Y, X1: corners[0].X, Y1: corners[0].Y}
	for _, c := range corners[1:] {
		out.X0 = math.Min(out.X0, c.X)
		out.Y0 = math.Min(out.Y0, c.Y)
		out.X1 = math.Max(out.X1, c.X)
		out.Y1 = math.Max(out.Y1, c.Y)
	}
	return out
}

func (m Matrix) Inverse() (Matrix, error) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-10 {
		return Matrix{}, ErrSingular
	}
	return Matrix{
		m[3] / det, -m[1] / det,
		-m[2] / det, m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, nil
}

type Point struct{ X, Y float64 }

// Rect is an axis-aligned rectangle with X0<=X1 and Y0<=Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect returns the rectangle spanned by two corners in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1), Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1), Y1: math.Max(y0, y1),
	}
}

// RectXYWH builds a rectangle from its origin and size.
func RectXYWH(x, y, w, h float64) Rect { return NewRect(x, y, x+w, y+h) }

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Array returns the rectangle in PDF order [llx lly urx ury].
func (r Rect) Array() [4]float64 { return [4]float64{r.X0, r.Y0, r.X1, r.Y1} }

// Location is an opaque marker a content producer attaches to a tag so that
// later diagnostics can point back at the source. It is never interpreted.
type Location uint64
