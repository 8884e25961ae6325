package coords

import (
	"errors"
	"math"
	"testing"
)

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(10, 20, 0, 5)
	if r != (Rect{X0: 0, Y0: 5, X1: 10, Y1: 20}) {
		t.Fatalf("unexpected rect %+v", r)
	}
	if r.Width() != 10 || r.Height() != 15 {
		t.Fatalf("size = %vx%v", r.Width(), r.Height())
	}
	if r.Empty() {
		t.Fatal("rect should not be empty")
	}
	if !RectXYWH(1, 1, 0, 4).Empty() {
		t.Fatal("zero width rect should be empty")
	}
}

func TestTransformRectFlip(t *testing.T) {
	r := RectXYWH(10, 10, 100, 50)
	got := FlipY(800).TransformRect(r)
	want := Rect{X0: 10, Y0: 740, X1: 110, Y1: 790}
	if got != want {
		t.Fatalf("flip = %+v, want %+v", got, want)
	}
}

func TestTransformRectRotate(t *testing.T) {
	got := Rotate(math.Pi / 2).TransformRect(RectXYWH(0, 0, 2, 1))
	const eps = 1e-9
	if math.Abs(got.X0+1) > eps || math.Abs(got.Y0) > eps || math.Abs(got.X1) > eps || math.Abs(got.Y1-2) > eps {
		t.Fatalf("rotated rect = %+v", got)
	}
}

func TestInverse(t *testing.T) {
	m := Scale(2, 4).Multiply(Translate(5, 6))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("inverse: %v", err)
	}
	p := inv.Transform(m.Transform(Point{3, 7}))
	if math.Abs(p.X-3) > 1e-9 || math.Abs(p.Y-7) > 1e-9 {
		t.Fatalf("round trip point = %+v", p)
	}
	if _, err := Scale(0, 1).Inverse(); !errors.Is(err, ErrSingular) {
		t.Fatalf("expected ErrSingular, got %v", err)
	}
	if !Identity().IsIdentity() || Translate(1, 0).IsIdentity() {
		t.Fatal("IsIdentity mismatch")
	}
}
