package geom

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Line is a finite segment between two endpoints.
// A zero-length Line (Start == End) is legal and represents a point.
type Line struct {
	Start, End r2.Vec
}

// NewLine returns the segment between the two given endpoints.
func NewLine(x0, y0, x1, y1 float64) Line {
	return Line{Start: r2.Vec{X: x0, Y: y0}, End: r2.Vec{X: x1, Y: y1}}
}

// NewRandomLine generates one segment of the given length whose midpoint is
// drawn uniformly from [xmin,xmax]×[ymin,ymax] and whose orientation angle is
// drawn uniformly from [0,π). The endpoints are midpoint ± length/2 along the
// orientation vector.
//
// rng must be non-nil; output is fully reproducible for a fixed seed and call
// sequence. A zero length yields a point segment.
// Complexity: O(1).
func NewRandomLine(length, xmin, xmax, ymin, ymax float64, rng *rand.Rand) Line {
	mid := r2.Vec{
		X: xmin + rng.Float64()*(xmax-xmin),
		Y: ymin + rng.Float64()*(ymax-ymin),
	}
	angle := rng.Float64() * math.Pi
	half := r2.Scale(length/2, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)})

	return Line{Start: r2.Sub(mid, half), End: r2.Add(mid, half)}
}

// Midpoint returns the segment midpoint.
func (l Line) Midpoint() r2.Vec {
	return r2.Scale(0.5, r2.Add(l.Start, l.End))
}

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	return r2.Norm(r2.Sub(l.End, l.Start))
}

// PointAt returns the point Start + t·(End−Start). t is not clamped.
func (l Line) PointAt(t float64) r2.Vec {
	return r2.Add(l.Start, r2.Scale(t, r2.Sub(l.End, l.Start)))
}

// Project returns the parameter t ∈ [0,1] of the point on the segment
// closest to p. A point segment projects to t = 0.
func (l Line) Project(p r2.Vec) float64 {
	d := r2.Sub(l.End, l.Start)
	den := r2.Norm2(d)
	if den == 0 {
		return 0
	}
	t := r2.Dot(r2.Sub(p, l.Start), d) / den
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}

	return t
}
