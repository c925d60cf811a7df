package geom

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
)

// Pair is a canonical unordered pair of wire indices with I < J.
// It keys intersection maps and junction containers.
type Pair struct {
	I, J int
}

// NewPair canonicalizes (i, j) into a Pair with I = min, J = max.
func NewPair(i, j int) Pair {
	if j < i {
		i, j = j, i
	}

	return Pair{I: i, J: j}
}

// Other returns the member of the pair that is not i.
// If i is not a member, Other returns J.
func (p Pair) Other(i int) int {
	if p.J == i {
		return p.I
	}

	return p.J
}

// orient returns the signed area of the parallelogram (b−a)×(c−a):
// positive for a counter-clockwise turn, zero for collinear points.
func orient(a, b, c r2.Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}

// contains reports whether p lies on the segment l, including endpoints.
func contains(l Line, p r2.Vec) bool {
	if orient(l.Start, l.End, p) != 0 {
		return false
	}

	return math.Min(l.Start.X, l.End.X) <= p.X && p.X <= math.Max(l.Start.X, l.End.X) &&
		math.Min(l.Start.Y, l.End.Y) <= p.Y && p.Y <= math.Max(l.Start.Y, l.End.Y)
}

// Intersects reports whether segments a and b cross or touch.
// Touching at an endpoint and collinear overlap both count as intersecting;
// this matches the boolean-predicate semantics used by the intersection
// index, where the predicate is the cheap first phase of a test-then-compute
// pass.
// Complexity: O(1).
func Intersects(a, b Line) bool {
	d1 := orient(b.Start, b.End, a.Start)
	d2 := orient(b.Start, b.End, a.End)
	d3 := orient(a.Start, a.End, b.Start)
	d4 := orient(a.Start, a.End, b.End)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear or touching cases reduce to on-segment membership tests.
	switch {
	case d1 == 0 && contains(b, a.Start):
		return true
	case d2 == 0 && contains(b, a.End):
		return true
	case d3 == 0 && contains(a, b.Start):
		return true
	case d4 == 0 && contains(a, b.End):
		return true
	}

	return false
}

// Intersection computes the intersection point of segments a and b.
// The second return value is false when the segments do not intersect.
//
// For a proper crossing the exact crossing point is returned. For collinear
// overlap, or a touch involving a degenerate point segment, the first overlap
// point along a is returned; a pair with more than one geometric intersection
// still yields exactly one point.
// Complexity: O(1).
func Intersection(a, b Line) (r2.Vec, bool) {
	if !Intersects(a, b) {
		return r2.Vec{}, false
	}

	ra := r2.Sub(a.End, a.Start)
	rb := r2.Sub(b.End, b.Start)
	den := r2.Cross(ra, rb)
	if den != 0 {
		t := r2.Cross(r2.Sub(b.Start, a.Start), rb) / den

		return a.PointAt(t), true
	}

	// Collinear overlap or degenerate segment: of the endpoints lying on the
	// other segment, pick the one earliest along a.
	best := r2.Vec{}
	bestT := math.Inf(1)
	for _, p := range [...]r2.Vec{a.Start, a.End} {
		if contains(b, p) {
			if t := a.Project(p); t < bestT {
				best, bestT = p, t
			}
		}
	}
	for _, p := range [...]r2.Vec{b.Start, b.End} {
		if contains(a, p) {
			if t := a.Project(p); t < bestT {
				best, bestT = p, t
			}
		}
	}

	return best, true
}

// Intersections returns the map from every canonical index pair (i < j) to
// the intersection point of lines[i] and lines[j], for each pair whose
// segments cross or touch.
//
// The sweep visits all C(n,2) pairs and applies the two-phase
// test-then-compute ordering described in the package documentation.
// WithWorkers shards the outer index range across a worker group; each
// pair's result is independent and the shard maps merge without key
// collisions.
// Complexity: O(n²) pair tests.
func Intersections(lines []Line, opts ...Option) map[Pair]r2.Vec {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Workers <= 1 || len(lines) < minParallelLines {
		out := make(map[Pair]r2.Vec)
		sweepRange(lines, 0, 1, out)

		return out
	}

	// Stride-shard the outer index so each worker sees a balanced slice of
	// the triangular pair space.
	parts := make([]map[Pair]r2.Vec, cfg.Workers)
	var g errgroup.Group
	for w := 0; w < cfg.Workers; w++ {
		w := w
		parts[w] = make(map[Pair]r2.Vec)
		g.Go(func() error {
			sweepRange(lines, w, cfg.Workers, parts[w])

			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait is for completion only

	out := make(map[Pair]r2.Vec)
	for _, part := range parts {
		for k, v := range part {
			out[k] = v
		}
	}

	return out
}

// sweepRange tests lines[i] against lines[j] for i = start, start+stride, …
// and all j > i, writing hits into out.
func sweepRange(lines []Line, start, stride int, out map[Pair]r2.Vec) {
	for i := start; i < len(lines); i += stride {
		for j := i + 1; j < len(lines); j++ {
			if !Intersects(lines[i], lines[j]) {
				continue
			}
			if p, ok := Intersection(lines[i], lines[j]); ok {
				out[Pair{I: i, J: j}] = p
			}
		}
	}
}

// LineIntersections returns the intersections of the single designated
// segment lines[ind] against every other segment in the collection. Keys are
// always canonicalized as (min(ind,j), max(ind,j)) regardless of which index
// is the new one, so incremental insertion produces the same keys a full
// sweep would.
// Complexity: O(n) pair tests.
func LineIntersections(ind int, lines []Line) map[Pair]r2.Vec {
	out := make(map[Pair]r2.Vec)
	for j := range lines {
		if j == ind {
			continue
		}
		if !Intersects(lines[ind], lines[j]) {
			continue
		}
		if p, ok := Intersection(lines[ind], lines[j]); ok {
			out[NewPair(ind, j)] = p
		}
	}

	return out
}
