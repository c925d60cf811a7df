package geom_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/nanonetlab/randomnwn/geom"
)

const tol = 1e-12

// TestNewRandomLine_Bounds verifies the midpoint stays inside the requested
// rectangle and the generated length matches the request.
func TestNewRandomLine_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		l := geom.NewRandomLine(7.0, 0, 50, 0, 50, rng)
		mid := l.Midpoint()
		assert.GreaterOrEqual(t, mid.X, 0.0)
		assert.LessOrEqual(t, mid.X, 50.0)
		assert.GreaterOrEqual(t, mid.Y, 0.0)
		assert.LessOrEqual(t, mid.Y, 50.0)
		assert.InDelta(t, 7.0, l.Length(), tol, "length must match the request")
	}
}

// TestNewRandomLine_Deterministic verifies that a fixed seed reproduces the
// exact same call sequence.
func TestNewRandomLine_Deterministic(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		la := geom.NewRandomLine(1, 0, 1, 0, 1, a)
		lb := geom.NewRandomLine(1, 0, 1, 0, 1, b)
		assert.Equal(t, la, lb, "same seed and call sequence must reproduce")
	}
}

// TestNewRandomLine_ZeroLength checks that a degenerate zero-length request
// yields a legal point segment.
func TestNewRandomLine_ZeroLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	l := geom.NewRandomLine(0, 0, 1, 0, 1, rng)
	assert.Equal(t, 0.0, l.Length())
	assert.Equal(t, l.Start, l.End)
}

// TestIntersection_CrossingDiagonals is the concrete crossing scenario:
// (0,0)-(2,2) and (0,2)-(2,0) cross at (1,1).
func TestIntersection_CrossingDiagonals(t *testing.T) {
	lines := []geom.Line{
		geom.NewLine(0, 0, 2, 2),
		geom.NewLine(0, 2, 2, 0),
	}

	got := geom.Intersections(lines)
	require.Len(t, got, 1)
	p, ok := got[geom.Pair{I: 0, J: 1}]
	require.True(t, ok, "key must be the canonical pair (0,1)")
	assert.InDelta(t, 1.0, p.X, tol)
	assert.InDelta(t, 1.0, p.Y, tol)
}

// TestIntersects_Cases tabulates crossing, touching, collinear and disjoint
// segment pairs.
func TestIntersects_Cases(t *testing.T) {
	cases := []struct {
		name string
		a, b geom.Line
		want bool
	}{
		{"ProperCross", geom.NewLine(0, 0, 2, 2), geom.NewLine(0, 2, 2, 0), true},
		{"EndpointTouch", geom.NewLine(0, 0, 1, 1), geom.NewLine(1, 1, 2, 0), true},
		{"TJunction", geom.NewLine(0, 0, 2, 0), geom.NewLine(1, 0, 1, 1), true},
		{"CollinearOverlap", geom.NewLine(0, 0, 2, 0), geom.NewLine(1, 0, 3, 0), true},
		{"CollinearDisjoint", geom.NewLine(0, 0, 1, 0), geom.NewLine(2, 0, 3, 0), false},
		{"Parallel", geom.NewLine(0, 0, 1, 0), geom.NewLine(0, 1, 1, 1), false},
		{"Disjoint", geom.NewLine(0, 0, 1, 1), geom.NewLine(3, 0, 4, 1), false},
		{"PointOnSegment", geom.NewLine(1, 0, 1, 0), geom.NewLine(0, 0, 2, 0), true},
		{"PointOffSegment", geom.NewLine(1, 1, 1, 1), geom.NewLine(0, 0, 2, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.Intersects(tc.a, tc.b))
			assert.Equal(t, tc.want, geom.Intersects(tc.b, tc.a), "predicate must be symmetric")
		})
	}
}

// TestIntersection_CollinearOverlap verifies the first overlap point along
// the first segment is reported for a collinear pair.
func TestIntersection_CollinearOverlap(t *testing.T) {
	a := geom.NewLine(0, 0, 2, 0)
	b := geom.NewLine(1, 0, 3, 0)

	p, ok := geom.Intersection(a, b)
	require.True(t, ok)
	assert.Equal(t, r2.Vec{X: 1, Y: 0}, p)
}

// TestIntersections_ParallelMatchesSerial verifies the sharded sweep is a
// collision-free union identical to the serial result.
func TestIntersections_ParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	lines := make([]geom.Line, 150)
	for i := range lines {
		lines[i] = geom.NewRandomLine(7, 0, 25, 0, 25, rng)
	}

	serial := geom.Intersections(lines)
	parallel := geom.Intersections(lines, geom.WithWorkers(4))
	assert.Equal(t, serial, parallel)
}

// TestLineIntersections_CanonicalKeys verifies keys are canonicalized as
// (min, max) regardless of which index is the designated one.
func TestLineIntersections_CanonicalKeys(t *testing.T) {
	lines := []geom.Line{
		geom.NewLine(0, 0, 2, 2),
		geom.NewLine(0, 2, 2, 0),
		geom.NewLine(10, 10, 11, 11), // far away, no hit
	}

	for _, ind := range []int{0, 1} {
		got := geom.LineIntersections(ind, lines)
		require.Len(t, got, 1, "designated index %d", ind)
		_, ok := got[geom.Pair{I: 0, J: 1}]
		assert.True(t, ok)
	}
}

// TestPair_Canonical verifies NewPair ordering and Other lookup.
func TestPair_Canonical(t *testing.T) {
	p := geom.NewPair(5, 2)
	assert.Equal(t, geom.Pair{I: 2, J: 5}, p)
	assert.Equal(t, 5, p.Other(2))
	assert.Equal(t, 2, p.Other(5))
}

// TestProject clamps and parametrizes correctly.
func TestProject(t *testing.T) {
	l := geom.NewLine(0, 0, 2, 0)
	assert.Equal(t, 0.5, l.Project(r2.Vec{X: 1, Y: 3}))
	assert.Equal(t, 0.0, l.Project(r2.Vec{X: -5, Y: 0}))
	assert.Equal(t, 1.0, l.Project(r2.Vec{X: 9, Y: 0}))

	point := geom.NewLine(1, 1, 1, 1)
	assert.Equal(t, 0.0, point.Project(r2.Vec{X: 4, Y: 4}))
}

// TestPointAt interpolates along the segment; t is not clamped.
func TestPointAt(t *testing.T) {
	l := geom.NewLine(0, 0, 2, 4)
	p := l.PointAt(0.5)
	assert.InDelta(t, 1.0, p.X, tol)
	assert.InDelta(t, 2.0, p.Y, tol)

	past := l.PointAt(1.5)
	assert.InDelta(t, 3.0, past.X, tol)
	assert.InDelta(t, 6.0, past.Y, tol)
}

// TestLine_Arithmetic pins the vector identities the segment accessors are
// built from: midpoint is the endpoint average, length the endpoint distance,
// and the endpoints themselves sit at midpoint ± half the direction vector.
func TestLine_Arithmetic(t *testing.T) {
	l := geom.NewLine(1, 2, 4, 6)

	mid := l.Midpoint()
	assert.Equal(t, r2.Vec{X: 2.5, Y: 4}, mid)
	assert.InDelta(t, 5.0, l.Length(), tol, "3-4-5 triangle")

	assert.Equal(t, l.Start, l.PointAt(0))
	assert.Equal(t, l.End, l.PointAt(1))
	assert.Equal(t, mid, l.PointAt(0.5))
}

// sink keeps benchmark results alive.
var sink map[geom.Pair]r2.Vec

// BenchmarkIntersections measures the O(n²) sweep serially and sharded.
func BenchmarkIntersections(b *testing.B) {
	rng := rand.New(rand.NewSource(2025))
	lines := make([]geom.Line, 1000)
	for i := range lines {
		lines[i] = geom.NewRandomLine(7, 0, 50, 0, 50, rng)
	}

	b.Run("Serial", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = geom.Intersections(lines)
		}
	})
	b.Run("Workers4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink = geom.Intersections(lines, geom.WithWorkers(4))
		}
	})
	if len(sink) == 0 {
		b.Log("no intersections in benchmark network")
	}
}
