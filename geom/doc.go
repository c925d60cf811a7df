// Package geom provides the planar geometry underneath a nanowire network:
// finite line segments, random segment generation, and pairwise intersection
// indexing.
//
// A nanowire is modeled as a Line, a finite segment between two r2.Vec
// endpoints. Intersections(lines) computes the full O(n²) pairwise
// intersection index; LineIntersections(ind, lines) computes the
// intersections of one designated segment against the rest, which is what
// incremental wire insertion uses.
//
// Both entry points are two-phase: the cheap boolean predicate Intersects is
// evaluated first, and the exact intersection point is only computed for
// pairs that test positive. In a sparse random network most pairs do not
// intersect, so the predicate filter dominates and the expensive geometric
// computation stays off the hot path.
//
// Keys of the returned maps are canonical Pairs with I < J, so merging
// partial result maps is a collision-free union. The full pairwise sweep can
// be sharded across workers with WithWorkers; per-pair results are
// independent and no ordering is required.
//
// Randomness policy: every generator takes an explicit *rand.Rand. There is
// no package-level random state; callers own seeding and therefore
// reproducibility.
package geom
