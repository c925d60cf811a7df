package nwn

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/nanonetlab/randomnwn/geom"
)

// EdgeIndices returns every junction's canonical index pair, sorted by
// (I, J). Pure read query.
// Complexity: O(E log E).
func (n *Network) EdgeIndices() []geom.Pair {
	out := make([]geom.Pair, 0, len(n.junctions))
	for pair := range n.junctions {
		out = append(out, pair)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}

		return out[a].J < out[b].J
	})

	return out
}

// JunctionPoints returns the intersection points of all junctions, in
// EdgeIndices order.
func (n *Network) JunctionPoints() []r2.Vec {
	pairs := n.EdgeIndices()
	out := make([]r2.Vec, len(pairs))
	for i, pair := range pairs {
		out[i] = n.junctions[pair].Point
	}

	return out
}

// Neighbors returns the indices of wires sharing a junction with wire i,
// sorted ascending.
func (n *Network) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(n.wires) {
		return nil, fmt.Errorf("%w: %d of %d", ErrWireIndex, i, len(n.wires))
	}
	out := make([]int, len(n.adjacency[i]))
	copy(out, n.adjacency[i])
	sort.Ints(out)

	return out, nil
}

// Section is one junction of a wire, positioned along the wire's own length.
type Section struct {
	// Pair is the canonical junction key.
	Pair geom.Pair
	// Other is the index of the wire on the far side of the junction.
	Other int
	// Point is the junction's intersection point.
	Point r2.Vec
	// T is the parameter of Point projected onto the wire's segment,
	// in [0,1] from Start to End.
	T float64
}

// LineSections returns wire i's junctions ordered by position along the
// wire, parametrizing each intersection point by its projection onto the
// wire's segment. Consecutive entries delimit the wire's sub-segments, which
// is the ordering section-current extraction relies on.
// Complexity: O(d log d) in the wire's degree.
func (n *Network) LineSections(i int) ([]Section, error) {
	if i < 0 || i >= len(n.wires) {
		return nil, fmt.Errorf("%w: %d of %d", ErrWireIndex, i, len(n.wires))
	}

	line := n.wires[i].Line
	out := make([]Section, 0, len(n.adjacency[i]))
	for _, j := range n.adjacency[i] {
		pair := geom.NewPair(i, j)
		junc := n.junctions[pair]
		out = append(out, Section{
			Pair:  pair,
			Other: j,
			Point: junc.Point,
			T:     line.Project(junc.Point),
		})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].T != out[b].T {
			return out[a].T < out[b].T
		}

		return out[a].Other < out[b].Other // stable order for coincident points
	})

	return out, nil
}

// ConnectedNodes returns the indices of every wire reachable from wire i
// through junctions, including i itself, sorted ascending.
// Complexity: O(V + E) over the reachable component.
func (n *Network) ConnectedNodes(i int) ([]int, error) {
	if i < 0 || i >= len(n.wires) {
		return nil, fmt.Errorf("%w: %d of %d", ErrWireIndex, i, len(n.wires))
	}

	seen := make(map[int]bool, len(n.wires))
	queue := []int{i}
	seen[i] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range n.adjacency[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)

	return out, nil
}
