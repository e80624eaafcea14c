package walk

import "github.com/fenderglass/dbgpath/graph"

// GraphPath is a walk through a graph.Graph: a start vertex, an ordered
// list of edges leaving it end to end, and two trim counters that let the
// walk begin partway into its first edge (cutLeft) and end partway into its
// last edge (cutRight). The zero value is the invalid path.
type GraphPath struct {
	start    *graph.Vertex
	edges    []*graph.Edge
	cutLeft  int
	cutRight int
}

// Valid reports whether p denotes an actual walk. Extend on a nucleotide
// with no continuation, and PopBack stripping the last edge under a nonzero
// cutLeft, leave the receiver invalid rather than panicking, so callers
// check Valid() instead of handling an error. Precondition violations (an
// overlong cut, uniqueness lost in UniqueExtendBack) panic instead.
func (p GraphPath) Valid() bool {
	return p.start != nil
}

// Size returns the number of edges in the path.
func (p GraphPath) Size() int {
	return len(p.edges)
}

// Clone returns a copy of p that shares no slice backing array with p, so
// mutating methods (AppendPath, CutBack, PopBack, ...) on the clone never
// affect p and vice versa.
func (p GraphPath) Clone() GraphPath {
	return GraphPath{
		start:    p.start,
		edges:    append([]*graph.Edge(nil), p.edges...),
		cutLeft:  p.cutLeft,
		cutRight: p.cutRight,
	}
}

// Equal reports whether p and other denote the same walk: same start, same
// edges in the same order by identity, same trims.
func (p GraphPath) Equal(other GraphPath) bool {
	if p.start != other.start || p.cutLeft != other.cutLeft || p.cutRight != other.cutRight {
		return false
	}
	if len(p.edges) != len(other.edges) {
		return false
	}
	for i := range p.edges {
		if p.edges[i] != other.edges[i] {
			return false
		}
	}
	return true
}

func (p *GraphPath) invalidate() {
	p.start = nil
	p.edges = nil
	p.cutLeft = 0
	p.cutRight = 0
}
