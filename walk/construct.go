package walk

import (
	"github.com/fenderglass/dbgpath/graph"
	"github.com/fenderglass/dbgpath/segment"
)

// Empty returns the invalid path, equivalent to the zero value. It exists
// so call sites can name the invalid path explicitly instead of declaring a
// bare var.
func Empty() GraphPath {
	return GraphPath{}
}

// FromVertex returns the zero-length path sitting entirely at v, with no
// trims.
func FromVertex(v *graph.Vertex) GraphPath {
	return GraphPath{start: v}
}

// FromVertexTrim returns the zero-edge path at v with both ends trimmed
// into v's own k-mer. This is the degenerate case of a path that never
// leaves its start vertex but still denotes a proper sub-k-mer window.
func FromVertexTrim(v *graph.Vertex, cutLeft, cutRight int) GraphPath {
	invariant(cutLeft >= 0 && cutRight >= 0 && cutLeft+cutRight <= v.Size(),
		"FromVertexTrim: trims %d+%d exceed vertex size %d", cutLeft, cutRight, v.Size())
	return GraphPath{start: v, cutLeft: cutLeft, cutRight: cutRight}
}

// FromVertexEdgesTrim builds a path from an explicit chain of edges and
// trims, checking every invariant a GraphPath must hold: the edges form a
// contiguous chain starting at v, and the trims fit within the first and
// last edge respectively. It panics on any violation, since a caller
// assembling a path this way is expected to have already validated the
// pieces it is handing over.
func FromVertexEdgesTrim(v *graph.Vertex, edges []*graph.Edge, cutLeft, cutRight int) GraphPath {
	if len(edges) == 0 {
		return FromVertexTrim(v, cutLeft, cutRight)
	}
	invariant(edges[0].Start() == v, "FromVertexEdgesTrim: first edge does not start at v")
	for i := 1; i < len(edges); i++ {
		invariant(edges[i].Start() == edges[i-1].Finish(),
			"FromVertexEdgesTrim: edges[%d] does not continue edges[%d]", i, i-1)
	}
	invariant(cutLeft >= 0 && cutLeft <= edges[0].TruncSize(),
		"FromVertexEdgesTrim: cutLeft %d exceeds first edge truncSize %d", cutLeft, edges[0].TruncSize())
	last := edges[len(edges)-1]
	invariant(cutRight >= 0 && cutRight <= last.TruncSize(),
		"FromVertexEdgesTrim: cutRight %d exceeds last edge truncSize %d", cutRight, last.TruncSize())
	return GraphPath{start: v, edges: append([]*graph.Edge(nil), edges...), cutLeft: cutLeft, cutRight: cutRight}
}

// FromEdge returns the single-edge path covering e in full.
func FromEdge(e *graph.Edge) GraphPath {
	return GraphPath{start: e.Start(), edges: []*graph.Edge{e}}
}

// FromSegment returns the single-edge path covering exactly the given
// segment of its edge.
func FromSegment(s segment.Segment) GraphPath {
	return GraphPath{
		start:    s.Edge.Start(),
		edges:    []*graph.Edge{s.Edge},
		cutLeft:  s.Left,
		cutRight: s.Edge.TruncSize() - s.Right,
	}
}

// FromSegments concatenates a sequence of segments end to end into a single
// path, in the same way repeated AppendSegment calls would.
func FromSegments(segs []segment.Segment) GraphPath {
	var p GraphPath
	for _, s := range segs {
		p.AppendSegment(s)
	}
	return p
}

// WalkForward extends a single edge e greedily along the unique forward
// continuation: as long as the current endpoint is not a junction (and is
// neither e's own start, which would make the walk cyclic, nor the reverse
// complement of e's start), it has exactly one outgoing edge, and that edge
// is appended.
func WalkForward(e *graph.Edge) GraphPath {
	p := FromEdge(e)
	next := e.Finish()
	for next != e.Start() && next != e.Start().RC() && !next.IsJunction() {
		nextEdge, ok := next.Front()
		if !ok {
			break
		}
		p.AppendEdge(nextEdge)
		next = p.Finish()
	}
	return p
}
