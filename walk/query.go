package walk

import (
	"math"

	"github.com/fenderglass/dbgpath/alphabet"
	"github.com/fenderglass/dbgpath/graph"
	"github.com/fenderglass/dbgpath/segment"
)

// Start returns the path's first vertex.
func (p GraphPath) Start() *graph.Vertex {
	return p.start
}

// Finish returns the path's last vertex: the start vertex for a zero-edge
// path, otherwise the finish vertex of the last edge.
func (p GraphPath) Finish() *graph.Vertex {
	if len(p.edges) == 0 {
		return p.start
	}
	return p.edges[len(p.edges)-1].Finish()
}

// GetVertex returns the vertex between edge i-1 and edge i (vertex 0 is
// Start(), vertex Size() is Finish()).
func (p GraphPath) GetVertex(i int) *graph.Vertex {
	invariant(i >= 0 && i <= len(p.edges), "GetVertex: index %d out of range [0,%d]", i, len(p.edges))
	if i == 0 {
		return p.start
	}
	return p.edges[i-1].Finish()
}

// GetEdge returns the i-th edge of the path.
func (p GraphPath) GetEdge(i int) *graph.Edge {
	return p.edges[i]
}

// FrontEdge returns the path's first edge.
func (p GraphPath) FrontEdge() *graph.Edge {
	return p.edges[0]
}

// BackEdge returns the path's last edge.
func (p GraphPath) BackEdge() *graph.Edge {
	return p.edges[len(p.edges)-1]
}

// Edges returns the path's edges, in order. The returned slice is a copy;
// mutating it does not affect p.
func (p GraphPath) Edges() []*graph.Edge {
	return append([]*graph.Edge(nil), p.edges...)
}

// Vertices returns every vertex the path passes through, Start() through
// Finish() inclusive.
func (p GraphPath) Vertices() []*graph.Vertex {
	out := make([]*graph.Vertex, len(p.edges)+1)
	for i := range out {
		out[i] = p.GetVertex(i)
	}
	return out
}

// Find returns the index of the first occurrence of e at or after pos, or
// NotFound.
func (p GraphPath) Find(e *graph.Edge, pos int) int {
	for i := pos; i < len(p.edges); i++ {
		if p.edges[i] == e {
			return i
		}
	}
	return NotFound
}

// FindVertex returns the index of the first occurrence of v (as seen by
// GetVertex) at or after pos, or NotFound.
func (p GraphPath) FindVertex(v *graph.Vertex, pos int) int {
	for i := pos; i <= len(p.edges); i++ {
		if p.GetVertex(i) == v {
			return i
		}
	}
	return NotFound
}

// MinCoverage returns the smallest per-edge coverage along the path, or
// +Inf for a zero-edge path.
func (p GraphPath) MinCoverage() float64 {
	min := math.Inf(1)
	for _, e := range p.edges {
		if c := e.Coverage(); c < min {
			min = c
		}
	}
	return min
}

// StartClosed reports whether the path starts exactly at a vertex boundary
// (cutLeft == 0).
func (p GraphPath) StartClosed() bool {
	return p.Valid() && p.cutLeft == 0
}

// EndClosed reports whether the path ends exactly at a vertex boundary
// (cutRight == 0).
func (p GraphPath) EndClosed() bool {
	return p.Valid() && p.cutRight == 0
}

// At returns the segment of edge i that the path actually covers: the
// first and last edges are trimmed by cutLeft/cutRight respectively.
func (p GraphPath) At(i int) segment.Segment {
	e := p.edges[i]
	left := 0
	if i == 0 {
		left = p.cutLeft
	}
	right := e.TruncSize()
	if i == len(p.edges)-1 {
		right -= p.cutRight
	}
	return segment.New(e, left, right)
}

// Front returns the segment of the path's first edge.
func (p GraphPath) Front() segment.Segment {
	return p.At(0)
}

// Back returns the segment of the path's last edge.
func (p GraphPath) Back() segment.Segment {
	return p.At(len(p.edges) - 1)
}

// Segments returns the path decomposed into one Segment per edge, each
// already trimmed by cutLeft/cutRight as appropriate.
func (p GraphPath) Segments() []segment.Segment {
	out := make([]segment.Segment, len(p.edges))
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// LastNucl returns the last nucleotide the path actually covers: the base
// immediately before the path's trailing boundary on its last edge.
func (p GraphPath) LastNucl() alphabet.Nucl {
	seg := p.Back()
	return seg.Edge.TruncSeq().At(seg.Right - 1)
}
