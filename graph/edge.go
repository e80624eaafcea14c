package graph

import "github.com/fenderglass/dbgpath/alphabet"

// Edge is a labeled arc from Start to Finish. Its label, in full, is
// Start().Seq() followed by TruncSeq(); TruncSize() may be 0 (a degenerate
// edge) when the label doesn't extend past the overlap.
type Edge struct {
	id       EdgeID
	start    *Vertex
	finish   *Vertex
	truncSeq alphabet.Sequence
	coverage float64
	marker   Marker
	rc       *Edge
}

// ID returns the edge's stable content-derived identifier.
func (e *Edge) ID() EdgeID {
	return e.id
}

// Start returns the edge's origin vertex.
func (e *Edge) Start() *Vertex {
	return e.start
}

// Finish returns the edge's destination vertex.
func (e *Edge) Finish() *Vertex {
	return e.finish
}

// Seq returns the edge's full label: Start().Seq() followed by TruncSeq(),
// length k + TruncSize().
func (e *Edge) Seq() alphabet.Sequence {
	return alphabet.Concat(e.start.seq, e.truncSeq)
}

// TruncSeq returns the suffix of the label after the initial k-mer overlap.
func (e *Edge) TruncSeq() alphabet.Sequence {
	return e.truncSeq
}

// TruncSize returns len(TruncSeq()); it may be 0 for a degenerate edge.
func (e *Edge) TruncSize() int {
	return e.truncSeq.Size()
}

// RC returns the strand-paired edge: e.RC().RC() == e, e.RC().Start() ==
// e.Finish().RC(), and e.RC().TruncSeq() == e.TruncSeq().RC() in length
// whenever both ends overlap by exactly k (the standard dBG case).
func (e *Edge) RC() *Edge {
	return e.rc
}

// Coverage returns the edge's read coverage.
func (e *Edge) Coverage() float64 {
	return e.coverage
}

// SetCoverage updates the edge's read coverage. Coverage is mutable state
// maintained by the construction/correction pipeline, not part of the
// path algebra's invariants.
func (e *Edge) SetCoverage(c float64) {
	e.coverage = c
}

// Mark tags the edge with a classification used by downstream algorithms
// (bulge detection, repeat resolution).
func (e *Edge) Mark(m Marker) {
	e.marker = m
}

// Marker returns the edge's current classification tag.
func (e *Edge) Marker() Marker {
	return e.marker
}

// Equal reports whether two edges are the same arc. Edges are compared by
// identity, not by label: two edges can carry equal labels and still be
// distinct arcs of the graph (parallel edges / bulges).
func (e *Edge) Equal(other *Edge) bool {
	return e == other
}
