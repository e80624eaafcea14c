package graph

import "github.com/fenderglass/dbgpath/alphabet"

// Vertex represents a k-mer. Vertices are created and linked to their
// reverse-complement twin exclusively through Graph.AddVertex; the zero
// value is not usable.
type Vertex struct {
	id  VertexID
	seq alphabet.Sequence
	rc  *Vertex

	// out holds the one outgoing edge per first-nucleotide-of-truncated-label,
	// indexed by that nucleotide's code. Edges whose truncated label is empty
	// (degenerate edges) cannot be keyed this way and live in degenerateOut
	// instead; they still count toward OutDeg and appear via Outgoing/Front,
	// just not via HasOutgoing/GetOutgoing.
	out           [4]*Edge
	degenerateOut []*Edge
}

// ID returns the vertex's stable content-derived identifier.
func (v *Vertex) ID() VertexID {
	return v.id
}

// Seq returns the vertex's k-mer.
func (v *Vertex) Seq() alphabet.Sequence {
	return v.seq
}

// Size returns the k-mer length.
func (v *Vertex) Size() int {
	return v.seq.Size()
}

// RC returns the strand-paired vertex whose sequence is the
// reverse-complement of this vertex's sequence.
func (v *Vertex) RC() *Vertex {
	return v.rc
}

// OutDeg returns the number of outgoing edges, including degenerate ones.
func (v *Vertex) OutDeg() int {
	n := len(v.degenerateOut)
	for _, e := range v.out {
		if e != nil {
			n++
		}
	}
	return n
}

// InDeg returns the number of edges finishing at v. A de Bruijn graph never
// stores in-edges directly: they are the outgoing edges of v.RC(), since
// every edge u->v has a twin v.RC()->u.RC().
func (v *Vertex) InDeg() int {
	return v.rc.OutDeg()
}

// IsJunction reports whether v has in-degree or out-degree other than 1.
func (v *Vertex) IsJunction() bool {
	return v.InDeg() != 1 || v.OutDeg() != 1
}

// HasOutgoing reports whether v has an outgoing edge whose truncated label
// starts with c.
func (v *Vertex) HasOutgoing(c alphabet.Nucl) bool {
	return int(c) < len(v.out) && v.out[c] != nil
}

// GetOutgoing returns the outgoing edge whose truncated label starts with c.
// It panics if none exists; callers must check HasOutgoing first.
func (v *Vertex) GetOutgoing(c alphabet.Nucl) *Edge {
	e := v.out[c]
	if e == nil {
		panic("graph: no outgoing edge for requested nucleotide")
	}
	return e
}

// Front returns an arbitrary outgoing edge. The second return value is
// false when OutDeg() == 0.
func (v *Vertex) Front() (*Edge, bool) {
	for _, e := range v.out {
		if e != nil {
			return e, true
		}
	}
	if len(v.degenerateOut) > 0 {
		return v.degenerateOut[0], true
	}
	return nil, false
}

// Outgoing returns every outgoing edge, in a stable order (indexed edges by
// nucleotide, then degenerate edges in insertion order).
func (v *Vertex) Outgoing() []*Edge {
	out := make([]*Edge, 0, v.OutDeg())
	for _, e := range v.out {
		if e != nil {
			out = append(out, e)
		}
	}
	return append(out, v.degenerateOut...)
}

func (v *Vertex) addOutgoing(e *Edge) {
	if e.TruncSize() == 0 {
		v.degenerateOut = append(v.degenerateOut, e)
		return
	}
	v.out[e.TruncSeq().At(0)] = e
}
