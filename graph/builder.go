package graph

import (
	"errors"
	"fmt"

	"github.com/fenderglass/dbgpath/alphabet"
)

// ErrOddK is returned by NewGraph for an even k; vertex k-mers must have odd
// length so that no k-mer equals its own reverse complement, which gives
// every vertex a distinct reverse-complement twin. An edge label (length
// k + TruncSize()) can still be its own reverse complement; AddEdge makes
// such an edge its own twin.
var ErrOddK = errors.New("graph: k must be odd")

// Graph is the owning arena for vertices and edges: it allocates strand-paired
// twins together and is the only thing in this module permitted to construct
// a *Vertex or *Edge. Everything downstream (GraphPath and its consumers)
// borrows pointers into this arena and never frees them.
type Graph struct {
	k        int
	vertices map[VertexID]*Vertex
	edges    map[EdgeID]*Edge
}

// NewGraph creates an empty arena for k-mers of length k.
func NewGraph(k int) (*Graph, error) {
	if k%2 == 0 {
		return nil, ErrOddK
	}
	return &Graph{
		k:        k,
		vertices: make(map[VertexID]*Vertex),
		edges:    make(map[EdgeID]*Edge),
	}, nil
}

// K returns the k-mer length this graph was built with.
func (g *Graph) K() int {
	return g.k
}

// GetVertex looks up a vertex by its k-mer, returning (nil, false) if no
// such vertex has been added yet.
func (g *Graph) GetVertex(seq alphabet.Sequence) (*Vertex, bool) {
	v, ok := g.vertices[vertexID(seq)]
	return v, ok
}

// AddVertex inserts a k-mer and its reverse-complement twin, returning the
// existing vertex if the k-mer was already present. seq must have length k.
func (g *Graph) AddVertex(seq alphabet.Sequence) (*Vertex, error) {
	if seq.Size() != g.k {
		return nil, fmt.Errorf("graph: vertex sequence has length %d, want %d", seq.Size(), g.k)
	}
	if v, ok := g.GetVertex(seq); ok {
		return v, nil
	}

	rcSeq := seq.RC()
	v := &Vertex{id: vertexID(seq), seq: seq}
	g.vertices[v.id] = v

	if rcSeq.Equal(seq) {
		v.rc = v
		return v, nil
	}
	rc := &Vertex{id: vertexID(rcSeq), seq: rcSeq, rc: v}
	v.rc = rc
	g.vertices[rc.id] = rc
	return v, nil
}

// AddEdge inserts a labeled arc start->finish with the given truncated
// label, together with its reverse-complement twin, and links both into
// their endpoints' adjacency. It returns an error if finish's k-mer does
// not match the suffix of the resulting full label, which would break
// invariant 2 of GraphPath (consecutive edges share a vertex).
func (g *Graph) AddEdge(start, finish *Vertex, truncSeq alphabet.Sequence) (*Edge, error) {
	full := alphabet.Concat(start.seq, truncSeq)
	if full.Size() < g.k || !full.Suffix(g.k).Equal(finish.seq) {
		return nil, fmt.Errorf("graph: edge label does not overlap finish vertex %q", finish.seq)
	}

	id := edgeID(start.seq, full)
	if e, ok := g.edges[id]; ok {
		return e, nil
	}

	e := &Edge{id: id, start: start, finish: finish, truncSeq: truncSeq}
	g.edges[id] = e
	start.addOutgoing(e)

	rcFull := full.RC()
	if rcFull.Equal(full) {
		e.rc = e
		return e, nil
	}
	rcTrunc := rcFull.Suffix(truncSeq.Size())
	rc := &Edge{id: edgeID(finish.rc.seq, rcFull), start: finish.rc, finish: start.rc, truncSeq: rcTrunc, rc: e}
	e.rc = rc
	g.edges[rc.id] = rc
	finish.rc.addOutgoing(rc)

	return e, nil
}
