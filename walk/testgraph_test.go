package walk_test

import (
	"testing"

	"github.com/fenderglass/dbgpath/alphabet"
	"github.com/fenderglass/dbgpath/graph"
)

// linearFixture is a non-branching chain of k=3 vertices AAA -> AAC -> ACC
// -> CCC, joined by single-nucleotide edges, with every vertex at
// out-degree and in-degree 1 on the forward strand.
type linearFixture struct {
	g              *graph.Graph
	v0, v1, v2, v3 *graph.Vertex
	e0, e1, e2     *graph.Edge
}

// The chain uses AAA/AAC/ACC/CCC specifically because none of their
// reverse complements (TTT/GTT/GGT/GGG) collides with another k-mer in the
// fixture; an accidental rc collision would fold two of these vertices
// into the same strand pair and turn the chain into a branch.
func newLinearFixture(t *testing.T) linearFixture {
	t.Helper()
	g, err := graph.NewGraph(3)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	v0, _ := g.AddVertex(alphabet.MustSequence("AAA"))
	v1, _ := g.AddVertex(alphabet.MustSequence("AAC"))
	v2, _ := g.AddVertex(alphabet.MustSequence("ACC"))
	v3, _ := g.AddVertex(alphabet.MustSequence("CCC"))

	e0, err := g.AddEdge(v0, v1, alphabet.MustSequence("C"))
	if err != nil {
		t.Fatalf("AddEdge e0: %v", err)
	}
	e1, err := g.AddEdge(v1, v2, alphabet.MustSequence("C"))
	if err != nil {
		t.Fatalf("AddEdge e1: %v", err)
	}
	e2, err := g.AddEdge(v2, v3, alphabet.MustSequence("C"))
	if err != nil {
		t.Fatalf("AddEdge e2: %v", err)
	}
	return linearFixture{g: g, v0: v0, v1: v1, v2: v2, v3: v3, e0: e0, e1: e1, e2: e2}
}

// branchingFixture has a single vertex AAA with two outgoing edges, to AAC
// (label "C") and to AAG (label "G").
type branchingFixture struct {
	g          *graph.Graph
	v0, v1, v2 *graph.Vertex
	e1, e2     *graph.Edge
}

func newBranchingFixture(t *testing.T) branchingFixture {
	t.Helper()
	g, err := graph.NewGraph(3)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	v0, _ := g.AddVertex(alphabet.MustSequence("AAA"))
	v1, _ := g.AddVertex(alphabet.MustSequence("AAC"))
	v2, _ := g.AddVertex(alphabet.MustSequence("AAG"))
	e1, err := g.AddEdge(v0, v1, alphabet.MustSequence("C"))
	if err != nil {
		t.Fatalf("AddEdge e1: %v", err)
	}
	e2, err := g.AddEdge(v0, v2, alphabet.MustSequence("G"))
	if err != nil {
		t.Fatalf("AddEdge e2: %v", err)
	}
	return branchingFixture{g: g, v0: v0, v1: v1, v2: v2, e1: e1, e2: e2}
}

// degenerateFixture chains a normal edge e0 (v0 -> v1, truncSize 1) into a
// degenerate self-loop eDegen at v1 (truncSize 0), which in turn leads into
// another normal edge e1 (v1 -> v2, truncSize 1): a degenerate edge whose
// label doesn't extend past the k-mer overlap at all, sitting between two
// ordinary ones. A degenerate edge can only be a self-loop, since its label
// equals its start vertex's own k-mer, which forces its finish vertex's
// k-mer to be identical too.
type degenerateFixture struct {
	g              *graph.Graph
	v0, v1, v2     *graph.Vertex
	e0, eDegen, e1 *graph.Edge
}

func newDegenerateFixture(t *testing.T) degenerateFixture {
	t.Helper()
	g, err := graph.NewGraph(3)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	v0, _ := g.AddVertex(alphabet.MustSequence("AAA"))
	v1, _ := g.AddVertex(alphabet.MustSequence("AAC"))
	v2, _ := g.AddVertex(alphabet.MustSequence("ACC"))
	e0, err := g.AddEdge(v0, v1, alphabet.MustSequence("C"))
	if err != nil {
		t.Fatalf("AddEdge e0: %v", err)
	}
	eDegen, err := g.AddEdge(v1, v1, alphabet.MustSequence(""))
	if err != nil {
		t.Fatalf("AddEdge eDegen: %v", err)
	}
	e1, err := g.AddEdge(v1, v2, alphabet.MustSequence("C"))
	if err != nil {
		t.Fatalf("AddEdge e1: %v", err)
	}
	return degenerateFixture{g: g, v0: v0, v1: v1, v2: v2, e0: e0, eDegen: eDegen, e1: e1}
}
