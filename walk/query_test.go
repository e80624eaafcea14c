package walk_test

import (
	"testing"

	"github.com/fenderglass/dbgpath/alphabet"
	"github.com/fenderglass/dbgpath/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVertexWalksTheChain(t *testing.T) {
	f := newLinearFixture(t)
	p := walk.WalkForward(f.e0)
	assert.Equal(t, f.v0, p.GetVertex(0))
	assert.Equal(t, f.v1, p.GetVertex(1))
	assert.Equal(t, f.v2, p.GetVertex(2))
	assert.Equal(t, f.v3, p.GetVertex(3))
}

func TestVerticesMatchesGetVertex(t *testing.T) {
	f := newLinearFixture(t)
	p := walk.WalkForward(f.e0)
	vs := p.Vertices()
	require.Len(t, vs, p.Size()+1)
	for i, v := range vs {
		assert.Same(t, p.GetVertex(i), v)
	}
}

func TestFindAndFindVertex(t *testing.T) {
	f := newLinearFixture(t)
	p := walk.WalkForward(f.e0)
	assert.Equal(t, 1, p.Find(f.e1, 0))
	assert.Equal(t, walk.NotFound, p.Find(f.e1, 2))
	assert.Equal(t, 2, p.FindVertex(f.v2, 0))
	assert.Equal(t, walk.NotFound, p.FindVertex(f.v0, 1))
}

func TestStartEndClosed(t *testing.T) {
	f := newLinearFixture(t)
	p := walk.WalkForward(f.e0)
	assert.True(t, p.StartClosed())
	assert.True(t, p.EndClosed())

	// e3 has a 2-nucleotide label so cutting back by 1 leaves a genuine
	// partial (cutRight == 1) rather than exactly consuming the edge. It is
	// added after the walk, since it makes v3 a non-junction that
	// WalkForward would otherwise continue through.
	v4, _ := f.g.AddVertex(alphabet.MustSequence("CGG"))
	e3, err := f.g.AddEdge(f.v3, v4, alphabet.MustSequence("GG"))
	require.NoError(t, err)

	p.AppendEdge(e3)
	p.CutBack(1)
	assert.False(t, p.EndClosed())
	assert.True(t, p.StartClosed())
}

func TestSegmentsCoverTheWholeTruncSeq(t *testing.T) {
	f := newLinearFixture(t)
	p := walk.WalkForward(f.e0)
	segs := p.Segments()
	require.Len(t, segs, 3)
	var gotTrunc alphabet.Sequence
	for _, s := range segs {
		gotTrunc = alphabet.Concat(gotTrunc, s.TruncSeq())
	}
	assert.Equal(t, "CCC", gotTrunc.String())
}

func TestLastNucl(t *testing.T) {
	f := newLinearFixture(t)
	p := walk.FromEdge(f.e0)
	assert.Equal(t, alphabet.C, p.LastNucl())
}

func TestMinCoverage(t *testing.T) {
	f := newLinearFixture(t)
	f.e0.SetCoverage(5)
	f.e1.SetCoverage(2)
	f.e2.SetCoverage(8)
	p := walk.WalkForward(f.e0)
	assert.Equal(t, 2.0, p.MinCoverage())
}

func TestMinCoverageZeroEdgePathIsInf(t *testing.T) {
	f := newLinearFixture(t)
	p := walk.FromVertex(f.v0)
	assert.True(t, p.MinCoverage() > 1e300)
}
