package walk

import (
	"github.com/fenderglass/dbgpath/alphabet"
	"github.com/fenderglass/dbgpath/graph"
	"github.com/fenderglass/dbgpath/segment"
	"golang.org/x/exp/slices"
)

// AppendPath extends p in place with other. A no-op if other is a
// zero-edge path (even an invalid one, since Size() is 0 either way). If p
// is itself invalid, it becomes a clone of other. Otherwise p's current
// finish vertex must equal other's start vertex.
func (p *GraphPath) AppendPath(other GraphPath) *GraphPath {
	if other.Size() == 0 {
		return p
	}
	if !p.Valid() {
		*p = other.Clone()
		return p
	}
	invariant(p.Finish() == other.GetVertex(0), "AppendPath: endpoint mismatch")
	for _, seg := range other.Segments() {
		p.AppendSegment(seg)
	}
	return p
}

// AppendSegment extends p in place by one segment. If p is invalid it
// becomes FromSegment(s). If p's last edge is already partially consumed
// (cutRight != 0), s must continue covering that same edge immediately
// after the already-covered portion; otherwise s must start a fresh edge
// continuing from p's current finish vertex.
func (p *GraphPath) AppendSegment(s segment.Segment) *GraphPath {
	if !p.Valid() {
		*p = FromSegment(s)
		return p
	}
	if p.cutRight == 0 {
		invariant(s.Left == 0 && p.Finish() == s.Edge.Start(),
			"AppendSegment: segment does not continue the path's finish vertex")
		p.edges = append(slices.Clone(p.edges), s.Edge)
		p.cutRight = s.Edge.TruncSize() - s.Right
		return p
	}
	invariant(s.Edge == p.BackEdge() && s.Left == s.Edge.TruncSize()-p.cutRight,
		"AppendSegment: segment does not continue the path's partially covered last edge")
	p.cutRight = s.Edge.TruncSize() - s.Right
	return p
}

// AppendEdge extends p in place by the whole of edge e.
func (p *GraphPath) AppendEdge(e *graph.Edge) *GraphPath {
	return p.AppendSegment(segment.New(e, 0, e.TruncSize()))
}

// Plus returns p with other appended, leaving both receivers untouched.
func (p GraphPath) Plus(other GraphPath) GraphPath {
	res := p.Clone()
	res.AppendPath(other)
	return res
}

// PlusSegment returns p with segment s appended, leaving p untouched.
func (p GraphPath) PlusSegment(s segment.Segment) GraphPath {
	res := p.Clone()
	res.AppendSegment(s)
	return res
}

// PlusEdge returns p with edge e appended, leaving p untouched.
func (p GraphPath) PlusEdge(e *graph.Edge) GraphPath {
	res := p.Clone()
	res.AppendEdge(e)
	return res
}

// PopBack removes the path's last edge in place and resets cutRight to 0.
// A no-op on a zero-edge path. If popping the only edge leaves the path
// with a nonzero cutLeft, the path is no longer well-formed (there is
// nothing left to trim into) and becomes invalid.
func (p *GraphPath) PopBack() *GraphPath {
	return p.PopBackN(1)
}

// PopBackN removes the path's last n edges in place and resets cutRight to
// 0. A no-op for n <= 0. Per the original implementation's intent,
// cutRight is zeroed only when edges actually were popped, never on a
// no-op call.
func (p *GraphPath) PopBackN(n int) *GraphPath {
	if n <= 0 || len(p.edges) == 0 {
		return p
	}
	if n > len(p.edges) {
		n = len(p.edges)
	}
	p.edges = slices.Delete(slices.Clone(p.edges), len(p.edges)-n, len(p.edges))
	p.cutRight = 0
	if len(p.edges) == 0 && p.cutLeft != 0 {
		p.invalidate()
	}
	return p
}

// SubPath returns the sub-walk covering edges [from, to), inheriting
// cutLeft only when from == 0 and cutRight only when to == Size(). The
// degenerate from == to case returns a zero-edge path at GetVertex(from),
// unless that endpoint itself falls strictly inside a trimmed edge, in
// which case the result is invalid (there is no vertex to sit at).
func (p GraphPath) SubPath(from, to int) GraphPath {
	invariant(from >= 0 && from <= to && to <= len(p.edges), "SubPath: invalid range [%d,%d)", from, to)
	if from == to {
		if (from == 0 && p.cutLeft > 0) || (to == len(p.edges) && p.cutRight > 0) {
			return GraphPath{}
		}
		return GraphPath{start: p.GetVertex(from)}
	}
	cutLeft := 0
	if from == 0 {
		cutLeft = p.cutLeft
	}
	cutRight := 0
	if to == len(p.edges) {
		cutRight = p.cutRight
	}
	return GraphPath{
		start:    p.GetVertex(from),
		edges:    slices.Clone(p.edges[from:to]),
		cutLeft:  cutLeft,
		cutRight: cutRight,
	}
}

// CutBack trims L nucleotides off the path's trailing end in place,
// dropping whole edges as needed and widening cutRight to absorb the
// remainder. Degenerate (zero-truncSize) edges are scanned past but never
// counted as erased on their own: curCut advances over them so the scan
// doesn't stall, but cut (the actual erase count) only advances when a
// non-degenerate edge is absorbed, so a degenerate edge past the last
// absorbed edge survives the cut. Panics if L exceeds Len().
func (p *GraphPath) CutBack(L int) *GraphPath {
	invariant(L >= 0 && L <= p.Len(), "CutBack: L=%d exceeds Len()=%d", L, p.Len())
	l := L + p.cutRight
	p.cutRight = 0
	curCut := 0
	cut := 0
	for curCut < len(p.edges) {
		e := p.edges[len(p.edges)-1-curCut]
		if l < e.TruncSize() {
			break
		}
		if e.TruncSize() == 0 {
			curCut++
			continue
		}
		l -= e.TruncSize()
		curCut++
		cut = curCut
	}
	if cut == len(p.edges) {
		*p = GraphPath{start: p.start, cutLeft: p.cutLeft, cutRight: l}
		return p
	}
	p.edges = slices.Delete(slices.Clone(p.edges), len(p.edges)-cut, len(p.edges))
	p.cutRight = l
	return p
}

// CutFront trims L nucleotides off the path's leading end in place,
// dropping whole edges as needed and widening cutLeft to absorb the
// remainder. Degenerate edges are scanned past without being counted as
// erased on their own, mirroring CutBack. Panics if L exceeds Len().
func (p *GraphPath) CutFront(L int) *GraphPath {
	invariant(L >= 0 && L <= p.Len(), "CutFront: L=%d exceeds Len()=%d", L, p.Len())
	l := L + p.cutLeft
	p.cutLeft = 0
	curCut := 0
	cut := 0
	for curCut < len(p.edges) {
		e := p.edges[curCut]
		if l < e.TruncSize() {
			break
		}
		if e.TruncSize() == 0 {
			curCut++
			continue
		}
		l -= e.TruncSize()
		curCut++
		cut = curCut
	}
	if cut == len(p.edges) {
		*p = GraphPath{start: p.Finish(), cutLeft: l, cutRight: p.cutRight}
		return p
	}
	edges := slices.Delete(slices.Clone(p.edges), 0, cut)
	p.start = edges[0].Start()
	p.edges = edges
	p.cutLeft = l
	return p
}

// UniqueExtendBack extends the path forward by exactly L nucleotides along
// the unique continuation: any already-cut tail is reclaimed first, and
// past that, every next vertex must have out-degree 1. Panics (uniqueness
// lost) if it doesn't.
func (p *GraphPath) UniqueExtendBack(L int) *GraphPath {
	if p.cutRight != 0 {
		tmp := min(L, p.cutRight)
		L -= tmp
		p.cutRight -= tmp
	}
	for L > 0 {
		invariant(p.Finish().OutDeg() == 1, "UniqueExtendBack: uniqueness lost at current finish vertex")
		e, _ := p.Finish().Front()
		tmp := min(e.TruncSize(), L)
		p.AppendEdge(e)
		p.CutBack(e.TruncSize() - tmp)
		L -= tmp
	}
	return p
}

// UniqueExtendFront extends the path backward by exactly L nucleotides
// along the unique continuation, defined as rc().UniqueExtendBack(L).rc().
func (p *GraphPath) UniqueExtendFront(L int) *GraphPath {
	rc := p.RC()
	rc.UniqueExtendBack(L)
	*p = rc.RC()
	return p
}

// AddStep consumes one nucleotide of the path's already-trimmed tail
// (cutRight), advancing the endpoint by one base without adding a new
// edge. Only valid when cutRight > 0.
func (p *GraphPath) AddStep() *GraphPath {
	invariant(p.cutRight > 0, "AddStep: no partially covered tail edge to step into")
	p.cutRight--
	return p
}

// AddStepEdge extends the path by the first nucleotide of edge e.
func (p *GraphPath) AddStepEdge(e *graph.Edge) *GraphPath {
	return p.AppendSegment(segment.New(e, 0, 1))
}

// Extend walks the path forward through seq one nucleotide at a time,
// following an existing outgoing edge or the unconsumed tail of the
// current last edge when it matches, and invalidating the path the moment
// a nucleotide has no matching continuation.
func (p *GraphPath) Extend(seq alphabet.Sequence) *GraphPath {
	for i := 0; i < seq.Size(); i++ {
		c := seq.At(i)
		if p.EndClosed() {
			v := p.Finish()
			if !v.HasOutgoing(c) {
				p.invalidate()
				return p
			}
			p.AddStepEdge(v.GetOutgoing(c))
			continue
		}
		seg := p.Back()
		if seg.Edge.TruncSeq().At(seg.Right) != c {
			p.invalidate()
			return p
		}
		p.AddStep()
	}
	return p
}

// AllSteps returns every one-nucleotide extension of p: if the last edge
// has unconsumed tail, the single extension that steps into it; otherwise
// one extension per outgoing edge of the finish vertex.
func (p GraphPath) AllSteps() []GraphPath {
	if p.Size() != 0 && p.cutRight > 0 {
		cp := p.Clone()
		cp.AddStep()
		return []GraphPath{cp}
	}
	var out []GraphPath
	for _, e := range p.Finish().Outgoing() {
		cp := p.Clone()
		cp.AddStepEdge(e)
		out = append(out, cp)
	}
	return out
}

// AllExtensions returns p itself followed by every walk reachable from it
// by one-nucleotide steps, accumulating one layer per depth up to L:
// res[0] is p, and each subsequent layer is every AllSteps() extension of
// the previous layer's paths, branching at every junction. The result
// therefore grows (never shrinks) with L, and AllExtensions(0) == [p].
func (p GraphPath) AllExtensions(L int) []GraphPath {
	res := []GraphPath{p.Clone()}
	left, right := 0, 1
	for l := 0; l < L; l++ {
		for i := left; i < right; i++ {
			res = append(res, res[i].AllSteps()...)
		}
		left, right = right, len(res)
	}
	return res
}

// Reroute returns a new path equal to p with the sub-walk [i, j) replaced
// by replacement. For i > 0, replacement's start must match GetVertex(i),
// and for j < Size(), its finish must match GetVertex(j) (the splice points
// must agree); neither check is made at the path's own ends.
func (p GraphPath) Reroute(i, j int, replacement GraphPath) GraphPath {
	invariant(i == 0 || p.GetVertex(i) == replacement.Start(), "Reroute: replacement start does not match splice point")
	invariant(j == len(p.edges) || p.GetVertex(j) == replacement.Finish(), "Reroute: replacement finish does not match splice point")
	var res GraphPath
	res.AppendPath(p.SubPath(0, i))
	res.AppendPath(replacement)
	res.AppendPath(p.SubPath(j, len(p.edges)))
	return res
}

// RC returns the reverse-complement walk: edges in reverse order, each
// replaced by its RC twin, start and finish swapped, and the trim
// counters swapped.
func (p GraphPath) RC() GraphPath {
	if !p.Valid() {
		return GraphPath{}
	}
	edges := make([]*graph.Edge, len(p.edges))
	for i, e := range p.edges {
		edges[len(p.edges)-1-i] = e.RC()
	}
	return GraphPath{
		start:    p.Finish().RC(),
		edges:    edges,
		cutLeft:  p.cutRight,
		cutRight: p.cutLeft,
	}
}
