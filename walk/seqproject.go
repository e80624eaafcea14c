package walk

import (
	"github.com/fenderglass/dbgpath/alphabet"
	"github.com/fenderglass/dbgpath/graph"
)

// Len returns the number of bases the path spans, including its start
// vertex's own k-mer.
func (p GraphPath) Len() int {
	if !p.Valid() {
		return 0
	}
	total := p.start.Size()
	for _, e := range p.edges {
		total += e.TruncSize()
	}
	return total - p.cutLeft - p.cutRight
}

// TruncLen returns the number of bases contributed by truncated edge
// labels alone, excluding the start vertex's k-mer. Zero for a zero-edge
// path.
func (p GraphPath) TruncLen() int {
	if len(p.edges) == 0 {
		return 0
	}
	total := 0
	for _, e := range p.edges {
		total += e.TruncSize()
	}
	return total - p.cutLeft - p.cutRight
}

// Seq returns the full nucleotide sequence the path spans, Len() bases
// long. For a zero-edge path the trims cut into the start vertex's k-mer;
// otherwise the sequence is the first edge's full label from position
// cutLeft on, followed by the remaining truncated labels, so its leading k
// bases are the start vertex's k-mer only when cutLeft == 0.
func (p GraphPath) Seq() alphabet.Sequence {
	if !p.Valid() {
		return alphabet.Sequence{}
	}
	if len(p.edges) == 0 {
		return p.start.Seq().Subseq(p.cutLeft, p.start.Size()-p.cutRight)
	}
	head := p.edges[0].Seq().Subseq(p.cutLeft, p.cutLeft+p.start.Size())
	return alphabet.Concat(head, p.TruncSeq())
}

// TruncSeq returns the concatenation of every segment's truncated label,
// i.e. Seq() with the leading k-mer overlap of the start vertex removed.
func (p GraphPath) TruncSeq() alphabet.Sequence {
	var result alphabet.Sequence
	for _, seg := range p.Segments() {
		result = alphabet.Concat(result, seg.TruncSeq())
	}
	return result
}

// TruncSubseq returns the truncated-label bases covered by edges [i, i+?),
// stopping after n bases.
func (p GraphPath) TruncSubseq(i, n int) alphabet.Sequence {
	var result alphabet.Sequence
	remaining := n
	for idx := i; idx < len(p.edges) && remaining > 0; idx++ {
		seg := p.At(idx)
		if seg.Size() >= remaining {
			result = alphabet.Concat(result, seg.ShrinkRightToLen(remaining).TruncSeq())
			remaining = 0
			break
		}
		result = alphabet.Concat(result, seg.TruncSeq())
		remaining -= seg.Size()
	}
	return result
}

// Map projects the path's sequence through a replacement map from edge to
// a corrected full-length label (vertex k-mer included), substituting the
// corresponding slice of each replacement for edges present in the map and
// falling back to the edge's own label otherwise. Edge identity, not
// label, is the map key: two edges with equal labels are still distinct
// entries.
func (p GraphPath) Map(edgeMap map[*graph.Edge]alphabet.Sequence) alphabet.Sequence {
	if !p.Valid() {
		return alphabet.Sequence{}
	}
	var result alphabet.Sequence
	started := false
	vk := p.start.Size()
	for _, seg := range p.Segments() {
		truncSize := seg.Edge.TruncSize()
		replacement, ok := edgeMap[seg.Edge]
		if !ok {
			if !started {
				full := alphabet.Concat(p.start.Seq(), seg.Edge.TruncSeq())
				result = alphabet.Concat(result, full.Subseq(seg.Left, seg.Right+vk))
				started = true
			} else {
				result = alphabet.Concat(result, seg.TruncSeq())
			}
			continue
		}

		left := vk
		if !started {
			left = 0
		}
		right := vk
		sz := replacement.Size() - vk
		switch {
		case seg.Left == 0 && seg.Right == truncSize:
			right += sz
		case seg.Left == 0:
			right += min(sz, seg.Right)
		case seg.Right == truncSize:
			left += sz - min(sz, seg.Size())
			right += sz
		default:
			l := 0
			if truncSize > 0 {
				l = seg.Left * sz / truncSize
			}
			left += l
			right += min(l+seg.Size(), sz)
		}
		result = alphabet.Concat(result, replacement.Subseq(left, right))
		started = true
	}
	return result
}
