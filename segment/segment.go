package segment

import (
	"fmt"

	"github.com/fenderglass/dbgpath/alphabet"
	"github.com/fenderglass/dbgpath/graph"
)

// Segment is the triple (edge, left, right) with 0 <= left <= right <=
// edge.TruncSize().
type Segment struct {
	Edge  *graph.Edge
	Left  int
	Right int
}

// New validates bounds and constructs a Segment. Out-of-bounds endpoints are
// a caller bug (PreconditionViolation in spec terms), so they panic rather
// than return an error, matching the rest of the path algebra's policy for
// invariant violations.
func New(e *graph.Edge, left, right int) Segment {
	if left < 0 || left > right || right > e.TruncSize() {
		panic(fmt.Sprintf("segment: invalid bounds [%d,%d) for edge of truncSize %d", left, right, e.TruncSize()))
	}
	return Segment{Edge: e, Left: left, Right: right}
}

// Size returns right - left.
func (s Segment) Size() int {
	return s.Right - s.Left
}

// TruncSeq returns the slice of the edge's truncated label covered by
// [Left, Right).
func (s Segment) TruncSeq() alphabet.Sequence {
	return s.Edge.TruncSeq().Subseq(s.Left, s.Right)
}

// ShrinkRightToLen clamps Right to Left+n, leaving Left unchanged. It is a
// no-op when the segment is already no larger than n.
func (s Segment) ShrinkRightToLen(n int) Segment {
	if s.Size() <= n {
		return s
	}
	return Segment{Edge: s.Edge, Left: s.Left, Right: s.Left + n}
}
