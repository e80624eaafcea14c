package walk

import (
	"fmt"
	"strings"
)

// String renders the path as its start vertex's trim, then one
// size/truncSize/label/finish group per edge, then the trailing trim.
func (p GraphPath) String() string {
	return p.CovString(false)
}

// CovString renders the path like String, additionally appending each
// edge's coverage in parentheses when showCoverage is true.
func (p GraphPath) CovString(showCoverage bool) string {
	if !p.Valid() {
		return "<invalid>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %s", p.cutLeft, p.start.ID())
	for _, seg := range p.Segments() {
		fmt.Fprintf(&sb, " %d/%d %s", seg.Size(), seg.Edge.TruncSize(), seg.TruncSeq())
		if showCoverage {
			fmt.Fprintf(&sb, "(%.1f)", seg.Edge.Coverage())
		}
		fmt.Fprintf(&sb, " %s", seg.Edge.Finish().ID())
	}
	fmt.Fprintf(&sb, " %d", p.cutRight)
	return sb.String()
}

// LenString renders the path as a chain of vertex sizes and edge
// truncSizes instead of labels, useful for logging long paths without
// dumping their full sequence.
func (p GraphPath) LenString() string {
	if !p.Valid() {
		return "<invalid>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d [%s(%d)", p.cutLeft, p.start.ID(), p.start.Size())
	for _, seg := range p.Segments() {
		fmt.Fprintf(&sb, " -> %d -> %s(%d)", seg.Edge.TruncSize(), seg.Edge.Finish().ID(), seg.Edge.Finish().Size())
	}
	fmt.Fprintf(&sb, "] %d", p.cutRight)
	return sb.String()
}
