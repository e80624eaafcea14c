/*
Package walk implements GraphPath, the walk algebra of the assembler's core:
an ordered sequence of graph.Edge values, with left/right trim counters that
let a walk begin and end in the middle of an edge's label, plus the
operations to construct, query, extend, cut, reroute, and reverse-complement
such walks and to project them back to nucleotide sequences.

A GraphPath is a value type. It never owns the graph.Vertex/graph.Edge
values it cites; those live in a graph.Graph arena with a lifetime the
caller controls. An invalid path (the zero value, or the result of an
operation that could not complete) carries a nil start vertex, no edges,
and zero trims; callers distinguish it from a valid empty (zero-edge) path
with Valid().
*/
package walk
