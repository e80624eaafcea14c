/*
Package dbgpath implements the graph-path algebra of a strand-symmetric
de Bruijn graph assembler: sequences, vertices and edges, sub-edge segments,
and the walk type (GraphPath) that ties them together.

This module is the core of a larger assembly pipeline. Construction of the
graph from reads, error correction, repeat resolution, and all I/O are
external collaborators; this module only represents and manipulates walks
through a graph that already exists.

Browse the subpackages for the layers:

  - alphabet: 2-bit DNA sequences.
  - graph: strand-paired vertices and edges.
  - segment: a sub-range of one edge's label.
  - walk: the GraphPath walk algebra itself.
*/
package dbgpath
