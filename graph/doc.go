/*
Package graph provides the strand-paired Vertex and Edge primitives of a
de Bruijn graph: k-mer vertices, labeled edges with truncated (non-overlapping)
labels, and their reverse-complement twins.

The package owns an arena of vertices and edges (Graph); callers outside
this module (the construction pipeline, error correction, repeat resolution)
build the arena once and hand out non-owning *Vertex / *Edge pointers to
every consumer, including the walk package. Nothing in this package or its
consumers ever frees a Vertex or Edge; the Graph owns them for as long as
the process runs.
*/
package graph
