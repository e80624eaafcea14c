package graph

import (
	"encoding/hex"

	"lukechampine.com/blake3"

	"github.com/fenderglass/dbgpath/alphabet"
)

// VertexID and EdgeID are stable, content-derived identifiers. They are
// hashes rather than a shared counter because the construction pipeline
// (out of scope here) builds vertices and edges from disjoint read batches
// across worker goroutines with no opportunity to agree on a monotonic
// sequence; hashing the k-mer/label content gives every worker the same id
// for the same sequence without coordination, the same role
// github.com/TimothyStiles/poly/seqhash's blake3-based hash plays for
// giving unrelated sequence databases a consistent cross-reference key.
type VertexID string

// EdgeID identifies an edge the same way VertexID identifies a vertex.
type EdgeID string

func hashSequence(prefix string, seq alphabet.Sequence) string {
	sum := blake3.Sum256([]byte(seq.String()))
	return prefix + "_" + hex.EncodeToString(sum[:8])
}

func vertexID(seq alphabet.Sequence) VertexID {
	return VertexID(hashSequence("v", seq))
}

func edgeID(startSeq alphabet.Sequence, fullLabel alphabet.Sequence) EdgeID {
	return EdgeID(hashSequence("e", alphabet.Concat(startSeq, fullLabel)))
}
