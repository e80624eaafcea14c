package alphabet

import "strings"

// Sequence is a finite ordered string over {A,C,G,T}, stored as one code per
// base rather than bit-packed: the path algebra only ever slices, concatenates,
// and reverse-complements Sequences, and none of those operations are cheaper
// under bit-packing at the sizes a single k-mer or edge label reaches, so the
// byte-per-base layout trades a small constant in memory for straightforward
// slicing semantics.
type Sequence struct {
	codes []Nucl
}

// NewSequence encodes a nucleotide string into a Sequence. It returns an
// error if any character falls outside {A,C,G,T} (case-insensitive).
func NewSequence(s string) (Sequence, error) {
	codes := make([]Nucl, len(s))
	for i := 0; i < len(s); i++ {
		c, err := DNA.Encode(s[i])
		if err != nil {
			return Sequence{}, err
		}
		codes[i] = c
	}
	return Sequence{codes: codes}, nil
}

// MustSequence is NewSequence for callers with a statically known-valid
// literal, such as test fixtures.
func MustSequence(s string) Sequence {
	seq, err := NewSequence(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// FromCodes wraps an already-encoded slice of bases without copying.
// Callers must not mutate codes afterward.
func FromCodes(codes []Nucl) Sequence {
	return Sequence{codes: codes}
}

// Size returns the number of bases in the sequence.
func (s Sequence) Size() int {
	return len(s.codes)
}

// At returns the base at position i.
func (s Sequence) At(i int) Nucl {
	return s.codes[i]
}

// Subseq returns the half-open slice [l, r) of the sequence.
func (s Sequence) Subseq(l, r int) Sequence {
	if l < 0 || r > len(s.codes) || l > r {
		panic("alphabet: Subseq out of bounds")
	}
	out := make([]Nucl, r-l)
	copy(out, s.codes[l:r])
	return Sequence{codes: out}
}

// Prefix returns the first k bases.
func (s Sequence) Prefix(k int) Sequence {
	return s.Subseq(0, k)
}

// Suffix returns the last k bases.
func (s Sequence) Suffix(k int) Sequence {
	return s.Subseq(len(s.codes)-k, len(s.codes))
}

// Concat returns the concatenation of s and other, copying both.
func Concat(s, other Sequence) Sequence {
	out := make([]Nucl, len(s.codes)+len(other.codes))
	copy(out, s.codes)
	copy(out[len(s.codes):], other.codes)
	return Sequence{codes: out}
}

// RC returns the reverse complement: reverse order, each base mapped
// through Complement. RC(RC(s)) == s and RC(Concat(a,b)) == Concat(RC(b), RC(a))
// by construction.
func (s Sequence) RC() Sequence {
	n := len(s.codes)
	out := make([]Nucl, n)
	for i, c := range s.codes {
		out[n-1-i] = Complement(c)
	}
	return Sequence{codes: out}
}

// Equal reports whether two sequences encode the same bases in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s.codes) != len(other.codes) {
		return false
	}
	for i := range s.codes {
		if s.codes[i] != other.codes[i] {
			return false
		}
	}
	return true
}

// String renders the sequence as an uppercase nucleotide string. Used only
// for logging and test failure messages.
func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s.codes))
	for _, c := range s.codes {
		ch, err := DNA.Decode(c)
		if err != nil {
			sb.WriteByte('?')
			continue
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}
