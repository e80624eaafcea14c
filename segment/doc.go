/*
Package segment provides Segment, a half-open range [left, right) within one
edge's truncated label. Segments are value-typed and immutable except via
return-new operations; GraphPath decomposes into a sequence of Segments, one
per edge it walks across.
*/
package segment
