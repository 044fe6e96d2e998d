// Package linemodel turns one parsed documentation comment into an ordered
// sequence of logical line records and evaluates that sequence against a
// configured width limit.
//
// The pipeline is two strictly separated passes. Builder walks the
// doctree once, forward only, folding every node that touches a source line
// into that line's record: accumulated width, content flags, unbreakable
// leading tokens, first words for packing math, block-tag boundaries and
// <pre> verbatim regions. Evaluate then reads the finished sequence and
// reports lines that overflow the limit (too long) and lines that wrapped
// even though the next line's first word would still have fit (too short).
//
// Both passes are pure computation over already-materialized data: no I/O,
// no shared state, deterministic output for a fixed (tree, limit) pair.
// Builder state lives for exactly one comment; nothing leaks across
// comments or files.
package linemodel
