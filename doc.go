// Package waf is the Word Activation Force analytics core: a sparse,
// cross-list-backed pipeline that turns a term-identifier stream into a
// term co-occurrence matrix, a word-activation-force matrix, and a
// symmetric term-affinity matrix.
//
// The pipeline is organized under several subpackages:
//
//	crosslist/     — arena-indexed doubly-linked sparse matrix primitive
//	sparsematrix/  — hash-bucket overlay over crosslist for O(bucket) existence checks
//	streammatrix/  — seekable row-indexed reader over a serialized matrix file
//	serial/        — the shared parenthesized-token serialization grammar
//	termset/       — term <-> termid bijection and frequency vectors
//	cooccurrence/  — windowed directed co-occurrence accumulation
//	activation/    — the word activation force scoring engine
//	affinity/      — the symmetric term-affinity engine
//	cmd/waf/       — the command-line shell tying the above into subcommands
//
// See SPEC_FULL.md and DESIGN.md at the module root for the full
// specification and the grounding ledger behind each package's design.
package waf
