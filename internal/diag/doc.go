// Package diag defines the diagnostic model shared by all analysis phases.
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the comment extractor, the doc parser and the
//     layout evaluator.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// Package diag does not perform any formatting, IO or CLI integration.
// Rendering responsibilities live in internal/diagfmt; orchestration lives in
// internal/driver.
//
// Diagnostic is the central record: a tri-level Severity, a compact numeric
// Code with a stable string form (see codes.go), a short actionable Message,
// the primary source.Span pointing at the issue, and optional Notes. Notes
// should add new context rather than repeat the diagnostic message.
//
// Phases emit through a diag.Reporter. BagReporter aggregates into a Bag,
// which supports sorting, deduplication and merging; DedupReporter filters
// repeats at the emission boundary. Keep the data model deterministic so the
// CLI can safely serialise diagnostics for caching and testing.
package diag
