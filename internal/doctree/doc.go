// Package doctree defines the typed node tree for one parsed documentation
// comment.
//
// The tree is produced by internal/docparse and consumed read-only by
// internal/linemodel. Every node carries a kind from a closed enumeration, a
// 1-based source line, a 0-based start column, raw text for leaves, and
// ordered children for composites. Unknown structure is represented with
// composite nodes that consumers traverse transparently, so new node kinds
// never break existing walks.
//
// Tree shape for HTML: an open tag and a close tag that sit on the same line
// and are not structural become a single HTMLElement whose subtree contains
// the enclosed content. Structural tags (p, ul, pre, ...) and tags whose pair
// sits on another line each produce their own HTMLElement node wrapping just
// the HTMLTagStart or HTMLTagEnd. Consumers that toggle per-element state
// (the <pre> verbatim region) therefore see exactly one node occurrence per
// written tag.
package doctree
