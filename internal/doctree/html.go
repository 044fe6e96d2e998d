package doctree

import "strings"

// Structural (block-level) tags whose presence alone does not count as line
// content for width purposes.
var structuralTags = map[string]bool{
	"p":          true,
	"div":        true,
	"ul":         true,
	"ol":         true,
	"li":         true,
	"pre":        true,
	"table":      true,
	"tr":         true,
	"td":         true,
	"th":         true,
	"blockquote": true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
}

// Void tags never take a closing tag.
var voidTags = map[string]bool{
	"area":  true,
	"base":  true,
	"br":    true,
	"col":   true,
	"embed": true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
	"wbr":   true,
}

// IsStructuralTag reports whether name is a block-level HTML tag.
// Matching is case-insensitive.
func IsStructuralTag(name string) bool {
	return structuralTags[strings.ToLower(name)]
}

// IsVoidTag reports whether name is an HTML void tag. Matching is
// case-insensitive.
func IsVoidTag(name string) bool {
	return voidTags[strings.ToLower(name)]
}
