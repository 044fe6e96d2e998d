package linemodel

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"doclint/internal/doctree"
)

// urlPattern recognizes text whose first token is a URL; such a token is
// never split into sub-words for packing purposes.
var urlPattern = regexp.MustCompile(`^(?:https?|ftp)://`)

// Builder walks one documentation-comment tree in document order and
// produces the ordered line sequence the evaluator consumes. A Builder is
// single-use-at-a-time: Build resets all state, so one instance may be
// reused sequentially but never concurrently.
type Builder struct {
	insidePre bool
	lines     []*Line
	cur       *Line
}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build runs a single forward pass over the tree rooted at root and returns
// the finished line sequence. No line is revisited once finalized.
func (b *Builder) Build(root *doctree.Node) []*Line {
	b.insidePre = false
	b.lines = nil
	b.cur = nil

	b.walkChildren(root)
	b.finalizeCurrentLine()
	return b.lines
}

func (b *Builder) walkChildren(node *doctree.Node) {
	for _, child := range node.Children {
		b.walk(child)
	}
}

func (b *Builder) walk(node *doctree.Node) {
	switch node.Kind {
	case doctree.Newline:
		b.finalizeCurrentLine()

	case doctree.LeadingAsterisk:
		// Decoration only.

	case doctree.Text:
		b.text(node)

	case doctree.TagName, doctree.ParameterName:
		b.tagContent(node)

	case doctree.InlineTag:
		b.inlineTag(node)

	case doctree.HTMLElement:
		b.htmlElement(node)

	case doctree.BlockTag:
		b.blockTag(node)

	default:
		// Unknown structure is transparent: recurse, never abort.
		b.walkChildren(node)
	}
}

// finalizeCurrentLine pushes the open line if it accumulated any width and
// clears the cursor.
func (b *Builder) finalizeCurrentLine() {
	if b.cur != nil && b.cur.Length > 0 {
		b.lines = append(b.lines, b.cur)
	}
	b.cur = nil
}

// ensureCurrentLine makes the cursor point at a line record for lineNumber,
// pushing the previous record when the number changes. Lines born inside a
// <pre> region are excluded from checking.
func (b *Builder) ensureCurrentLine(lineNumber uint32) {
	if b.cur == nil || b.cur.Number != lineNumber {
		if b.cur != nil {
			b.lines = append(b.lines, b.cur)
		}
		b.cur = &Line{
			Number:          lineNumber,
			ShouldBeChecked: !b.insidePre,
		}
	}
}

// blockTag handles @param, @return, @throws and friends: the tag always
// starts a fresh line, and a tag line with nothing after the tag name is not
// checkable.
func (b *Builder) blockTag(node *doctree.Node) {
	b.finalizeCurrentLine()
	b.ensureCurrentLine(node.Line)
	b.cur.IsBlockTagStart = true

	b.walkChildren(node)

	if b.cur != nil && !b.cur.HasContentAfterUnbreakable {
		b.cur.ShouldBeChecked = false
	}
}

// tagContent handles TagName and ParameterName leaves inside a block tag.
// Both are unbreakable when they open the line.
func (b *Builder) tagContent(node *doctree.Node) {
	b.ensureCurrentLine(node.Line)
	b.cur.extend(int(node.Col) + utf8.RuneCountInString(node.Text))

	if !b.cur.HasContent {
		b.cur.HasContent = true
		b.cur.StartsWithUnbreakable = true
	}
}

func (b *Builder) text(node *doctree.Node) {
	b.ensureCurrentLine(node.Line)

	trimmed := strings.TrimSpace(node.Text)
	if trimmed != "" {
		b.cur.extend(int(node.Col) + utf8.RuneCountInString(node.Text))

		if !b.cur.HasContent {
			b.cur.HasContent = true

			if urlPattern.MatchString(trimmed) {
				b.cur.StartsWithUnbreakable = true
				b.cur.FirstWord = trimmed
			} else {
				b.extractFirstWord(trimmed)
			}
		} else {
			if b.cur.StartsWithUnbreakable {
				b.cur.HasContentAfterUnbreakable = true
			}
			b.extractFirstWord(trimmed)
		}
	} else if node.Text != "" {
		// A pure whitespace run still occupies visual width.
		b.cur.extend(int(node.Col) + utf8.RuneCountInString(node.Text))
	}
}

// extractFirstWord records the first whitespace-delimited token of trimmed,
// honoring the set-once rule.
func (b *Builder) extractFirstWord(trimmed string) {
	if b.cur.FirstWord != "" {
		return
	}
	if words := strings.Fields(trimmed); len(words) > 0 {
		b.cur.FirstWord = words[0]
	}
}

// inlineTag handles {@link ...}-style references. The whole rendered tag is
// one unbreakable token.
func (b *Builder) inlineTag(node *doctree.Node) {
	b.ensureCurrentLine(node.Line)

	tagText := node.FullText()
	b.cur.extend(int(node.Col) + utf8.RuneCountInString(tagText))

	if !b.cur.HasContent {
		b.cur.StartsWithUnbreakable = true
		b.cur.setFirstWord(tagText)
	} else {
		b.cur.HasContentAfterUnbreakable = true
	}

	b.cur.HasContent = true
}

// htmlElement handles one HTML tag occurrence. Any <pre> occurrence, opening
// or closing, flips the verbatim toggle exactly once.
func (b *Builder) htmlElement(node *doctree.Node) {
	tagName := node.HTMLTagName()

	if strings.EqualFold(tagName, "pre") {
		b.insidePre = !b.insidePre
	}

	b.ensureCurrentLine(node.Line)

	if !b.cur.HasContent && doctree.IsStructuralTag(tagName) {
		b.cur.ShouldBeChecked = false
	}

	visibleText := node.VisibleText()
	if visibleText != "" {
		b.cur.extend(int(node.Col) + utf8.RuneCountInString(node.FullText()))

		if !doctree.IsStructuralTag(tagName) {
			b.cur.HasContent = true
			b.extractFirstWord(strings.TrimSpace(visibleText))
		}
	}
}
