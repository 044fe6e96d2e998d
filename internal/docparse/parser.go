package docparse

import (
	"strings"
	"unicode"

	"doclint/internal/comments"
	"doclint/internal/doctree"
)

// Parse turns one extracted documentation comment into a doctree. Positions
// in the tree are file-absolute: the first segment starts right after the
// opening marker, every following segment starts at column zero of its own
// source line. The parser never fails; malformed constructs degrade to plain
// text nodes.
func Parse(c comments.Comment) *doctree.Node {
	root := &doctree.Node{Kind: doctree.Root, Line: c.Line, Col: c.Col}

	segments := strings.Split(c.Text, "\n")
	line := c.Line
	for si, seg := range segments {
		var base uint32
		if si == 0 {
			base = c.Col + 3 // past "/**"
		}

		p := &lineParser{runes: []rune(seg), line: line, base: base}
		p.parseLine(root, si > 0)

		if si < len(segments)-1 {
			root.Children = append(root.Children, &doctree.Node{
				Kind: doctree.Newline,
				Line: line,
				Col:  base + uint32(len(p.runes)),
				Text: "\n",
			})
		}
		line++
	}

	return root
}

// lineParser scans a single physical comment line. Columns are rune counts
// from the start of the source line.
type lineParser struct {
	runes []rune
	line  uint32
	base  uint32
}

func (p *lineParser) col(at int) uint32 {
	return p.base + uint32(at)
}

func (p *lineParser) slice(a, b int) string {
	return string(p.runes[a:b])
}

func (p *lineParser) leaf(kind doctree.Kind, a, b int) *doctree.Node {
	return &doctree.Node{
		Kind: kind,
		Line: p.line,
		Col:  p.col(a),
		Text: p.slice(a, b),
	}
}

// parseLine dispatches one line: optional leading asterisk, then either a
// block tag (only recognized at the start of the line's content) or plain
// inline content.
func (p *lineParser) parseLine(root *doctree.Node, allowAsterisk bool) {
	pos := 0

	if allowAsterisk {
		j := 0
		for j < len(p.runes) && (p.runes[j] == ' ' || p.runes[j] == '\t') {
			j++
		}
		stars := j
		for stars < len(p.runes) && p.runes[stars] == '*' {
			stars++
		}
		if stars > j {
			root.Children = append(root.Children, p.leaf(doctree.LeadingAsterisk, 0, stars))
			pos = stars
		}
	}

	// Block tag: "@" + letter as the first content token of the line.
	k := pos
	for k < len(p.runes) && (p.runes[k] == ' ' || p.runes[k] == '\t') {
		k++
	}
	if k+1 < len(p.runes) && p.runes[k] == '@' && unicode.IsLetter(p.runes[k+1]) {
		root.Children = append(root.Children, p.parseBlockTag(k))
		return
	}

	p.parseRange(pos, len(p.runes), &root.Children)
}

// parseBlockTag consumes the rest of the line as a block tag node: the tag
// name, the parameter name for @param, and the same-line description.
// Continuation lines of the description stay siblings of the block tag.
func (p *lineParser) parseBlockTag(at int) *doctree.Node {
	nameEnd := at + 1
	for nameEnd < len(p.runes) && isNameRune(p.runes[nameEnd]) {
		nameEnd++
	}
	tag := p.slice(at, nameEnd)

	node := &doctree.Node{Kind: doctree.BlockTag, Line: p.line, Col: p.col(at)}
	node.Children = append(node.Children, p.leaf(doctree.TagName, at, nameEnd))

	pos := nameEnd
	if strings.EqualFold(tag, "@param") {
		wsStart := pos
		for pos < len(p.runes) && (p.runes[pos] == ' ' || p.runes[pos] == '\t') {
			pos++
		}
		if pos > wsStart {
			node.Children = append(node.Children, p.leaf(doctree.Text, wsStart, pos))
		}
		pStart := pos
		for pos < len(p.runes) && !unicode.IsSpace(p.runes[pos]) {
			pos++
		}
		if pos > pStart {
			node.Children = append(node.Children, p.leaf(doctree.ParameterName, pStart, pos))
		}
	}

	p.parseRange(pos, len(p.runes), &node.Children)
	return node
}

// parseRange scans runes[start:end] for text, inline tags and HTML tags,
// appending the resulting nodes to out.
func (p *lineParser) parseRange(start, end int, out *[]*doctree.Node) {
	i := start
	for i < end {
		j := i
		for j < end && !p.isSpecial(j, end) {
			j++
		}
		if j > i {
			*out = append(*out, p.leaf(doctree.Text, i, j))
		}
		if j >= end {
			break
		}
		if p.runes[j] == '{' {
			i = p.parseInlineTag(j, end, out)
		} else {
			i = p.parseHTMLTag(j, end, out)
		}
	}
}

// isSpecial reports whether position at opens an inline tag ("{@") or an
// HTML tag ("<x" / "</x").
func (p *lineParser) isSpecial(at, end int) bool {
	switch p.runes[at] {
	case '{':
		return at+1 < end && p.runes[at+1] == '@'
	case '<':
		if at+1 >= end {
			return false
		}
		if unicode.IsLetter(p.runes[at+1]) {
			return true
		}
		return p.runes[at+1] == '/' && at+2 < end && unicode.IsLetter(p.runes[at+2])
	}
	return false
}

// parseInlineTag consumes {@name ...} starting at the opening brace and
// returns the next scan position. The closing brace may be missing, in which
// case the tag runs to the end of the range.
func (p *lineParser) parseInlineTag(at, end int, out *[]*doctree.Node) int {
	nameStart := at + 2
	nameEnd := nameStart
	for nameEnd < end && isNameRune(p.runes[nameEnd]) {
		nameEnd++
	}
	if nameEnd == nameStart {
		// "{@" with no name is plain text.
		*out = append(*out, p.leaf(doctree.Text, at, at+1))
		return at + 1
	}

	node := &doctree.Node{Kind: doctree.InlineTag, Line: p.line, Col: p.col(at)}
	node.Children = append(node.Children,
		p.leaf(doctree.Markup, at, at+2),
		p.leaf(doctree.TagName, nameStart, nameEnd),
	)

	depth := 1
	k := nameEnd
	for k < end {
		switch p.runes[k] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 {
			break
		}
		k++
	}

	if k < end {
		if k > nameEnd {
			node.Children = append(node.Children, p.leaf(doctree.Text, nameEnd, k))
		}
		node.Children = append(node.Children, p.leaf(doctree.Markup, k, k+1))
		*out = append(*out, node)
		return k + 1
	}

	// Unterminated: keep what we saw.
	if end > nameEnd {
		node.Children = append(node.Children, p.leaf(doctree.Text, nameEnd, end))
	}
	*out = append(*out, node)
	return end
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
