package docparse

import (
	"strings"
	"unicode"

	"doclint/internal/doctree"
)

// parseHTMLTag consumes one HTML tag starting at '<' and returns the next
// scan position. An opening inline tag whose matching close sits on the same
// line becomes a single element containing the enclosed content; structural,
// void and self-closing tags, and any tag whose pair is elsewhere, stand
// alone as one element per tag occurrence.
func (p *lineParser) parseHTMLTag(at, end int, out *[]*doctree.Node) int {
	closing := p.runes[at+1] == '/'
	nameStart := at + 1
	if closing {
		nameStart++
	}
	nameEnd := nameStart
	for nameEnd < end && isNameRune(p.runes[nameEnd]) {
		nameEnd++
	}
	name := p.slice(nameStart, nameEnd)

	gt := p.findTagClose(nameEnd, end)
	if gt < 0 {
		// No '>' on this line: not markup, surface the '<' as text.
		*out = append(*out, p.leaf(doctree.Text, at, at+1))
		return at + 1
	}

	if closing {
		*out = append(*out, p.standaloneElement(at, nameStart, nameEnd, gt, doctree.HTMLTagEnd))
		return gt + 1
	}

	selfClosing := gt > nameEnd && p.runes[gt-1] == '/'
	pairable := !selfClosing &&
		!doctree.IsStructuralTag(name) &&
		!doctree.IsVoidTag(name)

	if pairable {
		if next, element, ok := p.pairedElement(at, nameStart, nameEnd, gt, end, name); ok {
			*out = append(*out, element)
			return next
		}
	}

	*out = append(*out, p.standaloneElement(at, nameStart, nameEnd, gt, doctree.HTMLTagStart))
	return gt + 1
}

// findTagClose locates the '>' terminating a tag, skipping quoted attribute
// values. Returns -1 when the tag does not close inside the range.
func (p *lineParser) findTagClose(from, end int) int {
	for k := from; k < end; k++ {
		switch p.runes[k] {
		case '>':
			return k
		case '"', '\'':
			quote := p.runes[k]
			k++
			for k < end && p.runes[k] != quote {
				k++
			}
			if k >= end {
				return -1
			}
		case '<':
			return -1
		}
	}
	return -1
}

// standaloneElement wraps a single tag occurrence in its own HTMLElement.
func (p *lineParser) standaloneElement(at, nameStart, nameEnd, gt int, kind doctree.Kind) *doctree.Node {
	tag := &doctree.Node{Kind: kind, Line: p.line, Col: p.col(at)}
	tag.Children = append(tag.Children,
		p.leaf(doctree.Markup, at, nameStart),
		p.leaf(doctree.TagName, nameStart, nameEnd),
		p.leaf(doctree.Markup, nameEnd, gt+1),
	)
	return &doctree.Node{
		Kind:     doctree.HTMLElement,
		Line:     p.line,
		Col:      p.col(at),
		Children: []*doctree.Node{tag},
	}
}

// pairedElement builds one element covering <name ...>content</name> when
// the matching close tag sits inside the range.
func (p *lineParser) pairedElement(at, nameStart, nameEnd, gt, end int, name string) (next int, element *doctree.Node, ok bool) {
	closeIdx := p.findMatchingClose(name, gt+1, end)
	if closeIdx < 0 {
		return 0, nil, false
	}

	cNameStart := closeIdx + 2
	cNameEnd := cNameStart
	for cNameEnd < end && isNameRune(p.runes[cNameEnd]) {
		cNameEnd++
	}
	gt2 := p.findTagClose(cNameEnd, end)
	if gt2 < 0 {
		return 0, nil, false
	}

	element = &doctree.Node{Kind: doctree.HTMLElement, Line: p.line, Col: p.col(at)}

	open := &doctree.Node{Kind: doctree.HTMLTagStart, Line: p.line, Col: p.col(at)}
	open.Children = append(open.Children,
		p.leaf(doctree.Markup, at, nameStart),
		p.leaf(doctree.TagName, nameStart, nameEnd),
		p.leaf(doctree.Markup, nameEnd, gt+1),
	)
	element.Children = append(element.Children, open)

	p.parseRange(gt+1, closeIdx, &element.Children)

	closeTag := &doctree.Node{Kind: doctree.HTMLTagEnd, Line: p.line, Col: p.col(closeIdx)}
	closeTag.Children = append(closeTag.Children,
		p.leaf(doctree.Markup, closeIdx, cNameStart),
		p.leaf(doctree.TagName, cNameStart, cNameEnd),
		p.leaf(doctree.Markup, cNameEnd, gt2+1),
	)
	element.Children = append(element.Children, closeTag)

	return gt2 + 1, element, true
}

// findMatchingClose scans for the close tag matching name, counting nested
// occurrences of the same tag. Returns the index of its '<' or -1.
func (p *lineParser) findMatchingClose(name string, from, end int) int {
	nameRunes := []rune(strings.ToLower(name))
	depth := 1
	for i := from; i < end; i++ {
		if p.runes[i] != '<' {
			continue
		}
		if i+1 < end && p.runes[i+1] == '/' && p.nameAt(i+2, end, nameRunes) {
			depth--
			if depth == 0 {
				return i
			}
		} else if i+1 < end && p.nameAt(i+1, end, nameRunes) {
			depth++
		}
	}
	return -1
}

// nameAt reports whether the tag name at position at equals nameRunes,
// case-insensitively, with no name character following.
func (p *lineParser) nameAt(at, end int, nameRunes []rune) bool {
	if at+len(nameRunes) > end {
		return false
	}
	for k, r := range nameRunes {
		if unicode.ToLower(p.runes[at+k]) != r {
			return false
		}
	}
	next := at + len(nameRunes)
	return next >= end || !isNameRune(p.runes[next])
}
