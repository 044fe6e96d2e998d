package doctree

import "strings"

// Node is one node of a parsed documentation comment. Leaves carry raw text;
// composites carry ordered children. Positions are file-absolute: Line is
// 1-based, Col is the 0-based column of the node's first character.
type Node struct {
	Kind     Kind
	Line     uint32
	Col      uint32
	Text     string
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// FullText concatenates the raw text of every leaf in the subtree, markup
// included, in document order.
func (n *Node) FullText() string {
	var sb strings.Builder
	collectFullText(n, &sb)
	return sb.String()
}

func collectFullText(n *Node, sb *strings.Builder) {
	if n.IsLeaf() {
		sb.WriteString(n.Text)
		return
	}
	for _, child := range n.Children {
		collectFullText(child, sb)
	}
}

// VisibleText concatenates only the Text leaves of the subtree, ignoring all
// tag markup.
func (n *Node) VisibleText() string {
	var sb strings.Builder
	collectVisibleText(n, &sb)
	return sb.String()
}

func collectVisibleText(n *Node, sb *strings.Builder) {
	if n.Kind == Text {
		sb.WriteString(n.Text)
		return
	}
	for _, child := range n.Children {
		collectVisibleText(child, sb)
	}
}

// HTMLTagName returns the tag name of an HTMLElement node by locating the
// TagName leaf inside its opening or closing tag. Returns "" when the node
// has no recognizable tag.
func (n *Node) HTMLTagName() string {
	for _, child := range n.Children {
		if child.Kind != HTMLTagStart && child.Kind != HTMLTagEnd {
			continue
		}
		for _, tagChild := range child.Children {
			if tagChild.Kind == TagName {
				return tagChild.Text
			}
		}
	}
	return ""
}
