package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"doclint/internal/doctree"
)

// DocTree writes an indented dump of a parsed documentation-comment tree,
// one node per line with kind, position and leaf text.
func DocTree(w io.Writer, root *doctree.Node) {
	writeTreeNode(w, root, 0)
}

func writeTreeNode(w io.Writer, n *doctree.Node, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}

	fmt.Fprintf(w, "%s %d:%d", n.Kind, n.Line, n.Col)
	if n.IsLeaf() && n.Text != "" {
		fmt.Fprintf(w, " %s", strconv.Quote(n.Text))
	}
	fmt.Fprintln(w)

	for _, child := range n.Children {
		writeTreeNode(w, child, depth+1)
	}
}
