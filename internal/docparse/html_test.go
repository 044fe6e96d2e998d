package docparse

import (
	"testing"

	"doclint/internal/comments"
	"doclint/internal/doctree"
)

func TestParse_PairedInlineElement(t *testing.T) {
	root := Parse(comments.Comment{Text: " use <code>foo()</code> here ", Line: 1, Col: 0})

	assertKinds(t, root.Children, doctree.Text, doctree.HTMLElement, doctree.Text)

	element := root.Children[1]
	assertKinds(t, element.Children, doctree.HTMLTagStart, doctree.Text, doctree.HTMLTagEnd)
	if got := element.VisibleText(); got != "foo()" {
		t.Errorf("Expected visible text %q, got %q", "foo()", got)
	}
	if got := element.FullText(); got != "<code>foo()</code>" {
		t.Errorf("Expected full text %q, got %q", "<code>foo()</code>", got)
	}
	if got := element.HTMLTagName(); got != "code" {
		t.Errorf("Expected tag name code, got %q", got)
	}
}

func TestParse_NestedSameTag(t *testing.T) {
	root := Parse(comments.Comment{Text: " <b>a<b>b</b>c</b> ", Line: 1, Col: 0})

	assertKinds(t, root.Children, doctree.Text, doctree.HTMLElement, doctree.Text)
	element := root.Children[1]
	if got := element.FullText(); got != "<b>a<b>b</b>c</b>" {
		t.Errorf("Expected outer pair to match the outer close, got %q", got)
	}
}

func TestParse_StructuralTagStandsAlone(t *testing.T) {
	root := Parse(comments.Comment{Text: " <p>Paragraph text ", Line: 1, Col: 0})

	assertKinds(t, root.Children, doctree.Text, doctree.HTMLElement, doctree.Text)

	element := root.Children[1]
	assertKinds(t, element.Children, doctree.HTMLTagStart)
	if got := element.VisibleText(); got != "" {
		t.Errorf("Expected a bare structural tag to have no visible text, got %q", got)
	}
	if root.Children[2].Text != "Paragraph text " {
		t.Errorf("Expected following text outside the element, got %q", root.Children[2].Text)
	}
}

func TestParse_ClosingTagStandsAlone(t *testing.T) {
	root := Parse(comments.Comment{Text: " </pre> ", Line: 1, Col: 0})

	assertKinds(t, root.Children, doctree.Text, doctree.HTMLElement, doctree.Text)

	element := root.Children[1]
	assertKinds(t, element.Children, doctree.HTMLTagEnd)
	if got := element.HTMLTagName(); got != "pre" {
		t.Errorf("Expected tag name pre, got %q", got)
	}
}

func TestParse_UnpairedInlineTagStandsAlone(t *testing.T) {
	// The close is on another line, so the open stands alone.
	root := Parse(comments.Comment{Text: " <b>bold ", Line: 1, Col: 0})

	assertKinds(t, root.Children, doctree.Text, doctree.HTMLElement, doctree.Text)
	element := root.Children[1]
	assertKinds(t, element.Children, doctree.HTMLTagStart)
	if root.Children[2].Text != "bold " {
		t.Errorf("Expected content as sibling text, got %q", root.Children[2].Text)
	}
}

func TestParse_SelfClosingAndVoid(t *testing.T) {
	root := Parse(comments.Comment{Text: " a<br/>b<br>c ", Line: 1, Col: 0})

	assertKinds(t, root.Children,
		doctree.Text, doctree.HTMLElement,
		doctree.Text, doctree.HTMLElement,
		doctree.Text,
	)
}

func TestParse_AttributesWithQuotedGt(t *testing.T) {
	root := Parse(comments.Comment{Text: ` <a href="a>b">x</a> `, Line: 1, Col: 0})

	assertKinds(t, root.Children, doctree.Text, doctree.HTMLElement, doctree.Text)
	element := root.Children[1]
	if got := element.VisibleText(); got != "x" {
		t.Errorf("Expected visible text %q, got %q", "x", got)
	}
}

func TestParse_MalformedAngleBracket(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bare less-than", " a < b "},
		{"no closing gt", " <b attr "},
		{"double open", " <b <i> "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Parse(comments.Comment{Text: tt.text, Line: 1, Col: 0})
			// Must never panic; nodes are either text or elements.
			if len(root.Children) == 0 {
				t.Error("Expected some nodes")
			}
		})
	}
}
