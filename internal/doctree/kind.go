package doctree

// Kind represents the category of a documentation-comment tree node.
type Kind uint8

const (
	// Invalid indicates an erroneous node.
	Invalid Kind = iota
	// Root is the top-level node of one parsed comment.
	Root
	// Newline marks the end of a physical comment line.
	Newline
	// LeadingAsterisk is the decorative asterisk (and the whitespace before
	// it) that opens a comment line.
	LeadingAsterisk
	// Text is a run of plain comment text, whitespace included.
	Text
	// TagName is the name token of a block or inline tag ("@param", "link",
	// "code", ...). For block tags the leading '@' is part of the text.
	TagName
	// ParameterName is the parameter identifier following "@param".
	ParameterName
	// InlineTag is an inline reference such as {@link Foo} or {@code x}.
	InlineTag
	// BlockTag is a block tag line opener such as @param, @return, @throws.
	BlockTag
	// HTMLElement is one HTML tag occurrence, or a same-line open/close pair
	// together with the content between the tags.
	HTMLElement
	// HTMLTagStart is the opening-tag portion of an HTML element.
	HTMLTagStart
	// HTMLTagEnd is the closing-tag portion of an HTML element.
	HTMLTagEnd
	// Markup is tag punctuation and attribute text ("<", "</", ">", "/>",
	// attributes). It renders as characters but is never visible text.
	Markup
)

func (k Kind) String() string {
	switch k {
	case Root:
		return "Root"
	case Newline:
		return "Newline"
	case LeadingAsterisk:
		return "LeadingAsterisk"
	case Text:
		return "Text"
	case TagName:
		return "TagName"
	case ParameterName:
		return "ParameterName"
	case InlineTag:
		return "InlineTag"
	case BlockTag:
		return "BlockTag"
	case HTMLElement:
		return "HTMLElement"
	case HTMLTagStart:
		return "HTMLTagStart"
	case HTMLTagEnd:
		return "HTMLTagEnd"
	case Markup:
		return "Markup"
	}
	return "Invalid"
}
