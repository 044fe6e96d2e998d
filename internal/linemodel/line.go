package linemodel

// Line aggregates the content and metadata of one physical source line inside
// a documentation comment, as seen by the width evaluator.
type Line struct {
	// Number is the 1-based source line, immutable once created.
	Number uint32
	// Length is the maximum right-edge column (in characters) touched by any
	// node attributed to this line. It only grows during construction.
	Length int
	// HasContent is set on the first non-whitespace content on the line.
	HasContent bool
	// ShouldBeChecked is cleared for lines inside a <pre> region, lines
	// opened by a structural HTML element, and block-tag lines with nothing
	// after the tag name.
	ShouldBeChecked bool
	// StartsWithUnbreakable is set when the first content token is a tag
	// name, a parameter name, an inline reference, or a URL.
	StartsWithUnbreakable bool
	// HasContentAfterUnbreakable is set when further content follows the
	// leading unbreakable token on the same line.
	HasContentAfterUnbreakable bool
	// FirstWord is the first whitespace-delimited token of the line, used
	// only for lookahead packing math. For a leading URL or inline reference
	// it is the entire unbreakable span. Empty means unset.
	FirstWord string
	// IsBlockTagStart is set when this line begins a block tag.
	IsBlockTagStart bool
}

// setFirstWord records the word only if none was recorded before, preserving
// the earliest token on the line.
func (l *Line) setFirstWord(word string) {
	if l.FirstWord == "" && word != "" {
		l.FirstWord = word
	}
}

// extend grows Length to cover endCol. It never shrinks.
func (l *Line) extend(endCol int) {
	if endCol > l.Length {
		l.Length = endCol
	}
}
