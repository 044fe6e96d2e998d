package comments

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"

	"doclint/internal/source"
)

// Comment is one documentation comment found in a source file: the raw text
// between the opening "/**" and the closing "*/", plus the file position of
// the opening marker. Line is 1-based, Col is the 0-based column of the '/'
// counted in runes from the start of the line, matching how the parser and
// the line model measure width.
type Comment struct {
	Text string
	Line uint32
	Col  uint32
}

// Extract scans a file for /** ... */ documentation comments and returns
// them in file order. String literals, character literals, line comments and
// ordinary block comments are skipped so comment markers inside them do not
// produce phantom results. An unterminated doc comment runs to end of file.
func Extract(f *source.File) []Comment {
	var out []Comment
	content := f.Content

	i := 0
	for i < len(content) {
		switch content[i] {
		case '"':
			i = skipString(content, i, '"')

		case '\'':
			i = skipString(content, i, '\'')

		case '/':
			if i+1 >= len(content) {
				i++
				continue
			}
			switch content[i+1] {
			case '/':
				i = skipLineComment(content, i)
			case '*':
				if isDocCommentStart(content, i) {
					var comment Comment
					comment, i = scanDocComment(f, content, i)
					out = append(out, comment)
				} else {
					i = skipBlockComment(content, i)
				}
			default:
				i++
			}

		default:
			i++
		}
	}

	return out
}

// isDocCommentStart reports whether content[at:] opens a documentation
// comment: "/**" that is not the degenerate empty comment "/**/" and not a
// decorative run like "/****" followed by nothing.
func isDocCommentStart(content []byte, at int) bool {
	if at+2 >= len(content) || content[at+2] != '*' {
		return false
	}
	// "/**/" is an ordinary empty block comment.
	if at+3 < len(content) && content[at+3] == '/' {
		return false
	}
	return true
}

func scanDocComment(f *source.File, content []byte, start int) (Comment, int) {
	textStart := start + 3
	end := strings.Index(string(content[textStart:]), "*/")

	var text string
	var next int
	if end < 0 {
		text = string(content[textStart:])
		next = len(content)
	} else {
		text = string(content[textStart : textStart+end])
		next = textStart + end + 2
	}

	off, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("comment offset overflow: %w", err))
	}
	pos := f.Position(off)

	// pos.Col is a 1-based byte column; re-measure the line prefix in runes
	// so a non-ASCII prefix does not inflate downstream width math.
	lineStart := start - int(pos.Col-1)
	runeCol := utf8.RuneCount(content[lineStart:start])

	return Comment{
		Text: text,
		Line: pos.Line,
		Col:  uint32(runeCol),
	}, next
}

func skipLineComment(content []byte, at int) int {
	for at < len(content) && content[at] != '\n' {
		at++
	}
	return at
}

func skipBlockComment(content []byte, at int) int {
	at += 2
	for at+1 < len(content) {
		if content[at] == '*' && content[at+1] == '/' {
			return at + 2
		}
		at++
	}
	return len(content)
}

// skipString advances past a quoted literal, honoring backslash escapes.
// An unterminated literal runs to end of line.
func skipString(content []byte, at int, quote byte) int {
	at++
	for at < len(content) {
		switch content[at] {
		case '\\':
			at += 2
			continue
		case quote:
			return at + 1
		case '\n':
			return at
		}
		at++
	}
	return at
}
