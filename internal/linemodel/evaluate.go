package linemodel

import "unicode/utf8"

// DefaultLineLimit is the width limit applied when none is configured.
const DefaultLineLimit = 80

// ViolationKind discriminates the two layout defects.
type ViolationKind uint8

const (
	// TooLong flags a line that overflows the limit.
	TooLong ViolationKind = iota
	// TooShort flags a line that wrapped although the next line's first word
	// would still have fit.
	TooShort
)

func (k ViolationKind) String() string {
	if k == TooShort {
		return "too_short"
	}
	return "too_long"
}

// Violation is one layout defect found by Evaluate.
type Violation struct {
	Kind   ViolationKind
	Line   uint32
	Limit  int
	Length int // measured length, TooLong only
}

// Evaluate makes width decisions over a finished, ordered line sequence and
// returns violations in sequence order. The sequence is read-only here; limit
// must be positive (callers validate at configuration time).
func Evaluate(lines []*Line, limit int) []Violation {
	var out []Violation

	for i, line := range lines {
		if !line.ShouldBeChecked || !line.HasContent {
			continue
		}

		if line.Length > limit {
			// A line whose sole over-length cause is a single unbreakable
			// leading element is exempt.
			if !line.StartsWithUnbreakable {
				out = append(out, Violation{
					Kind:   TooLong,
					Line:   line.Number,
					Limit:  limit,
					Length: line.Length,
				})
			}
		} else if canPullFromNextLine(lines, i, line.Length, limit) {
			out = append(out, Violation{
				Kind:  TooShort,
				Line:  line.Number,
				Limit: limit,
			})
		}
	}

	return out
}

// canPullFromNextLine scans forward for the next line with content and
// reports whether its first word would fit on the current line together with
// a separating space. A block-tag start always begins fresh, and a content
// line without an extractable word is unevaluable rather than a violation.
func canPullFromNextLine(lines []*Line, currentIndex, currentLength, limit int) bool {
	for i := currentIndex + 1; i < len(lines); i++ {
		next := lines[i]

		if !next.HasContent {
			continue
		}

		if next.IsBlockTagStart {
			return false
		}

		if next.FirstWord != "" {
			newLength := currentLength + 1 + utf8.RuneCountInString(next.FirstWord)
			return newLength <= limit
		}

		return false
	}

	return false
}
