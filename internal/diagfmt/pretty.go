package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"doclint/internal/diag"
	"doclint/internal/source"
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// (call bag.Sort() beforehand for stable output) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a ^~~~ underline covering the
// primary span, then notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	sevColors := map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevInfo:    color.New(color.FgCyan),
	}
	codeColor := color.New(color.Bold)

	paint := func(c *color.Color, s string) string {
		if !opts.Color || c == nil {
			return s
		}
		return c.Sprint(s)
	}

	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)

		path := formatPath(file, fs, opts.PathMode)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			path, start.Line, start.Col,
			paint(sevColors[d.Severity], d.Severity.String()),
			paint(codeColor, d.Code.ID()),
			d.Message,
		)

		writeContext(w, file, start, end, opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				nstart, _ := fs.Resolve(note.Span)
				nfile := fs.Get(note.Span.File)
				fmt.Fprintf(w, "  %s:%d:%d: note: %s\n",
					formatPath(nfile, fs, opts.PathMode), nstart.Line, nstart.Col, note.Msg)
			}
		}
	}
}

// writeContext prints the primary line (plus any configured surrounding
// lines) with a caret underline. Underline width follows the displayed cell
// width of the underlined text, so wide runes stay aligned.
func writeContext(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	first := start.Line
	last := start.Line
	if ctx := uint32(max(int(opts.Context), 0)); ctx > 0 {
		if first > ctx {
			first -= ctx
		} else {
			first = 1
		}
		last += ctx
	}

	for ln := first; ln <= last; ln++ {
		text := file.GetLine(ln)
		if text == "" && ln != start.Line {
			continue
		}
		fmt.Fprintf(w, "  %5d | %s\n", ln, text)

		if ln != start.Line {
			continue
		}

		// Column math happens in display cells.
		col := int(start.Col) - 1
		if col > len(text) {
			col = len(text)
		}
		prefix := runewidth.StringWidth(text[:col])

		spanEnd := len(text)
		if end.Line == start.Line && int(end.Col)-1 < spanEnd {
			spanEnd = int(end.Col) - 1
		}
		width := 1
		if spanEnd > col {
			width = runewidth.StringWidth(text[col:spanEnd])
		}

		underline := "^"
		if width > 1 {
			underline += strings.Repeat("~", width-1)
		}
		fmt.Fprintf(w, "        | %s%s\n", strings.Repeat(" ", prefix), underline)
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
