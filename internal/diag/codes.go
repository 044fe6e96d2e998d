package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the catch-all for unclassified findings.
	UnknownCode Code = 0

	// I/O and discovery
	IOLoadFileError Code = 1000
	IOWalkDirError  Code = 1001
	IOCacheError    Code = 1002

	// Documentation-comment parsing
	DocInfo                  Code = 2000
	DocUnterminatedComment   Code = 2001
	DocUnterminatedInlineTag Code = 2002

	// Line layout
	LayInfo         Code = 3000
	LayLineTooShort Code = 3001
	LayLineTooLong  Code = 3002

	// Configuration
	CfgInvalidLineLimit Code = 4000
	CfgInvalidManifest  Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown finding",

	IOLoadFileError: "failed to load file",
	IOWalkDirError:  "failed to walk directory",
	IOCacheError:    "result cache failure",

	DocInfo:                  "documentation comment info",
	DocUnterminatedComment:   "documentation comment is not closed",
	DocUnterminatedInlineTag: "inline tag is not closed",

	LayInfo:         "line layout info",
	LayLineTooShort: "line wraps earlier than necessary",
	LayLineTooLong:  "line exceeds the width limit",

	CfgInvalidLineLimit: "line limit must be a positive integer",
	CfgInvalidManifest:  "invalid doclint.toml manifest",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("DOC%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LAY%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
