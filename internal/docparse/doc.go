// Package docparse parses the raw text of one documentation comment into a
// doctree.
//
// The parser is line oriented: leading asterisks, block tags at the start of
// a line's content, inline {@...} tags, and HTML open/close tags. It is
// deliberately forgiving: anything it cannot classify stays plain text and
// the walk downstream never aborts.
package docparse
