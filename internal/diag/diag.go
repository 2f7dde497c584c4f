// Package diag turns a Tokenizer's absolute byte offset into a
// human-readable line/column position and source snippet, for CLI
// error reporting. It walks the document with a strcursor.Cursor the
// same way parserctx.go does during parsing -- unlike the tokenizer's
// own buffer (buffer.go), this is a read-only, whole-document pass run
// once after the fact, so the teacher's immutable cursor fits directly
// and there is no need for the mutable, chunk-appendable buffer the
// driver loop requires.
package diag

import (
	"bytes"
	"strings"

	"github.com/lestrrat-go/strcursor"
)

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

// Locate walks data up to the byte offset idx and returns its 1-based
// line and column.
func Locate(data []byte, idx int) Position {
	pos := Position{Line: 1, Column: 1}
	if idx > len(data) {
		idx = len(data)
	}
	cur := strcursor.NewByteCursor(bytes.NewReader(data))
	for i := 0; i < idx && !cur.Done(); i++ {
		c := cur.Peek()
		cur.Advance(1)
		if c == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// Snippet renders the source line containing idx followed by a caret
// line pointing at the offending column, in the style of a compiler
// diagnostic.
func Snippet(data []byte, idx int) string {
	if idx > len(data) {
		idx = len(data)
	}
	start := idx
	for start > 0 && data[start-1] != '\n' {
		start--
	}
	end := idx
	for end < len(data) && data[end] != '\n' {
		end++
	}
	line := string(data[start:end])
	caret := strings.Repeat(" ", idx-start) + "^"
	return line + "\n" + caret
}
