package htmltok

import (
	"strconv"

	"github.com/lestrrat-go/htmltok/internal/debug"
	"github.com/lestrrat-go/htmltok/internal/trace"
)

// Tokenizer is a resumable push-parser: it accepts document text in
// arbitrary chunks via Write and emits a stream of lexical events to a
// Handler. It owns all state for one input stream -- see buffer.go for
// the chunk-appendable cursor, specialtags.go for the opaque-content
// matcher, and entities.go/entities_table.go for character reference
// decoding.
//
// A Tokenizer is not safe for concurrent use; per the design this
// module implements, independent streams need independent instances.
type Tokenizer struct {
	opts options
	h    Handler

	buf   *buffer
	st    state
	base  state // state to resume after an entity reference completes
	special int // index into opts.specialTagNames, or -1 for "none"
	matcher specialMatcher
	closeDepth int // match depth of the closing-tag matcher, valid while special != -1

	running  bool
	ended    bool
	finished bool
}

// New constructs a Tokenizer that drives h. A nil h is replaced with a
// zero-value *Callbacks, matching the teacher's own convention (sax.New)
// of never requiring a caller to hand-roll a no-op handler.
func New(h Handler, opts ...TokenizerOption) *Tokenizer {
	if h == nil {
		h = &Callbacks{}
	}
	t := &Tokenizer{
		opts: resolveOptions(opts),
		h:    h,
	}
	t.matcher.names = t.opts.specialTagNames
	t.Reset()
	return t
}

// Reset returns every field to its constructor defaults except the
// handler and options, per §3 of the design this module implements.
func (t *Tokenizer) Reset() {
	t.buf = newBuffer()
	t.st = stateText
	t.base = stateText
	t.special = -1
	t.matcher.set = nil
	t.closeDepth = 0
	t.running = true
	t.ended = false
	t.finished = false
}

// AbsoluteIndex returns the current absolute cursor position over the
// logical input stream (buffer_offset + local index).
func (t *Tokenizer) AbsoluteIndex() int {
	return t.buf.absoluteIndex()
}

// Write appends chunk to the input and drives the state machine until
// the buffer is exhausted or the tokenizer is paused.
func (t *Tokenizer) Write(chunk []byte) error {
	g := trace.Start("Write")
	defer g.End()

	if t.ended {
		err := ErrAlreadyEnded
		t.h.OnError(err, t.st)
		return err
	}

	t.buf.append(chunk)
	t.run()
	t.buf.compact(t.running, t.st, t.h.OnText)
	return nil
}

// Pause clears the running flag; the driver loop exits at the next
// character boundary and further Write calls only append.
func (t *Tokenizer) Pause() {
	t.running = false
}

// Resume sets the running flag and, if data remains, drives the loop;
// if End was already called while paused, this is where finalisation
// happens.
func (t *Tokenizer) Resume() {
	t.running = true
	if !t.buf.done() {
		t.run()
		t.buf.compact(t.running, t.st, t.h.OnText)
	}
	if t.ended && t.buf.done() {
		t.finish()
	}
}

// End optionally appends a final chunk, marks the stream ended, and --
// if the tokenizer is currently running -- finalises immediately.
// Calling End (or Write) again afterwards is reported via OnError
// rather than panicking, per §7 of the design this module implements.
func (t *Tokenizer) End(chunk []byte) error {
	g := trace.Start("End")
	defer g.End()

	if t.ended {
		err := ErrAlreadyEnded
		t.h.OnError(err, t.st)
		return err
	}

	if len(chunk) > 0 {
		t.buf.append(chunk)
	}
	t.ended = true
	if t.running {
		t.run()
		t.buf.compact(t.running, t.st, t.h.OnText)
		t.finish()
	}
	return nil
}

func (t *Tokenizer) run() {
	for t.running && !t.buf.done() {
		c := t.buf.current()
		if debug.Enabled {
			debug.Printf("state=%s index=%d char=%q", t.st, t.buf.absoluteIndex(), c)
		}
		t.step(c)
	}
}

// step dispatches a single character to its state handler. Every
// handler either advances the cursor (consuming the character) or
// leaves it in place ("stepping back") so the next iteration reprocesses
// the same character under the new state -- see §4.1 of the design
// notes this module implements.
func (t *Tokenizer) step(c byte) {
	switch t.st {
	case stateText:
		t.stepText(c)
	case stateBeforeTagName:
		t.stepBeforeTagName(c)
	case stateInTagName:
		t.stepInTagName(c)
	case stateBeforeClosingTagName:
		t.stepBeforeClosingTagName(c)
	case stateInClosingTagName:
		t.stepInClosingTagName(c)
	case stateAfterClosingTagName:
		t.stepAfterClosingTagName(c)
	case stateBeforeAttributeName:
		t.stepBeforeAttributeName(c)
	case stateInAttributeName:
		t.stepInAttributeName(c)
	case stateAfterAttributeName:
		t.stepAfterAttributeName(c)
	case stateBeforeAttributeValue:
		t.stepBeforeAttributeValue(c)
	case stateInAttributeValueDq:
		t.stepInAttributeValueQuoted(c, '"')
	case stateInAttributeValueSq:
		t.stepInAttributeValueQuoted(c, '\'')
	case stateInAttributeValueNq:
		t.stepInAttributeValueNq(c)
	case stateInSelfClosingTag:
		t.stepInSelfClosingTag(c)
	case stateBeforeDeclaration:
		t.stepBeforeDeclaration(c)
	case stateInDeclaration:
		t.stepInDeclaration(c)
	case stateInProcessingInstruction:
		t.stepInProcessingInstruction(c)
	case stateBeforeComment:
		t.stepBeforeComment(c)
	case stateInComment:
		t.stepInComment(c)
	case stateAfterComment1:
		t.stepAfterComment1(c)
	case stateAfterComment2:
		t.stepAfterComment2(c)
	case stateBeforeCdata1, stateBeforeCdata2, stateBeforeCdata3, stateBeforeCdata4, stateBeforeCdata5:
		t.stepBeforeCdataLetter(c)
	case stateBeforeCdata6:
		t.stepBeforeCdata6(c)
	case stateInCdata:
		t.stepInCdata(c)
	case stateAfterCdata1:
		t.stepAfterCdata1(c)
	case stateAfterCdata2:
		t.stepAfterCdata2(c)
	case stateBeforeSpecial:
		t.stepBeforeSpecial(c)
	case stateBeforeSpecialEnd:
		t.stepBeforeSpecialEnd(c)
	case stateBeforeEntity:
		t.stepBeforeEntity(c)
	case stateBeforeNumericEntity:
		t.stepBeforeNumericEntity(c)
	case stateInNamedEntity:
		t.stepInNamedEntity(c)
	case stateInNumericEntity:
		t.stepInNumericEntity(c)
	case stateInHexEntity:
		t.stepInHexEntity(c)
	default:
		err := UnknownStateError{State: t.st}
		t.h.OnError(err, t.st)
		// advance to avoid looping forever on an unreachable state.
		t.buf.advance()
	}
}

// toTextFresh consumes the current terminator, returns to Text, and
// opens a new section right after it -- used whenever a construct
// completes cleanly (as opposed to an abandoned tag-open, which must
// keep its original section so the junk bytes fold back into the
// surrounding text run).
func (t *Tokenizer) toTextFresh() {
	t.buf.advance()
	t.st = stateText
	t.buf.startSection()
}

func (t *Tokenizer) emitByBase(s string) {
	if t.base == stateText {
		t.h.OnText(s)
	} else {
		t.h.OnAttribData(s)
	}
}

func asciiLowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// --- Text and tag dispatch -------------------------------------------------

func (t *Tokenizer) stepText(c byte) {
	switch {
	case c == '<':
		if t.buf.index > t.buf.sectionStart {
			t.h.OnText(t.buf.section())
		}
		t.buf.startSection()
		t.st = stateBeforeTagName
		t.buf.advance()
	case c == '&' && t.opts.decodeEntities && t.special == -1:
		if t.buf.index > t.buf.sectionStart {
			t.h.OnText(t.buf.section())
		}
		t.base = stateText
		t.buf.startSection()
		t.st = stateBeforeEntity
		t.buf.advance()
	default:
		t.buf.advance()
	}
}

func (t *Tokenizer) stepBeforeTagName(c byte) {
	switch {
	case c == '/':
		t.closeDepth = 0
		t.st = stateBeforeClosingTagName
		t.buf.advance()
	case c == '<':
		t.h.OnText(t.buf.section())
		t.buf.startSection()
		t.buf.advance()
	case c == '>' || isWhitespace(c) || t.special != -1:
		t.st = stateText
	case c == '!':
		t.buf.advance()
		t.buf.startSection()
		t.st = stateBeforeDeclaration
	case c == '?':
		t.buf.advance()
		t.buf.startSection()
		t.st = stateInProcessingInstruction
	default:
		t.buf.startSection()
		lc := asciiLowerByte(c)
		if !t.opts.xmlMode && t.matcher.startOpen(lc) {
			t.st = stateBeforeSpecial
			t.buf.advance()
		} else {
			t.st = stateInTagName
		}
	}
}

func (t *Tokenizer) stepInTagName(c byte) {
	if c == '/' || c == '>' || isWhitespace(c) {
		t.h.OnOpenTagName(t.buf.section())
		t.st = stateBeforeAttributeName
		return
	}
	t.buf.advance()
}

func (t *Tokenizer) stepBeforeClosingTagName(c byte) {
	switch {
	case isWhitespace(c):
		t.buf.advance()
	case c == '>':
		t.toTextFresh()
	case t.special != -1:
		name := t.matcher.names[t.special]
		lc := asciiLowerByte(c)
		term := c == '>' || isWhitespace(c)
		switch closeStep(name, t.closeDepth, lc, term) {
		case closeNoMatch:
			t.st = stateText
		default: // closeMatching; closeMatched cannot occur at depth 0 since no special tag name is empty
			t.closeDepth++
			t.st = stateBeforeSpecialEnd
			t.buf.advance()
		}
	default:
		t.buf.startSection()
		t.st = stateInClosingTagName
	}
}

func (t *Tokenizer) stepInClosingTagName(c byte) {
	if c == '>' || isWhitespace(c) {
		t.h.OnCloseTag(t.buf.section())
		t.st = stateAfterClosingTagName
		return
	}
	t.buf.advance()
}

func (t *Tokenizer) stepAfterClosingTagName(c byte) {
	if c == '>' {
		t.toTextFresh()
		return
	}
	t.buf.advance()
}

// --- Special-tag matching ---------------------------------------------------

func (t *Tokenizer) stepBeforeSpecial(c byte) {
	lc := asciiLowerByte(c)
	term := c == '/' || c == '>' || isWhitespace(c)
	switch outcome, idx := t.matcher.advanceOpen(lc, term); outcome {
	case openMatched:
		t.special = idx
		t.st = stateInTagName
	case openAbandoned:
		t.st = stateInTagName
	default: // openMatching
		t.buf.advance()
	}
}

func (t *Tokenizer) stepBeforeSpecialEnd(c byte) {
	name := t.matcher.names[t.special]
	lc := asciiLowerByte(c)
	term := c == '>' || isWhitespace(c)
	switch closeStep(name, t.closeDepth, lc, term) {
	case closeMatching:
		t.closeDepth++
		t.buf.advance()
	case closeMatched:
		t.buf.startSectionAt(t.buf.index - len(name))
		t.special = -1
		t.st = stateInClosingTagName
	default: // closeNoMatch
		t.st = stateText
	}
}

// --- Attributes --------------------------------------------------------------

func (t *Tokenizer) stepBeforeAttributeName(c byte) {
	switch {
	case c == '>':
		t.h.OnOpenTagEnd()
		t.toTextFresh()
	case c == '/':
		t.st = stateInSelfClosingTag
		t.buf.advance()
	case isWhitespace(c):
		t.buf.advance()
	default:
		t.buf.startSection()
		t.st = stateInAttributeName
	}
}

func (t *Tokenizer) stepInAttributeName(c byte) {
	if c == '=' || c == '/' || c == '>' || isWhitespace(c) {
		t.h.OnAttribName(t.buf.section())
		t.buf.clearSection()
		t.st = stateAfterAttributeName
		return
	}
	t.buf.advance()
}

func (t *Tokenizer) stepAfterAttributeName(c byte) {
	switch {
	case c == '=':
		t.st = stateBeforeAttributeValue
		t.buf.advance()
	case c == '/' || c == '>':
		t.h.OnAttribEnd()
		t.st = stateBeforeAttributeName
	case isWhitespace(c):
		t.buf.advance()
	default:
		t.h.OnAttribEnd()
		t.buf.startSection()
		t.st = stateInAttributeName
	}
}

func (t *Tokenizer) stepBeforeAttributeValue(c byte) {
	switch {
	case c == '"':
		t.buf.advance()
		t.buf.startSection()
		t.st = stateInAttributeValueDq
	case c == '\'':
		t.buf.advance()
		t.buf.startSection()
		t.st = stateInAttributeValueSq
	case isWhitespace(c):
		t.buf.advance()
	default:
		t.buf.startSection()
		t.st = stateInAttributeValueNq
	}
}

func (t *Tokenizer) stepInAttributeValueQuoted(c byte, quote byte) {
	switch {
	case c == quote:
		if t.buf.index > t.buf.sectionStart {
			t.h.OnAttribData(t.buf.section())
		}
		t.h.OnAttribEnd()
		t.buf.advance()
		t.st = stateBeforeAttributeName
	case c == '&' && t.opts.decodeEntities:
		t.flushAttribValueAndEnterEntity(quoteState(quote))
	default:
		t.buf.advance()
	}
}

func quoteState(quote byte) state {
	if quote == '"' {
		return stateInAttributeValueDq
	}
	return stateInAttributeValueSq
}

func (t *Tokenizer) stepInAttributeValueNq(c byte) {
	switch {
	case isWhitespace(c) || c == '>':
		if t.buf.index > t.buf.sectionStart {
			t.h.OnAttribData(t.buf.section())
		}
		t.h.OnAttribEnd()
		t.st = stateBeforeAttributeName
	case c == '&' && t.opts.decodeEntities:
		t.flushAttribValueAndEnterEntity(stateInAttributeValueNq)
	default:
		t.buf.advance()
	}
}

func (t *Tokenizer) flushAttribValueAndEnterEntity(from state) {
	if t.buf.index > t.buf.sectionStart {
		t.h.OnAttribData(t.buf.section())
	}
	t.base = from
	t.buf.startSection()
	t.buf.advance()
	t.st = stateBeforeEntity
}

func (t *Tokenizer) stepInSelfClosingTag(c byte) {
	switch {
	case c == '>':
		t.h.OnSelfClosingTag()
		t.toTextFresh()
	case isWhitespace(c):
		t.buf.advance()
	default:
		t.st = stateBeforeAttributeName
	}
}

// --- Declarations, comments, CDATA, PIs --------------------------------------

func (t *Tokenizer) stepBeforeDeclaration(c byte) {
	switch c {
	case '[':
		t.st = stateBeforeCdata1
		t.buf.advance()
	case '-':
		t.st = stateBeforeComment
		t.buf.advance()
	default:
		t.st = stateInDeclaration
	}
}

func (t *Tokenizer) stepInDeclaration(c byte) {
	if c == '>' {
		t.h.OnDeclaration(t.buf.section())
		t.toTextFresh()
		return
	}
	t.buf.advance()
}

func (t *Tokenizer) stepInProcessingInstruction(c byte) {
	if c == '>' {
		t.h.OnProcessingInstruction(t.buf.section())
		t.toTextFresh()
		return
	}
	t.buf.advance()
}

func (t *Tokenizer) stepBeforeComment(c byte) {
	if c == '-' {
		t.buf.advance()
		t.buf.startSection()
		t.st = stateInComment
		return
	}
	t.st = stateInDeclaration
}

func (t *Tokenizer) stepInComment(c byte) {
	if c == '-' {
		t.st = stateAfterComment1
	}
	t.buf.advance()
}

func (t *Tokenizer) stepAfterComment1(c byte) {
	if c == '-' {
		t.st = stateAfterComment2
	} else {
		t.st = stateInComment
	}
	t.buf.advance()
}

func (t *Tokenizer) stepAfterComment2(c byte) {
	switch c {
	case '>':
		t.h.OnComment(t.buf.sectionTrimEnd(2))
		t.toTextFresh()
	case '-':
		t.buf.advance() // stay, handles "--->"
	default:
		t.st = stateInComment
		t.buf.advance()
	}
}

func (t *Tokenizer) stepBeforeCdataLetter(c byte) {
	idx := int(t.st - stateBeforeCdata1)
	if c == cdataLetters[idx] {
		t.buf.advance()
		t.st++
		return
	}
	t.st = stateInDeclaration
}

func (t *Tokenizer) stepBeforeCdata6(c byte) {
	if c == '[' {
		t.buf.advance()
		t.buf.startSection()
		t.st = stateInCdata
		return
	}
	t.st = stateInDeclaration
}

func (t *Tokenizer) stepInCdata(c byte) {
	if c == ']' {
		t.st = stateAfterCdata1
	}
	t.buf.advance()
}

func (t *Tokenizer) stepAfterCdata1(c byte) {
	if c == ']' {
		t.st = stateAfterCdata2
	} else {
		t.st = stateInCdata
	}
	t.buf.advance()
}

func (t *Tokenizer) stepAfterCdata2(c byte) {
	switch c {
	case '>':
		t.h.OnCDATA(t.buf.sectionTrimEnd(2))
		t.toTextFresh()
	case ']':
		t.buf.advance() // stay, handles "]]]>"
	default:
		t.st = stateInCdata
		t.buf.advance()
	}
}

// --- Entities ----------------------------------------------------------------

func (t *Tokenizer) stepBeforeEntity(c byte) {
	if c == '#' {
		t.st = stateBeforeNumericEntity
		t.buf.advance()
		return
	}
	t.st = stateInNamedEntity
}

func (t *Tokenizer) stepBeforeNumericEntity(c byte) {
	if c == 'x' || c == 'X' {
		t.st = stateInHexEntity
		t.buf.advance()
		return
	}
	t.st = stateInNumericEntity
}

func (t *Tokenizer) stepInNamedEntity(c byte) {
	if isAsciiAlnum(c) {
		t.buf.advance()
		return
	}
	if c == ';' {
		t.finishNamedEntitySemicolon()
		return
	}
	t.namedEntityOtherTerminator(c)
}

func (t *Tokenizer) finishNamedEntitySemicolon() {
	name := string(t.buf.data[t.buf.sectionStart+1 : t.buf.index])
	table := namedEntities
	if t.opts.xmlMode {
		table = xmlNamedEntities
	}
	if v, ok := table[name]; ok {
		t.buf.advance()
		t.emitByBase(v)
		t.buf.sectionStart = t.buf.index
		t.st = t.base
		return
	}
	if !t.opts.xmlMode {
		if v, n := lookupLegacyPrefix(name); n > 0 {
			t.emitByBase(v)
			t.buf.index = t.buf.sectionStart + 1 + n
			t.buf.sectionStart = t.buf.index
		}
	}
	t.st = t.base
}

// namedEntityOtherTerminator implements the non-';' branch of §4.3's
// named-entity rule. See DESIGN.md for the reading of "parse strictly"
// adopted here: an exact, non-prefix match against the semicolon-table
// (as opposed to "parse legacy", a longest-prefix match against the
// legacy table).
func (t *Tokenizer) namedEntityOtherTerminator(c byte) {
	name := string(t.buf.data[t.buf.sectionStart+1 : t.buf.index])
	if t.opts.xmlMode || name == "" {
		t.st = t.base
		return
	}
	if t.base != stateText {
		if c == '=' {
			t.st = t.base
			return
		}
		if v, ok := namedEntities[name]; ok {
			t.emitByBase(v)
			t.buf.sectionStart = t.buf.index
		}
		t.st = t.base
		return
	}
	if v, n := lookupLegacyPrefix(name); n > 0 {
		t.emitByBase(v)
		t.buf.index = t.buf.sectionStart + 1 + n
		t.buf.sectionStart = t.buf.index
	}
	t.st = t.base
}

func (t *Tokenizer) stepInNumericEntity(c byte) {
	if isAsciiDigit(c) {
		t.buf.advance()
		return
	}
	if c == ';' {
		t.finishNumericEntity(10, 2, true)
		return
	}
	if !t.opts.xmlMode {
		t.finishNumericEntity(10, 2, false)
		return
	}
	t.st = t.base
}

func (t *Tokenizer) stepInHexEntity(c byte) {
	if isAsciiHex(c) {
		t.buf.advance()
		return
	}
	if c == ';' {
		t.finishNumericEntity(16, 3, true)
		return
	}
	if !t.opts.xmlMode {
		t.finishNumericEntity(16, 3, false)
		return
	}
	t.st = t.base
}

// finishNumericEntity decodes the accumulated digits (base 10 or 16,
// skipping the leading "&#" or "&#x" of length prefixLen) and, if any
// digits were collected, emits the decoded code point.
func (t *Tokenizer) finishNumericEntity(base, prefixLen int, consumeSemicolon bool) {
	start := t.buf.sectionStart + prefixLen
	digits := string(t.buf.data[start:t.buf.index])
	if consumeSemicolon {
		t.buf.advance()
	}
	if digits != "" {
		if v, err := strconv.ParseInt(digits, base, 64); err == nil {
			t.emitByBase(string(decodeCodePoint(v)))
		}
	}
	t.buf.sectionStart = t.buf.index
	t.st = t.base
}

// finish salvages any still-open section at end-of-input per §4.5, then
// fires OnEnd. It is idempotent: End and Resume may both reach it, but
// only the first call has any effect.
func (t *Tokenizer) finish() {
	if t.finished {
		return
	}
	t.finished = true

	if t.buf.hasSection() && t.buf.index > t.buf.sectionStart {
		switch t.st {
		case stateInCdata, stateAfterCdata1, stateAfterCdata2:
			t.h.OnCDATA(t.buf.section())
		case stateInComment, stateAfterComment1, stateAfterComment2:
			t.h.OnComment(t.buf.section())
		case stateInNamedEntity:
			if !t.opts.xmlMode {
				t.finishNamedEntityAtEOF()
			} else {
				t.emitByBase(t.buf.section())
			}
		case stateInNumericEntity:
			if !t.opts.xmlMode {
				t.finishNumericEntity(10, 2, false)
			} else {
				t.emitByBase(t.buf.section())
			}
		case stateInHexEntity:
			if !t.opts.xmlMode {
				t.finishNumericEntity(16, 3, false)
			} else {
				t.emitByBase(t.buf.section())
			}
		case stateInTagName, stateInClosingTagName, stateInAttributeName, stateAfterAttributeName,
			stateBeforeAttributeName, stateBeforeAttributeValue,
			stateInAttributeValueDq, stateInAttributeValueSq, stateInAttributeValueNq:
			// tag-structural: drop silently, per §4.5
		default:
			t.h.OnText(t.buf.section())
		}
	}
	t.h.OnEnd()
}

// finishNamedEntityAtEOF is the finalisation-time counterpart of
// finishNamedEntitySemicolon: there is no trailing terminator left to
// reconsume, so a legacy match's decoded value and its leftover
// characters are emitted as two separate sections, the same split
// namedEntityOtherTerminator produces by rewinding the buffer mid-
// stream -- one ontext/onattribdata call for the decoded value, one for
// the literal remainder, never concatenated into a single string.
func (t *Tokenizer) finishNamedEntityAtEOF() {
	name := string(t.buf.data[t.buf.sectionStart+1 : t.buf.index])
	if v, n := lookupLegacyPrefix(name); n > 0 {
		t.emitByBase(v)
		if rest := name[n:]; rest != "" {
			t.emitByBase(rest)
		}
		return
	}
	t.emitByBase("&" + name)
}
