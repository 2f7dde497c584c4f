package htmltok

// buffer is the mutable, chunk-appendable, offset-tracking cursor that
// backs the driver loop. It plays the role the teacher's strcursor.Cursor
// plays in parserctx.go (Peek/Advance/Consume over a byte window) but,
// unlike strcursor, it owns a growable slice so that Write can append
// new chunks mid-parse and compact() can discard bytes that can never
// be read again -- see DESIGN.md for why strcursor itself isn't reused
// here.
type buffer struct {
	data         []byte
	index        int // next byte to inspect, 0 <= index <= len(data)
	sectionStart int // -1 means "no active section"
	offset       int // absolute count of bytes discarded by compaction
}

// newBuffer starts with an active section at position 0: the tokenizer
// begins in Text, which accumulates from the first byte it sees, so
// there is no point in the stream where Text lacks a section to flush.
// The -1 sentinel is reserved for the narrower gap after an attribute
// name has been emitted and before the next section opens.
func newBuffer() *buffer {
	return &buffer{sectionStart: 0}
}

func (b *buffer) append(chunk []byte) {
	b.data = append(b.data, chunk...)
}

func (b *buffer) len() int {
	return len(b.data)
}

func (b *buffer) done() bool {
	return b.index >= len(b.data)
}

// current returns the byte at the cursor. Caller must check done() first.
func (b *buffer) current() byte {
	return b.data[b.index]
}

func (b *buffer) advance() {
	b.index++
}

// absoluteIndex is the position of the cursor in the logical input
// stream, exposed publicly as Tokenizer.AbsoluteIndex.
func (b *buffer) absoluteIndex() int {
	return b.offset + b.index
}

// startSection marks the current cursor position as the start of a new
// lexical section (tag name, attribute value, comment body, ...).
func (b *buffer) startSection() {
	b.sectionStart = b.index
}

// startSectionAt marks an arbitrary earlier-or-equal position as the
// section start, used by the special-tag matcher to back up to the first
// byte of a closing tag's name it has already scanned past.
func (b *buffer) startSectionAt(i int) {
	b.sectionStart = i
}

func (b *buffer) clearSection() {
	b.sectionStart = -1
}

func (b *buffer) hasSection() bool {
	return b.sectionStart >= 0
}

// section returns the substring [sectionStart, index) captured so far.
// The returned string is a fresh copy; see §9 of the design notes this
// implements ("specify callbacks as receiving a borrowed string slice
// bounded by the callback scope") -- Go string conversion from a byte
// slice already copies, so every callback payload below is safe to
// retain past compaction without any extra bookkeeping.
func (b *buffer) section() string {
	return string(b.data[b.sectionStart:b.index])
}

// sectionTrimEnd returns the section with the last n bytes dropped, used
// by comment/CDATA end handling to exclude the trailing "--"/"]]".
func (b *buffer) sectionTrimEnd(n int) string {
	end := b.index - n
	if end < b.sectionStart {
		end = b.sectionStart
	}
	return string(b.data[b.sectionStart:end])
}

// compact implements §4.4 of the design notes this module follows.
// emitText is called with any pending text that must be flushed before its
// backing bytes are discarded (the "running and state is Text" case).
func (b *buffer) compact(running bool, st state, emitText func(string)) {
	switch {
	case !b.hasSection():
		b.drop(b.index)
	case running && st == stateText:
		if b.index > b.sectionStart {
			emitText(b.section())
		}
		b.drop(b.index)
		b.sectionStart = 0
	case b.sectionStart == b.index:
		b.drop(b.index)
	default:
		n := b.sectionStart
		b.drop(n)
		b.sectionStart = 0
	}
}

// drop discards the first n bytes of the buffer and shifts index/offset
// to match, shifting an active sectionStart down by n as well. compact()
// then overwrites sectionStart where its branch needs a different value.
func (b *buffer) drop(n int) {
	if n <= 0 {
		return
	}
	b.data = append(b.data[:0], b.data[n:]...)
	b.index -= n
	b.offset += n
	if b.sectionStart >= 0 {
		b.sectionStart -= n
	}
}
