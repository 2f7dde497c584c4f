package htmltok

// specialMatcher implements §4.2 of the design notes this module
// implements: a trie-less, longest-prefix match over the caller-supplied
// special-tag table. The candidate set is small (a handful of tags at
// most) so, per the REDESIGN FLAGS guidance, it lives in a plain slice
// rather than any tree structure -- an inline vector avoids heap churn
// for the common case of just "script" and "style".
type specialMatcher struct {
	names []string // pre-lowercased, deduplicated, owned by *options
	set   []int    // candidate indices still matching the scanned prefix
	depth int       // characters matched so far
}

// startOpen begins matching the opening-tag name against every special
// tag whose first character equals lc (already lowercased). It reports
// whether any candidate remains.
func (m *specialMatcher) startOpen(lc byte) bool {
	m.set = m.set[:0]
	for i, name := range m.names {
		if name[0] == lc {
			m.set = append(m.set, i)
		}
	}
	m.depth = 1
	return len(m.set) > 0
}

// closeResult is the three-way outcome of feeding a character to the
// closing-tag matcher (§4.2 item 3).
type closeResult int

const (
	closeNoMatch closeResult = iota
	closeMatching
	closeMatched
)

// openOutcome is the three-way outcome of feeding a character to the
// opening-tag match set.
type openOutcome int

const (
	openAbandoned openOutcome = iota // no candidate survives
	openMatching                     // at least one candidate still alive
	openMatched                      // exactly one candidate completed
)

// advanceOpen feeds the next character of a candidate opening tag name
// to the matcher. terminator reports whether c is '/', '>' or
// whitespace -- the only characters allowed to end a tag name. idx is
// only meaningful when the outcome is openMatched.
func (m *specialMatcher) advanceOpen(lc byte, terminator bool) (outcome openOutcome, idx int) {
	next := m.set[:0]
	for _, cand := range m.set {
		name := m.names[cand]
		if m.depth >= len(name) {
			if terminator {
				return openMatched, cand
			}
			continue
		}
		if name[m.depth] == lc {
			next = append(next, cand)
		}
	}
	m.set = next
	m.depth++
	if len(m.set) == 0 {
		return openAbandoned, -1
	}
	return openMatching, -1
}

// closeStep implements §4.2 item 3: compare c against
// names[special][depth]. depth is managed by the caller (the tokenizer
// tracks it alongside the BeforeClosingTagName/BeforeSpecialEnd states
// since, unlike the open-tag match set, there is exactly one candidate
// once special != None).
func closeStep(name string, depth int, lc byte, terminator bool) closeResult {
	if depth < len(name) {
		if name[depth] == lc {
			return closeMatching
		}
		return closeNoMatch
	}
	if terminator {
		return closeMatched
	}
	return closeNoMatch
}
