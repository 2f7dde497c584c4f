package htmltok

import "unicode/utf8"

// asciiLower lowercases ASCII letters only; tag and entity names in this
// tokenizer are always ASCII, so a full unicode.ToLower is unnecessary
// and, per SPEC_FULL.md §3, no ecosystem package in the
// retrieval pack does plain ASCII case-folding without dragging in
// identifier-style (camel/snake) conversions that don't fit here --
// see DESIGN.md's note on xstrings.
func asciiLower(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

func isAsciiAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isAsciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAsciiHex(c byte) bool {
	return isAsciiDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// lookupLegacyPrefix implements the longest-prefix legacy entity scan
// from §4.3: try prefixes of length min(6, available) down to 2 against
// legacyNamedEntities, returning the longest match found.
func lookupLegacyPrefix(name string) (value string, matchedLen int) {
	max := legacyPrefixMaxLen
	if len(name) < max {
		max = len(name)
	}
	for n := max; n >= legacyPrefixMinLen; n-- {
		if v, ok := legacyNamedEntities[name[:n]]; ok {
			return v, n
		}
	}
	return "", 0
}

// decodeCodePoint applies the HTML5 "numeric character reference end
// state" replacement table: C1 controls 0x80-0x9F are remapped to
// Windows-1252, NUL, surrogate halves and code points beyond Unicode's
// range become U+FFFD, and everything else passes through unchanged, matching
// the reference decode_code_point helper named (but not redefined) by
// §4.3 of the design notes this module implements.
func decodeCodePoint(cp int64) rune {
	switch {
	case cp == 0:
		return 0xFFFD
	case cp > 0x10FFFF:
		return 0xFFFD
	case cp >= 0xD800 && cp <= 0xDFFF:
		return 0xFFFD
	case cp >= 0x80 && cp <= 0x9F:
		return win1252Remap[cp-0x80]
	default:
		r := rune(cp)
		if !utf8.ValidRune(r) {
			return 0xFFFD
		}
		return r
	}
}
