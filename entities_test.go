package htmltok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupLegacyPrefix(t *testing.T) {
	data := map[string]struct {
		value string
		n     int
	}{
		"amp;rest":  {"&", 3},
		"ampfoo":    {"&", 3},
		"copy":      {"©", 4},
		"nosuchent": {"", 0},
		"a":         {"", 0},
	}
	for name, want := range data {
		v, n := lookupLegacyPrefix(name)
		assert.Equal(t, want.value, v, "value for %q", name)
		assert.Equal(t, want.n, n, "matched length for %q", name)
	}
}

func TestDecodeCodePoint(t *testing.T) {
	data := map[int64]rune{
		0:       0xFFFD, // null is always replaced
		0x41:    'A',
		0x80:    0x20ac, // windows-1252 euro sign remap
		0x9F:    0x0178,
		0xD800:  0xFFFD, // surrogate half
		0x110000: 0xFFFD, // beyond Unicode's range
	}
	for cp, want := range data {
		assert.Equal(t, want, decodeCodePoint(cp), "code point %#x", cp)
	}
}

func TestSpecialMatcher(t *testing.T) {
	m := specialMatcher{names: []string{"script", "style"}}

	require := assert.New(t)
	require.True(m.startOpen('s'))

	outcome, _ := m.advanceOpen('c', false)
	require.Equal(openMatching, outcome)
	outcome, _ = m.advanceOpen('r', false)
	require.Equal(openMatching, outcome)
	outcome, _ = m.advanceOpen('i', false)
	require.Equal(openMatching, outcome)
	outcome, _ = m.advanceOpen('p', false)
	require.Equal(openMatching, outcome)
	outcome, _ = m.advanceOpen('t', false)
	require.Equal(openMatching, outcome)
	outcome, idx := m.advanceOpen('>', true)
	require.Equal(openMatched, outcome)
	require.Equal("script", m.names[idx])
}

func TestCloseStep(t *testing.T) {
	assert.Equal(t, closeMatching, closeStep("script", 0, 's', false))
	assert.Equal(t, closeNoMatch, closeStep("script", 0, 'x', false))
	assert.Equal(t, closeMatched, closeStep("script", 6, '>', true))
	assert.Equal(t, closeNoMatch, closeStep("script", 6, 'x', false))
}
