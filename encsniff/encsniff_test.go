package encsniff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniff(t *testing.T) {
	data := map[string]struct {
		input   []byte
		charset string
		bomLen  int
	}{
		"utf-8 bom":    {[]byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "utf-8", 3},
		"utf-16be bom": {[]byte{0xFE, 0xFF, 0x00, 'h'}, "utf-16be", 2},
		"utf-16le bom": {[]byte{0xFF, 0xFE, 'h', 0x00}, "utf-16le", 2},
		"xml prolog":   {[]byte(`<?xml version="1.0"?>`), "utf-8", 0},
		"no marker":    {[]byte("<html></html>"), "utf-8", 0},
	}
	for name, tc := range data {
		t.Run(name, func(t *testing.T) {
			charset, bomLen := Sniff(tc.input)
			assert.Equal(t, tc.charset, charset)
			assert.Equal(t, tc.bomLen, bomLen)
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Run("utf-8 is a no-op", func(t *testing.T) {
		out, err := Decode([]byte("hello"), "utf-8")
		require.NoError(t, err)
		assert.Equal(t, "hello", string(out))
	})

	t.Run("utf-16be decodes to utf-8", func(t *testing.T) {
		// "hi" as big-endian UTF-16 code units.
		out, err := Decode([]byte{0x00, 'h', 0x00, 'i'}, "utf-16be")
		require.NoError(t, err)
		assert.Equal(t, "hi", string(out))
	})

	t.Run("utf-16le decodes to utf-8", func(t *testing.T) {
		out, err := Decode([]byte{'h', 0x00, 'i', 0x00}, "utf-16le")
		require.NoError(t, err)
		assert.Equal(t, "hi", string(out))
	})

	t.Run("unknown charset is reported", func(t *testing.T) {
		_, err := Decode([]byte("hello"), "charset-nobody-wrote")
		assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	})
}

func TestSniffAndDecode(t *testing.T) {
	input := append([]byte{0xFE, 0xFF}, 0x00, 'h', 0x00, 'i')
	out, charset, err := SniffAndDecode(input)
	require.NoError(t, err)
	assert.Equal(t, "utf-16be", charset)
	assert.Equal(t, "hi", string(out))
}
