package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKnownCharsets(t *testing.T) {
	names := []string{
		"utf8", "utf-8", "utf-16be", "utf-16le", "iso-8859-1", "windows1252",
		"euc-jp", "shift_jis", "big5", "euc-kr", "koi8r",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			assert.NotNil(t, Load(name), "Load(%q) returned nil", name)
		})
	}
}

func TestLoadUnknownCharsetReturnsNil(t *testing.T) {
	assert.Nil(t, Load("charset-nobody-wrote"))
}

func TestLoadIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Load("UTF-8"), Load("utf-8"))
}

// TestISO88591RoundTrip decodes every byte 0x00-0xFF through ISO-8859-1
// and re-encodes it, skipping 0x80-0x9F: the "iso-8859-1" label resolves
// to Windows1252, which assigns printable characters rather than the
// ISO-8859-1 C1 controls to most of that range.
func TestISO88591RoundTrip(t *testing.T) {
	e := Load("iso-8859-1")
	dec := e.NewDecoder()
	enc := e.NewEncoder()
	for i := 0; i <= 255; i++ {
		if i >= 0x80 && i <= 0x9f {
			continue
		}
		v := string([]byte{byte(i)})
		s, err := dec.String(v)
		require.NoError(t, err, "decode %#x", i)

		v1, err := enc.String(s)
		require.NoError(t, err, "encode %q back", s)
		assert.Equal(t, v, v1, "round trip for byte %#x", i)
	}
}
