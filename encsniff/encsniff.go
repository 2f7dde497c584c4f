// Package encsniff detects a document's character encoding from a BOM
// and transcodes it to UTF-8, after the pattern of parserctx.go's
// detectEncoding/switchEncoding pair in the teacher's DOM parser. The
// encoding declaration of an XML prolog is not read: input without a
// BOM is treated as UTF-8.
// It is deliberately kept outside the tokenizer package: per the
// Non-goals this module carries forward, encoding detection is never
// invoked implicitly by Tokenizer, which always expects UTF-8 bytes.
// Callers who need charset sniffing run it once over the lead bytes of
// a document before handing the result to Tokenizer.Write.
package encsniff

import (
	"bytes"
	"errors"

	"github.com/lestrrat-go/htmltok/encoding"
)

var (
	patUTF8      = []byte{0xEF, 0xBB, 0xBF}
	patUTF16BE2B = []byte{0xFE, 0xFF}
	patUTF16LE2B = []byte{0xFF, 0xFE}
	patMaybeXML  = []byte{0x3C, 0x3F, 0x78, 0x6D} // "<?xm"
)

// ErrUnsupportedEncoding is returned by Decode when the encoding package
// doesn't recognize the charset name.
var ErrUnsupportedEncoding = errors.New("encsniff: unsupported encoding")

// Sniff inspects the leading bytes of b for a byte-order mark, falling
// back to "utf-8" (the only charset a bare "<?xm" 4-byte prefix can
// mean, per the XML recommendation's auto-detection table). It returns
// the charset name and the number of leading bytes that are the BOM
// itself (0 if none was found).
func Sniff(b []byte) (charset string, bomLen int) {
	if len(b) >= 3 && bytes.Equal(b[:3], patUTF8) {
		return "utf-8", 3
	}
	if len(b) >= 2 && bytes.Equal(b[:2], patUTF16BE2B) {
		return "utf-16be", 2
	}
	if len(b) >= 2 && bytes.Equal(b[:2], patUTF16LE2B) {
		return "utf-16le", 2
	}
	if len(b) >= 4 && bytes.Equal(b[:4], patMaybeXML) {
		return "utf-8", 0
	}
	return "utf-8", 0
}

// Decode transcodes b from the named charset to UTF-8. An empty
// charset is treated as "utf-8" (a no-op decode).
func Decode(b []byte, charset string) ([]byte, error) {
	if charset == "" {
		charset = "utf-8"
	}
	enc := encoding.Load(charset)
	if enc == nil {
		return nil, ErrUnsupportedEncoding
	}
	return enc.NewDecoder().Bytes(b)
}

// SniffAndDecode combines Sniff and Decode: it detects the charset from
// a BOM (stripping it) or defaults to UTF-8, then transcodes the
// remainder to UTF-8 bytes ready for Tokenizer.Write.
func SniffAndDecode(b []byte) ([]byte, string, error) {
	charset, bomLen := Sniff(b)
	decoded, err := Decode(b[bomLen:], charset)
	if err != nil {
		return nil, charset, err
	}
	return decoded, charset, nil
}
