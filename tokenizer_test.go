package htmltok

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder implements Handler by formatting every event into a line of
// text, the same approach sax_test.go's newEventEmitter uses to turn a
// callback stream into a comparable log.
type recorder struct {
	events []string
}

func (r *recorder) log(format string, args ...interface{}) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) OnText(s string)                  { r.log("text(%q)", s) }
func (r *recorder) OnOpenTagName(s string)            { r.log("opentagname(%q)", s) }
func (r *recorder) OnOpenTagEnd()                     { r.log("opentagend()") }
func (r *recorder) OnSelfClosingTag()                 { r.log("selfclosingtag()") }
func (r *recorder) OnCloseTag(s string)               { r.log("closetag(%q)", s) }
func (r *recorder) OnAttribName(s string)             { r.log("attribname(%q)", s) }
func (r *recorder) OnAttribData(s string)             { r.log("attribdata(%q)", s) }
func (r *recorder) OnAttribEnd()                      { r.log("attribend()") }
func (r *recorder) OnComment(s string)                { r.log("comment(%q)", s) }
func (r *recorder) OnCDATA(s string)                  { r.log("cdata(%q)", s) }
func (r *recorder) OnDeclaration(s string)            { r.log("declaration(%q)", s) }
func (r *recorder) OnProcessingInstruction(s string)  { r.log("pi(%q)", s) }
func (r *recorder) OnError(err error, st state)       { r.log("error(%s, %s)", err, st) }
func (r *recorder) OnEnd()                            { r.log("end()") }

var _ Handler = (*recorder)(nil)

func TestEndToEndScenarios(t *testing.T) {
	testcases := []struct {
		name     string
		input    string
		opts     []TokenizerOption
		expected []string
	}{
		{
			name:  "simple open/close tag with attribute",
			input: `<p class="x">hi</p>`,
			expected: []string{
				`opentagname("p")`,
				`attribname("class")`,
				`attribdata("x")`,
				`attribend()`,
				`opentagend()`,
				`text("hi")`,
				`closetag("p")`,
				`end()`,
			},
		},
		{
			name:  "named entity in text",
			input: `a&amp;b`,
			opts:  []TokenizerOption{WithDecodeEntities(true)},
			expected: []string{
				`text("a")`,
				`text("&")`,
				`text("b")`,
				`end()`,
			},
		},
		{
			name:  "script body is opaque",
			input: `<script>let x = 1 < 2;</script>`,
			expected: []string{
				`opentagname("script")`,
				`opentagend()`,
				`text("let x = 1 < 2;")`,
				`closetag("script")`,
				`end()`,
			},
		},
		{
			name:  "comment with trailing dash",
			input: `<!--x--->`,
			expected: []string{
				`comment("x-")`,
				`end()`,
			},
		},
		{
			name:  "multiple attribute flavors",
			input: `<x a b=1 c='y' d="z"/>`,
			expected: []string{
				`opentagname("x")`,
				`attribname("a")`,
				`attribend()`,
				`attribname("b")`,
				`attribdata("1")`,
				`attribend()`,
				`attribname("c")`,
				`attribdata("y")`,
				`attribend()`,
				`attribname("d")`,
				`attribdata("z")`,
				`attribend()`,
				`selfclosingtag()`,
				`end()`,
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			tok := New(rec, tc.opts...)
			require.NoError(t, tok.Write([]byte(tc.input)))
			require.NoError(t, tok.End(nil))
			assert.Equal(t, tc.expected, rec.events)
		})
	}
}

func TestChunkBoundaryInvariance(t *testing.T) {
	input := `<div>x</div>`
	rec := &recorder{}
	tok := New(rec, WithSpecialTags("div"))
	require.NoError(t, tok.Write([]byte("<di")))
	require.NoError(t, tok.Write([]byte("v>x</div>")))
	require.NoError(t, tok.End(nil))

	want := []string{
		`opentagname("div")`,
		`opentagend()`,
		`text("x")`,
		`closetag("div")`,
		`end()`,
	}
	assert.Equal(t, want, rec.events)

	// Re-run the same input as a single chunk; the event stream must
	// be identical regardless of how the bytes were split.
	rec2 := &recorder{}
	tok2 := New(rec2, WithSpecialTags("div"))
	require.NoError(t, tok2.Write([]byte(input)))
	require.NoError(t, tok2.End(nil))
	assert.Equal(t, rec.events, rec2.events)

	// Split at every possible byte boundary.
	for i := 1; i < len(input); i++ {
		recN := &recorder{}
		tokN := New(recN, WithSpecialTags("div"))
		require.NoError(t, tokN.Write([]byte(input[:i])))
		require.NoError(t, tokN.Write([]byte(input[i:])))
		require.NoError(t, tokN.End(nil))
		assert.Equal(t, rec.events, recN.events, "split at byte %d", i)
	}
}

func TestBoundaryBehaviour(t *testing.T) {
	t.Run("empty comment", func(t *testing.T) {
		rec := &recorder{}
		tok := New(rec)
		require.NoError(t, tok.Write([]byte(`<!---->`)))
		require.NoError(t, tok.End(nil))
		assert.Equal(t, []string{`comment("")`, `end()`}, rec.events)
	})

	t.Run("cdata with trailing bracket", func(t *testing.T) {
		rec := &recorder{}
		tok := New(rec)
		require.NoError(t, tok.Write([]byte(`<![CDATA[]]]>`)))
		require.NoError(t, tok.End(nil))
		assert.Equal(t, []string{`cdata("]")`, `end()`}, rec.events)
	})

	t.Run("unterminated named entity decodes legacy in text", func(t *testing.T) {
		rec := &recorder{}
		tok := New(rec, WithDecodeEntities(true))
		require.NoError(t, tok.Write([]byte(`&ampfoo`)))
		require.NoError(t, tok.End(nil))
		// "amp" is a legacy (semicolon-less) match; "foo" remains literal.
		assert.Equal(t, []string{`text("&")`, `text("foo")`, `end()`}, rec.events)
	})

	t.Run("unterminated named entity passes through unchanged in xml mode", func(t *testing.T) {
		rec := &recorder{}
		tok := New(rec, WithXMLMode(true), WithDecodeEntities(true))
		require.NoError(t, tok.Write([]byte(`&amp`)))
		require.NoError(t, tok.End(nil))
		assert.Equal(t, []string{`text("&amp")`, `end()`}, rec.events)
	})

	t.Run("decimal and hex numeric references", func(t *testing.T) {
		rec := &recorder{}
		tok := New(rec, WithDecodeEntities(true))
		require.NoError(t, tok.Write([]byte(`&#65;&#x41;`)))
		require.NoError(t, tok.End(nil))
		assert.Equal(t, []string{`text("A")`, `text("A")`, `end()`}, rec.events)
	})

	t.Run("closing tag name mismatch inside script stays literal", func(t *testing.T) {
		rec := &recorder{}
		tok := New(rec)
		require.NoError(t, tok.Write([]byte(`<script></scriptx></script>`)))
		require.NoError(t, tok.End(nil))
		assert.Equal(t, []string{
			`opentagname("script")`,
			`opentagend()`,
			`text("</scriptx>")`,
			`closetag("script")`,
			`end()`,
		}, rec.events)
	})
}

func TestResetYieldsFreshStream(t *testing.T) {
	input := `<a href="x">hi</a>`

	rec1 := &recorder{}
	tok := New(rec1)
	require.NoError(t, tok.Write([]byte(input)))
	require.NoError(t, tok.End(nil))

	tok.Reset()
	rec2 := &recorder{}
	tok.h = rec2 // swap the sink directly; Reset does not touch it
	require.NoError(t, tok.Write([]byte(input)))
	require.NoError(t, tok.End(nil))

	assert.Equal(t, rec1.events, rec2.events)
}

func TestPauseResume(t *testing.T) {
	rec := &recorder{}
	tok := New(rec)
	require.NoError(t, tok.Write([]byte(`<p>hello`)))
	// A Write boundary always flushes pending Text (§4.4), so "hello"
	// is already visible before Pause is ever consulted.
	assert.Contains(t, rec.events, `text("hello")`)

	tok.Pause()
	require.NoError(t, tok.End([]byte(` world</p>`)))
	// Nothing queued by End should run until Resume, since End only
	// finalises immediately when the running flag is set.
	assert.NotContains(t, rec.events, `end()`)
	assert.NotContains(t, rec.events, `text(" world")`)

	tok.Resume()
	assert.Contains(t, rec.events, `end()`)
	assert.Contains(t, rec.events, `text(" world")`)
}

func TestWriteAfterEndReportsError(t *testing.T) {
	rec := &recorder{}
	tok := New(rec)
	require.NoError(t, tok.End(nil))
	err := tok.Write([]byte("more"))
	require.Error(t, err)
	assert.Contains(t, rec.events[len(rec.events)-1], "error(")
}

func TestAbsoluteIndexIsMonotonic(t *testing.T) {
	rec := &recorder{}
	tok := New(rec)
	last := -1
	for _, chunk := range []string{"<p>", "hello ", "world</p>"} {
		require.NoError(t, tok.Write([]byte(chunk)))
		idx := tok.AbsoluteIndex()
		assert.GreaterOrEqual(t, idx, last)
		last = idx
	}
	require.NoError(t, tok.End(nil))
}
