package htmltok

import "github.com/lestrrat-go/option"

// Option is a single configuration value applied by New. The identifier
// types below follow the teacher's v2/options.go convention of hiding
// option identities behind unexported marker structs so that
// option.New/option.Interface can compare them without exporting a
// string-keyed map.
type Option = option.Interface

type identXMLMode struct{}
type identDecodeEntities struct{}
type identSpecialTags struct{}

// TokenizerOption is the marker interface implemented by every option
// value accepted by New, mirroring the teacher's ParseOption /
// DocumentOption split (here there is only one option family, so only
// one marker is needed).
type TokenizerOption interface {
	Option
	tokenizerOption()
}

type tokenizerOption struct{ Option }

func (*tokenizerOption) tokenizerOption() {}

// WithXMLMode selects XML semantics: the XML named-entity map only,
// strict CDATA, no legacy (semicolon-less) entity lookups, and no
// special-tag opaque-content handling.
func WithXMLMode(v bool) TokenizerOption {
	return &tokenizerOption{option.New(identXMLMode{}, v)}
}

// WithDecodeEntities turns on named/numeric/hex character reference
// decoding in Text and attribute-value states.
func WithDecodeEntities(v bool) TokenizerOption {
	return &tokenizerOption{option.New(identDecodeEntities{}, v)}
}

// WithSpecialTags adds tag names (length >= 2) whose contents are
// treated as opaque text up to a matching close tag. "script" and
// "style" are always included regardless of this option.
func WithSpecialTags(names ...string) TokenizerOption {
	return &tokenizerOption{option.New(identSpecialTags{}, names)}
}

// options holds the resolved, validated configuration for a Tokenizer.
type options struct {
	xmlMode         bool
	decodeEntities  bool
	specialTagNames []string
}

var mandatorySpecialTags = []string{"script", "style"}

func resolveOptions(opts []TokenizerOption) options {
	var o options
	for _, opt := range opts {
		switch opt.Ident() {
		case identXMLMode{}:
			o.xmlMode = opt.Value().(bool)
		case identDecodeEntities{}:
			o.decodeEntities = opt.Value().(bool)
		case identSpecialTags{}:
			o.specialTagNames = append(o.specialTagNames, opt.Value().([]string)...)
		}
	}

	seen := make(map[string]bool)
	var names []string
	add := func(n string) {
		n = asciiLower(n)
		if len(n) < 2 || seen[n] {
			return
		}
		seen[n] = true
		names = append(names, n)
	}
	for _, n := range mandatorySpecialTags {
		add(n)
	}
	if !o.xmlMode {
		for _, n := range o.specialTagNames {
			add(n)
		}
	}
	o.specialTagNames = names
	return o
}
