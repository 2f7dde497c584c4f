// Command htmltok-dump feeds a document through htmltok.Tokenizer and
// prints the resulting event stream, one line per callback -- the
// tokenizer-level analogue of cmd/helium-lint's DumpDoc, grounded on
// that command's flag layout and stdin/file dispatch.
package main

import (
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/lestrrat-go/htmltok"
	"github.com/lestrrat-go/htmltok/encsniff"
	"github.com/lestrrat-go/htmltok/internal/diag"
)

type cmdopts struct {
	XML            bool   `long:"xml" description:"use XML mode instead of HTML"`
	DecodeEntities bool   `long:"decode-entities" description:"decode named/numeric character references"`
	SpecialTags    string `long:"special-tags" description:"comma-separated extra opaque-content tag names"`
	Sniff          bool   `long:"sniff" description:"detect and transcode the input encoding before tokenizing"`
	Version        bool   `long:"version" description:"display the version of htmltok used"`
}

func main() {
	os.Exit(_main())
}

func showUsage() {
	fmt.Fprintf(os.Stderr, `Usage: htmltok-dump [options] [file ...]

Tokenize the given files (or stdin) and print one line per lexical
event to stdout.

  --xml               use XML mode
  --decode-entities   decode named/numeric/hex character references
  --special-tags=a,b  additional opaque-content tag names
  --sniff             sniff and transcode the input encoding first
  --version           print the htmltok version
`)
}

func isStdinPipe() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

func _main() int {
	var opts cmdopts
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		fmt.Printf("htmltok-dump: using htmltok version %s\n", htmltok.Version)
		return 0
	}

	var readers []io.Reader
	var names []string
	switch {
	case len(args) > 0:
		for _, f := range args {
			fh, err := os.Open(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			defer fh.Close()
			readers = append(readers, fh)
			names = append(names, f)
		}
	case isStdinPipe():
		readers = append(readers, os.Stdin)
		names = append(names, "<stdin>")
	default:
		showUsage()
		return 1
	}

	var tokOpts []htmltok.TokenizerOption
	tokOpts = append(tokOpts, htmltok.WithXMLMode(opts.XML), htmltok.WithDecodeEntities(opts.DecodeEntities))
	if opts.SpecialTags != "" {
		tokOpts = append(tokOpts, htmltok.WithSpecialTags(splitComma(opts.SpecialTags)...))
	}

	for i, r := range readers {
		buf, err := io.ReadAll(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", names[i], err)
			return 1
		}
		if opts.Sniff {
			decoded, charset, err := encsniff.SniffAndDecode(buf)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", names[i], err)
				return 1
			}
			fmt.Fprintf(os.Stderr, "%s: detected charset %s\n", names[i], charset)
			buf = decoded
		}
		if err := dump(names[i], buf, tokOpts); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", names[i], err)
			return 1
		}
	}
	return 0
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func dump(name string, buf []byte, opts []htmltok.TokenizerOption) error {
	var lastErr error
	cb := &htmltok.Callbacks{
		OnTextFunc:                  func(s string) { fmt.Printf("text %q\n", s) },
		OnOpenTagNameFunc:           func(s string) { fmt.Printf("opentagname %q\n", s) },
		OnOpenTagEndFunc:            func() { fmt.Println("opentagend") },
		OnSelfClosingTagFunc:        func() { fmt.Println("selfclosingtag") },
		OnCloseTagFunc:              func(s string) { fmt.Printf("closetag %q\n", s) },
		OnAttribNameFunc:            func(s string) { fmt.Printf("attribname %q\n", s) },
		OnAttribDataFunc:            func(s string) { fmt.Printf("attribdata %q\n", s) },
		OnAttribEndFunc:             func() { fmt.Println("attribend") },
		OnCommentFunc:               func(s string) { fmt.Printf("comment %q\n", s) },
		OnCDATAFunc:                 func(s string) { fmt.Printf("cdata %q\n", s) },
		OnDeclarationFunc:           func(s string) { fmt.Printf("declaration %q\n", s) },
		OnProcessingInstructionFunc: func(s string) { fmt.Printf("pi %q\n", s) },
		OnEndFunc:                   func() { fmt.Println("end") },
	}
	cb.OnErrorFunc = func(err error, st htmltok.State) {
		lastErr = err
	}
	t := htmltok.New(cb, opts...)
	if err := t.Write(buf); err != nil {
		return err
	}
	if err := t.End(nil); err != nil {
		return err
	}
	if lastErr != nil {
		pos := diag.Locate(buf, t.AbsoluteIndex())
		return fmt.Errorf("%w at line %d, column %d\n%s", lastErr, pos.Line, pos.Column, diag.Snippet(buf, t.AbsoluteIndex()))
	}
	return nil
}
