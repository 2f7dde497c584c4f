package htmltok

// Handler is the interface a tokenizer drives as it recognizes lexical
// events, mirroring the shape of the teacher's sax.Handler interface
// (one method per event, no return value needed here since malformed
// input is never a lexical error -- see errors.go and §7 of the design
// this module implements).
type Handler interface {
	OnText(s string)
	OnOpenTagName(s string)
	OnOpenTagEnd()
	OnSelfClosingTag()
	OnCloseTag(s string)
	OnAttribName(s string)
	OnAttribData(s string)
	OnAttribEnd()
	OnComment(s string)
	OnCDATA(s string)
	OnDeclaration(s string)
	OnProcessingInstruction(s string)
	OnError(err error, st state)
	OnEnd()
}

// Callbacks is a struct-of-optional-function-fields adapter for Handler,
// the direct analogue of the teacher's sax.SAX2 next to sax.Handler:
// callers who only care about two or three events can populate just
// those fields instead of implementing the full interface. The zero
// value is a valid Handler that silently discards every event.
type Callbacks struct {
	OnTextFunc                  func(s string)
	OnOpenTagNameFunc           func(s string)
	OnOpenTagEndFunc            func()
	OnSelfClosingTagFunc        func()
	OnCloseTagFunc              func(s string)
	OnAttribNameFunc            func(s string)
	OnAttribDataFunc            func(s string)
	OnAttribEndFunc             func()
	OnCommentFunc               func(s string)
	OnCDATAFunc                 func(s string)
	OnDeclarationFunc           func(s string)
	OnProcessingInstructionFunc func(s string)
	OnErrorFunc                 func(err error, st state)
	OnEndFunc                   func()
}

func (c *Callbacks) OnText(s string) {
	if f := c.OnTextFunc; f != nil {
		f(s)
	}
}

func (c *Callbacks) OnOpenTagName(s string) {
	if f := c.OnOpenTagNameFunc; f != nil {
		f(s)
	}
}

func (c *Callbacks) OnOpenTagEnd() {
	if f := c.OnOpenTagEndFunc; f != nil {
		f()
	}
}

func (c *Callbacks) OnSelfClosingTag() {
	if f := c.OnSelfClosingTagFunc; f != nil {
		f()
	}
}

func (c *Callbacks) OnCloseTag(s string) {
	if f := c.OnCloseTagFunc; f != nil {
		f(s)
	}
}

func (c *Callbacks) OnAttribName(s string) {
	if f := c.OnAttribNameFunc; f != nil {
		f(s)
	}
}

func (c *Callbacks) OnAttribData(s string) {
	if f := c.OnAttribDataFunc; f != nil {
		f(s)
	}
}

func (c *Callbacks) OnAttribEnd() {
	if f := c.OnAttribEndFunc; f != nil {
		f()
	}
}

func (c *Callbacks) OnComment(s string) {
	if f := c.OnCommentFunc; f != nil {
		f(s)
	}
}

func (c *Callbacks) OnCDATA(s string) {
	if f := c.OnCDATAFunc; f != nil {
		f(s)
	}
}

func (c *Callbacks) OnDeclaration(s string) {
	if f := c.OnDeclarationFunc; f != nil {
		f(s)
	}
}

func (c *Callbacks) OnProcessingInstruction(s string) {
	if f := c.OnProcessingInstructionFunc; f != nil {
		f(s)
	}
}

func (c *Callbacks) OnError(err error, st state) {
	if f := c.OnErrorFunc; f != nil {
		f(err, st)
	}
}

func (c *Callbacks) OnEnd() {
	if f := c.OnEndFunc; f != nil {
		f()
	}
}

var _ Handler = (*Callbacks)(nil)
