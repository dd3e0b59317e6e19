// Package dtdtok is the public façade for the DTD tokenizer (spec.md §6,
// "exposed" interfaces): a lazy sequence of declaration, processing
// instruction, comment, and text-declaration tokens pulled one at a time
// from a source.Cursor against a container.Container of already-known
// entities.
//
// No teacher equivalent exists for this shape: the teacher's
// parser.NewParser returns a single fully-built *Element tree from an
// io.Reader in one call, not a lazy Get()-by-Get() token sequence. This
// package is grounded on the interface spec.md §6 itself prescribes
// (Constructor(container, source), is_external, get(), content(), an error
// callback) and on the functional-options idiom observed in the wider pack
// for optional constructor parameters.
package dtdtok

import (
	"github.com/adobrowolski/dtdtok/internal/container"
	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
	"github.com/adobrowolski/dtdtok/internal/scanner"
	"github.com/adobrowolski/dtdtok/internal/source"
	"github.com/adobrowolski/dtdtok/internal/xstream"
)

// Token is the tokenizer's output type, re-exported so callers never need
// to import internal/dtdtoken directly.
type Token = dtdtoken.Token

// Kind re-exports dtdtoken.Kind for callers matching on Token.Kind.
type Kind = dtdtoken.Kind

// These mirror the dtdtoken.Kind constants, for callers that don't want an
// internal/dtdtoken import just to switch on a token's Kind.
const (
	KindEOF                   = dtdtoken.KindEOF
	KindProcessingInstruction = dtdtoken.KindProcessingInstruction
	KindTextDecl              = dtdtoken.KindTextDecl
	KindComment               = dtdtoken.KindComment
	KindEntityDecl            = dtdtoken.KindEntityDecl
	KindElementDecl           = dtdtoken.KindElementDecl
	KindAttListDecl           = dtdtoken.KindAttListDecl
	KindNotationDecl          = dtdtoken.KindNotationDecl
)

// Tokenizer reads one DTD subset (internal or external) as a lazy sequence
// of tokens. One Tokenizer owns one intermediate stream and must not be
// shared across goroutines (spec.md §5).
type Tokenizer struct {
	st         *xstream.Stream
	sc         *scanner.Scanner
	isExternal bool
}

// Option configures a Tokenizer at construction time.
type Option func(*config)

type config struct {
	isExternal bool
	errSink    func(error)
}

// WithExternalSubset overrides the default (true): pass false when
// tokenizing an internal DTD subset (the declarations inside a DOCTYPE's
// "[...]", which end at "]" rather than EOF and never permit conditional
// sections or PE expansion inside entity-value literals).
func WithExternalSubset(isExternal bool) Option {
	return func(c *config) { c.isExternal = isExternal }
}

// WithErrorSink registers a callback invoked for every recoverable error
// (spec.md §7) as scanning continues. Without this option, recoverable
// errors are silently discarded.
func WithErrorSink(sink func(error)) Option {
	return func(c *config) { c.errSink = sink }
}

// New builds a Tokenizer reading from src against the entities already
// registered in c. is_external defaults to true per spec.md §6.
func New(c container.Container, src source.Cursor, opts ...Option) *Tokenizer {
	cfg := config{isExternal: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	st := xstream.New(src)
	sc := scanner.New(st, c, cfg.isExternal, cfg.errSink)
	return &Tokenizer{st: st, sc: sc, isExternal: cfg.isExternal}
}

// Get returns the next token, or EOFToken once the subset is exhausted.
// A non-nil error is fatal (spec.md §7): the Tokenizer must not be reused
// afterward.
func (t *Tokenizer) Get() (Token, error) {
	return t.sc.Get()
}

// Content returns the unexpanded source text consumed so far: the original
// DTD text, unaffected by any entity-reference splice (spec.md §6, §8).
func (t *Tokenizer) Content() string {
	return t.st.Content()
}

// IsExternalSubset reports whether this Tokenizer was built for the
// external-subset grammar.
func (t *Tokenizer) IsExternalSubset() bool {
	return t.isExternal
}
