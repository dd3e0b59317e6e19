// Package scanner implements the Declaration Scanner (spec.md §4.3,
// Component C): the recursive-descent pass that reads one markup
// declaration, processing instruction, comment, or text declaration off an
// intermediate stream and produces a dtdtoken.Token.
//
// Grounded on the teacher's lexer/parser split (internal/lexer's
// state-function dispatch loop and internal/parser's recursive-descent
// Element/Attribute readers), generalized from DTDX's tag-and-attribute
// grammar to the DTD markup-declaration grammar: the top-level Get dispatch
// mirrors lexer.lexText's character-driven switch, and the per-declaration
// readers mirror parser.Parser's one-reader-per-construct shape, but every
// reader here is original to this repository since the teacher's grammar
// has no declarations, entities, or content models at all.
package scanner

import (
	"strings"

	"github.com/adobrowolski/dtdtok/internal/container"
	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
	"github.com/adobrowolski/dtdtok/internal/errs"
	"github.com/adobrowolski/dtdtok/internal/source"
	"github.com/adobrowolski/dtdtok/internal/xmlchar"
	"github.com/adobrowolski/dtdtok/internal/xname"
	"github.com/adobrowolski/dtdtok/internal/xref"
	"github.com/adobrowolski/dtdtok/internal/xstream"
	"github.com/adobrowolski/dtdtok/internal/xtrace"
)

// Scanner reads declarations off a stream until it reaches the end of the
// DTD subset it was built for.
type Scanner struct {
	st           *xstream.Stream
	c            container.Container
	isExternal   bool
	includeDepth int
	errSink      func(error)
}

// New builds a Scanner over st. isExternal selects the external-subset
// grammar (conditional sections legal, parameter entities expand inside
// entity values) versus the internal-subset grammar (spec.md §4.2/§4.3.3).
// errSink receives every recoverable error as scanning continues; a nil
// sink discards them.
func New(st *xstream.Stream, c container.Container, isExternal bool, errSink func(error)) *Scanner {
	if errSink == nil {
		errSink = func(error) {}
	}
	return &Scanner{st: st, c: c, isExternal: isExternal, errSink: errSink}
}

func (s *Scanner) emitRecoverable(code errs.Code, format string, args ...interface{}) {
	s.errSink(errs.New(code, s.st.Pos(), format, args...))
}

// Get reads and returns the next token: a processing instruction, a text
// declaration, a comment, one of the four declaration kinds, or EOFToken
// once the subset is exhausted. A fatal condition aborts with a non-nil
// error; the Scanner must not be reused after that.
func (s *Scanner) Get() (dtdtoken.Token, error) {
	defer xtrace.Enter("Scanner.Get").Leave()
	for {
		if err := s.skipSpaceAndPE(); err != nil {
			return dtdtoken.Token{}, err
		}
		c := s.st.Current()
		switch {
		case c == ']':
			tok, restart, err := s.handleCloseBracket()
			if err != nil {
				return dtdtoken.Token{}, err
			}
			if restart {
				continue
			}
			return tok, nil
		case c == source.EOF:
			if s.includeDepth > 0 {
				return dtdtoken.Token{}, errs.New(errs.UnexpectedEOF, s.st.Pos(), "unterminated conditional section")
			}
			return dtdtoken.EOFToken, nil
		case c == '<':
			return s.scanLt()
		default:
			return dtdtoken.Token{}, errs.New(errs.DTDInvalid, s.st.Pos(), "unexpected character %q outside a declaration", c)
		}
	}
}

// handleCloseBracket processes a ']' encountered at the top of the dispatch
// loop. restart tells Get to loop again (no token produced yet); otherwise
// tok/err is the call's result.
func (s *Scanner) handleCloseBracket() (tok dtdtoken.Token, restart bool, err error) {
	if s.includeDepth > 0 {
		if s.st.ContinuesWith("]]>") {
			s.st.Advance(3)
			s.includeDepth--
			return dtdtoken.Token{}, true, nil
		}
		s.emitRecoverable(errs.InputUnexpected, "unexpected ']' inside a conditional section")
		s.st.Next()
		return dtdtoken.Token{}, true, nil
	}
	if !s.isExternal {
		s.st.Next() // ']' closes the internal subset
		return dtdtoken.EOFToken, false, nil
	}
	return dtdtoken.Token{}, false, errs.New(errs.DTDInvalid, s.st.Pos(), "unexpected ']' outside a conditional section")
}

// scanLt dispatches on what follows a just-seen '<'.
func (s *Scanner) scanLt() (dtdtoken.Token, error) {
	s.st.Next() // consume '<'
	switch {
	case s.st.Current() == '?':
		s.st.Next()
		return s.scanPIOrTextDecl()
	case s.st.ContinuesWith("!--"):
		s.st.Advance(3)
		return s.scanComment()
	case s.isExternal && s.st.ContinuesWith("!["):
		s.st.Advance(2)
		return s.scanConditionalSection()
	case s.matchKeyword("!ENTITY"):
		return s.scanEntityDecl()
	case s.matchKeyword("!ELEMENT"):
		return s.scanElementDecl()
	case s.matchKeyword("!ATTLIST"):
		return s.scanAttListDecl()
	case s.matchKeyword("!NOTATION"):
		return s.scanNotationDecl()
	default:
		return dtdtoken.Token{}, errs.New(errs.DTDInvalid, s.st.Pos(), "unrecognized markup declaration")
	}
}

// matchKeyword reports whether the stream, at its current position,
// continues with kw followed by whitespace; on a match it consumes kw and
// all the whitespace after it, leaving the stream at the declaration's
// first real field. On a mismatch it consumes nothing.
func (s *Scanner) matchKeyword(kw string) bool {
	if !s.st.ContinuesWith(kw) {
		return false
	}
	runes := []rune(kw)
	s.st.Advance(len(runes))
	if !xmlchar.IsSpace(s.st.Current()) {
		for range runes {
			s.st.Previous()
		}
		return false
	}
	s.skipJustSpace()
	return true
}

// skipJustSpace consumes a run of XML whitespace with no parameter-entity
// expansion, for contexts (pseudo-attribute lists, keyword separators)
// where PE references are not legal.
func (s *Scanner) skipJustSpace() {
	for xmlchar.IsSpace(s.st.Current()) {
		s.st.Next()
	}
}

// skipSpaceAndPE consumes whitespace and transparently expands any
// parameter-entity reference it encounters (spec.md §4.2: "references to
// parameter entities are recognized anywhere in the DTD except in
// literals" — outside literals this holds in both the internal and
// external subset; only the entity-value/attribute-value literal readers
// gate expansion on the subset).
func (s *Scanner) skipSpaceAndPE() error {
	for {
		switch {
		case xmlchar.IsSpace(s.st.Current()):
			s.st.Next()
		case s.st.Current() == '%':
			s.st.Next()
			if err := xref.ExpandParameter(s.st, s.c, true, nil); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// skipToGT recovers from a malformed declaration by discarding characters
// up to (and including) the next '>', or EOF.
func (s *Scanner) skipToGT() {
	for {
		r := s.st.Current()
		if r == '>' {
			s.st.Next()
			return
		}
		if r == source.EOF {
			return
		}
		s.st.Next()
	}
}

// closeDecl consumes trailing whitespace and the declaration's terminating
// '>', recovering with skipToGT (and a recoverable error) if garbage
// precedes it.
func (s *Scanner) closeDecl() error {
	if err := s.skipSpaceAndPE(); err != nil {
		return err
	}
	if s.st.Current() == '>' {
		s.st.Next()
		return nil
	}
	s.emitRecoverable(errs.InputUnexpected, "expected '>' to close the declaration")
	s.skipToGT()
	return nil
}

// readNameExpandPE reads an entity Name, expanding any parameter-entity
// reference that appears inside it (spec.md §4.3.4: "% may appear inside
// the entity's own Name, each occurrence expanded before the name is
// assembled"). Plain element/attribute/notation names use xname.Read
// instead, since spec.md makes no such requirement for them.
func (s *Scanner) readNameExpandPE() (string, error) {
	for s.st.Current() == '%' {
		s.st.Next()
		if err := xref.ExpandParameter(s.st, s.c, true, nil); err != nil {
			return "", err
		}
	}
	if !xmlchar.IsNameStart(s.st.Current()) {
		return "", errs.New(errs.NameInvalid, s.st.Pos(), "expected a name")
	}
	var b strings.Builder
	for {
		for s.st.Current() == '%' {
			s.st.Next()
			if err := xref.ExpandParameter(s.st, s.c, true, nil); err != nil {
				return "", err
			}
		}
		r := s.st.Current()
		if !xmlchar.IsName(r) {
			break
		}
		b.WriteRune(r)
		s.st.Next()
	}
	return b.String(), nil
}

// requireName reads a plain XML Name (no PE expansion), raising NameInvalid
// with msg on failure.
func (s *Scanner) requireName(msg string) (string, error) {
	name, ok := xname.Read(s.st)
	if !ok {
		return "", errs.New(errs.NameInvalid, s.st.Pos(), "%s", msg)
	}
	return name, nil
}
