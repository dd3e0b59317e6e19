package scanner

import (
	"strings"

	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
	"github.com/adobrowolski/dtdtok/internal/errs"
	"github.com/adobrowolski/dtdtok/internal/source"
	"github.com/adobrowolski/dtdtok/internal/xmlchar"
	"github.com/adobrowolski/dtdtok/internal/xname"
)

// scanPIOrTextDecl reads a PI target and, if it is "xml" in the external
// subset, hands off to scanTextDecl instead (spec.md §4.3.1: a text
// declaration is syntactically a processing instruction whose target is
// the reserved name "xml", legal only at the start of an external entity).
// "<?" has already been consumed.
func (s *Scanner) scanPIOrTextDecl() (dtdtoken.Token, error) {
	target, ok := xname.Read(s.st)
	if !ok {
		return dtdtoken.Token{}, errs.New(errs.InvalidPI, s.st.Pos(), "expected a processing-instruction target")
	}
	if s.isExternal && strings.EqualFold(target, "xml") {
		return s.scanTextDecl()
	}

	if s.st.ContinuesWith("?>") {
		s.st.Advance(2)
		return dtdtoken.Token{Kind: dtdtoken.KindProcessingInstruction, Target: target}, nil
	}
	if !xmlchar.IsSpace(s.st.Current()) {
		return dtdtoken.Token{}, errs.New(errs.InvalidPI, s.st.Pos(), "expected whitespace after processing-instruction target %q", target)
	}
	s.skipJustSpace()

	var b strings.Builder
	for {
		r := s.st.Current()
		switch {
		case r == source.EOF:
			return dtdtoken.Token{}, errs.New(errs.UnexpectedEOF, s.st.Pos(), "unterminated processing instruction")
		case r == '?' && s.st.ContinuesWith("?>"):
			s.st.Advance(2)
			return dtdtoken.Token{Kind: dtdtoken.KindProcessingInstruction, Target: target, Content: b.String()}, nil
		default:
			b.WriteRune(r)
			s.st.Next()
		}
	}
}

// scanTextDecl reads a TextDecl's optional VersionInfo and EncodingDecl
// pseudo-attributes, with the "xml" target already consumed. Neither PE
// expansion nor general-entity expansion applies inside these
// pseudo-attribute values (spec.md's grammar table lists them as a fixed,
// closed vocabulary, not EntityValue/AttValue literals).
func (s *Scanner) scanTextDecl() (dtdtoken.Token, error) {
	var version, encoding *string

	s.skipJustSpace()
	if s.st.ContinuesWith("version") {
		v, err := s.readPseudoAttr("version", isVersionChar)
		if err != nil {
			return dtdtoken.Token{}, err
		}
		version = &v
		s.skipJustSpace()
	}
	if s.st.ContinuesWith("encoding") {
		e, err := s.readPseudoAttr("encoding", isEncodingChar)
		if err != nil {
			return dtdtoken.Token{}, err
		}
		encoding = &e
		s.skipJustSpace()
	} else {
		// EncodingDecl is mandatory in a text declaration; VersionInfo is
		// not. A missing encoding is recoverable rather than fatal since
		// every other field is still well-formed.
		s.emitRecoverable(errs.InputUnexpected, "text declaration is missing its required encoding")
	}
	if !s.st.ContinuesWith("?>") {
		return dtdtoken.Token{}, errs.New(errs.InvalidPI, s.st.Pos(), "text declaration missing '?>' terminator")
	}
	s.st.Advance(2)
	return dtdtoken.Token{Kind: dtdtoken.KindTextDecl, Version: version, Encoding: encoding}, nil
}

func isVersionChar(r rune) bool {
	return xmlchar.IsDigit(r) || r == '.'
}

func isEncodingChar(r rune) bool {
	return xmlchar.IsAlphanumericASCII(r) || r == '.' || r == '_' || r == '-'
}

// readPseudoAttr reads `name = "value"` (or with single quotes), validating
// every value character against allowed.
func (s *Scanner) readPseudoAttr(name string, allowed func(rune) bool) (string, error) {
	s.st.Advance(len([]rune(name)))
	s.skipJustSpace()
	if s.st.Current() != '=' {
		return "", errs.New(errs.InvalidPI, s.st.Pos(), "expected '=' after %q", name)
	}
	s.st.Next()
	s.skipJustSpace()
	quote := s.st.Current()
	if quote != '"' && quote != '\'' {
		return "", errs.New(errs.InvalidPI, s.st.Pos(), "expected a quoted value for %q", name)
	}
	s.st.Next()

	var b strings.Builder
	for {
		r := s.st.Current()
		switch {
		case r == quote:
			s.st.Next()
			return b.String(), nil
		case r == source.EOF:
			return "", errs.New(errs.UnexpectedEOF, s.st.Pos(), "unterminated %q value", name)
		case !allowed(r):
			return "", errs.New(errs.InvalidPI, s.st.Pos(), "invalid character %q in %s", r, name)
		default:
			b.WriteRune(r)
			s.st.Next()
		}
	}
}
