package scanner

import (
	"strings"

	"github.com/adobrowolski/dtdtok/internal/errs"
	"github.com/adobrowolski/dtdtok/internal/source"
	"github.com/adobrowolski/dtdtok/internal/xmlchar"
	"github.com/adobrowolski/dtdtok/internal/xname"
	"github.com/adobrowolski/dtdtok/internal/xref"
)

// readSystemLiteral reads a SystemLiteral: a quoted string with no entity
// expansion and no character restriction beyond the Char production
// (spec.md's grammar table, SYSTEM/PUBLIC literal rows).
func (s *Scanner) readSystemLiteral() (string, error) {
	quote, err := s.openQuote("a quoted system identifier")
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		r := s.st.Current()
		switch r {
		case quote:
			s.st.Next()
			return b.String(), nil
		case source.EOF:
			return "", errs.New(errs.UnexpectedEOF, s.st.Pos(), "unterminated system identifier")
		case 0:
			s.emitRecoverable(errs.NullChar, "NUL character replaced with U+FFFD in system identifier")
			b.WriteRune('�')
			s.st.Next()
		default:
			b.WriteRune(r)
			s.st.Next()
		}
	}
}

// readPubidLiteral reads a PubidLiteral: a quoted string restricted to
// PubidChar, every violation reported as recoverable InvalidCharacter
// (spec.md §7) rather than aborting the parse.
func (s *Scanner) readPubidLiteral() (string, error) {
	quote, err := s.openQuote("a quoted public identifier")
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		r := s.st.Current()
		switch {
		case r == quote:
			s.st.Next()
			return b.String(), nil
		case r == source.EOF:
			return "", errs.New(errs.UnexpectedEOF, s.st.Pos(), "unterminated public identifier")
		default:
			if !xmlchar.IsPubidChar(r) {
				s.emitRecoverable(errs.InvalidCharacter, "character %q is not a legal PubidChar", r)
			}
			b.WriteRune(r)
			s.st.Next()
		}
	}
}

// readExpandedLiteral reads the shared EntityValue/AttValue literal grammar:
// a quoted string in which '%' introduces a parameter-entity reference
// (expanded only when peUse is true), '&' introduces a general-entity or
// numeric character reference (numeric references are always expanded;
// named references are copied through literally, to be resolved later
// against an element tree), and a literal NUL is replaced with U+FFFD
// (spec.md §4.3.4, §7). disallowLt makes a literal '<' a fatal
// LtInAttributeValue, for AttValue.
func (s *Scanner) readExpandedLiteral(peUse bool, disallowLt bool) (string, error) {
	quote, err := s.openQuote("a quoted value")
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		r := s.st.Current()
		switch {
		case r == quote:
			s.st.Next()
			return b.String(), nil
		case r == source.EOF:
			return "", errs.New(errs.UnexpectedEOF, s.st.Pos(), "unterminated literal")
		case r == '%':
			s.st.Next()
			if err := xref.ExpandParameter(s.st, s.c, peUse, &b); err != nil {
				return "", err
			}
		case r == '&':
			s.st.Next()
			if s.st.Current() == '#' {
				if err := xref.ExpandGeneral(s.st, s.c); err != nil {
					return "", err
				}
				// the expanded character now sits at Current(); take it as
				// ordinary text so a referenced quote, '%', '&' or '<' is
				// not re-read as markup.
				b.WriteRune(s.st.Current())
				s.st.Next()
			} else {
				name, ok := xname.Read(s.st)
				if !ok {
					return "", errs.New(errs.CharRefNotTerminated, s.st.Pos(), "malformed general-entity reference in literal")
				}
				if s.st.Current() != ';' {
					return "", errs.New(errs.CharRefNotTerminated, s.st.Pos(), "general-entity reference &%s missing ';'", name)
				}
				s.st.Next()
				b.WriteString("&")
				b.WriteString(name)
				b.WriteString(";")
			}
		case r == '<' && disallowLt:
			return "", errs.New(errs.LtInAttributeValue, s.st.Pos(), "'<' is not allowed in an attribute value")
		case r == 0:
			s.emitRecoverable(errs.NullChar, "NUL character replaced with U+FFFD in literal")
			b.WriteRune('�')
			s.st.Next()
		default:
			b.WriteRune(r)
			s.st.Next()
		}
	}
}

// readEntityValueLiteral reads an EntityValue. Parameter-entity references
// expand only in the external subset (spec.md §4.2: internal-subset entity
// values keep "%Name;" literal, since expanding it would let one entity
// declaration rewrite another's replacement text before either is used).
func (s *Scanner) readEntityValueLiteral() (string, error) {
	return s.readExpandedLiteral(s.isExternal, false)
}

// readAttValueLiteral reads a default AttValue, expanded by the same rule
// as an EntityValue but with a literal '<' forbidden.
func (s *Scanner) readAttValueLiteral() (string, error) {
	return s.readExpandedLiteral(s.isExternal, true)
}

// openQuote consumes and returns the opening quote character ('"' or '\''),
// or a DeclInvalid error naming what was expected.
func (s *Scanner) openQuote(expected string) (rune, error) {
	q := s.st.Current()
	if q != '"' && q != '\'' {
		return 0, errs.New(errs.DeclInvalid, s.st.Pos(), "expected %s", expected)
	}
	s.st.Next()
	return q, nil
}
