package scanner

import (
	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
	"github.com/adobrowolski/dtdtok/internal/errs"
	"github.com/adobrowolski/dtdtok/internal/source"
)

// scanConditionalSection reads the INCLUDE/IGNORE keyword and opening '['
// of a conditional section, with "<![" already consumed (spec.md §4.3.3).
//
// INCLUDE sections are transparent: includeDepth is incremented and
// scanning simply continues, so every declaration inside one is read and
// emitted exactly as if the section markers weren't there; the closing
// "]]>" is recognized by the top-level dispatch loop's handleCloseBracket
// once includeDepth > 0.
//
// IGNORE sections are opaque: their entire content, including any nested
// conditional sections, is discarded character-by-character by
// skipIgnoreSection without being scanned as declarations at all, exactly
// as the XML 1.0 production for ignoreSectContents requires.
func (s *Scanner) scanConditionalSection() (dtdtoken.Token, error) {
	s.skipJustSpace()
	switch {
	case s.st.ContinuesWith("INCLUDE"):
		s.st.Advance(len("INCLUDE"))
		s.skipJustSpace()
		if s.st.Current() != '[' {
			return dtdtoken.Token{}, errs.New(errs.DTDInvalid, s.st.Pos(), "expected '[' after INCLUDE")
		}
		s.st.Next()
		s.includeDepth++
		return s.Get()
	case s.st.ContinuesWith("IGNORE"):
		s.st.Advance(len("IGNORE"))
		s.skipJustSpace()
		if s.st.Current() != '[' {
			return dtdtoken.Token{}, errs.New(errs.DTDInvalid, s.st.Pos(), "expected '[' after IGNORE")
		}
		s.st.Next()
		if err := s.skipIgnoreSection(); err != nil {
			return dtdtoken.Token{}, err
		}
		return s.Get()
	default:
		return dtdtoken.Token{}, errs.New(errs.DTDInvalid, s.st.Pos(), "expected INCLUDE or IGNORE after '<!['")
	}
}

// skipIgnoreSection discards characters up to the "]]>" that matches the
// "<![" already consumed by the caller, tracking nested "<![...]]>" pairs
// so an IGNORE section containing another conditional section (INCLUDE or
// IGNORE, its keyword irrelevant since none of it is scanned) closes at the
// right "]]>" rather than the first one found.
func (s *Scanner) skipIgnoreSection() error {
	nesting := 0
	for {
		switch {
		case s.st.Current() == source.EOF:
			return errs.New(errs.UnexpectedEOF, s.st.Pos(), "unterminated IGNORE section")
		case s.st.ContinuesWith("<!["):
			nesting++
			s.st.Advance(3)
		case s.st.ContinuesWith("]]>"):
			s.st.Advance(3)
			if nesting == 0 {
				return nil
			}
			nesting--
		default:
			s.st.Next()
		}
	}
}
