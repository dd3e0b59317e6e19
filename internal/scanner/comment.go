package scanner

import (
	"strings"

	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
	"github.com/adobrowolski/dtdtok/internal/errs"
	"github.com/adobrowolski/dtdtok/internal/source"
)

// scanComment reads a Comment body, with "!--" already consumed (spec.md
// §4.3.2). "--" may not appear inside a comment except as its closing
// "-->", per the Comment production; a bare "--" not immediately followed
// by '>' is a fatal CommentEndedUnexpected.
func (s *Scanner) scanComment() (dtdtoken.Token, error) {
	var b strings.Builder
	for {
		r := s.st.Current()
		switch {
		case r == source.EOF:
			return dtdtoken.Token{}, errs.New(errs.UnexpectedEOF, s.st.Pos(), "unterminated comment")
		case r == '-' && s.st.ContinuesWith("--"):
			s.st.Advance(2)
			if s.st.Current() != '>' {
				return dtdtoken.Token{}, errs.New(errs.CommentEndedUnexpected, s.st.Pos(), "'--' is not immediately followed by '>' in a comment")
			}
			s.st.Next()
			return dtdtoken.Token{Kind: dtdtoken.KindComment, Data: b.String()}, nil
		case r == 0:
			s.emitRecoverable(errs.NullChar, "NUL character replaced with U+FFFD in comment")
			b.WriteRune('�')
			s.st.Next()
		default:
			b.WriteRune(r)
			s.st.Next()
		}
	}
}
