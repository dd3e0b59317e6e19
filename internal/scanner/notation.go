package scanner

import (
	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
	"github.com/adobrowolski/dtdtok/internal/errs"
)

// scanNotationDecl reads a NotationDecl, with "!NOTATION" and its separator
// already consumed: a name followed by either a SYSTEM external identifier
// or a PUBLIC identifier with an optional system identifier (spec.md
// §4.3.6 — NOTATION is the only declaration where PUBLIC's system
// identifier is itself optional).
func (s *Scanner) scanNotationDecl() (dtdtoken.Token, error) {
	name, err := s.requireName("expected a name after NOTATION")
	if err != nil {
		return dtdtoken.Token{}, err
	}
	if err := s.skipSpaceAndPE(); err != nil {
		return dtdtoken.Token{}, err
	}

	tok := dtdtoken.Token{Kind: dtdtoken.KindNotationDecl, Name: name}
	switch {
	case s.matchKeyword("SYSTEM"):
		sysID, err := s.readSystemLiteral()
		if err != nil {
			return dtdtoken.Token{}, err
		}
		tok.SystemID = &sysID
	case s.matchKeyword("PUBLIC"):
		pubID, err := s.readPubidLiteral()
		if err != nil {
			return dtdtoken.Token{}, err
		}
		tok.PublicID = &pubID
		if err := s.skipSpaceAndPE(); err != nil {
			return dtdtoken.Token{}, err
		}
		if s.st.Current() == '"' || s.st.Current() == '\'' {
			sysID, err := s.readSystemLiteral()
			if err != nil {
				return dtdtoken.Token{}, err
			}
			tok.SystemID = &sysID
		}
	default:
		return dtdtoken.Token{}, errs.New(errs.DeclInvalid, s.st.Pos(), "expected SYSTEM or PUBLIC in NOTATION declaration %q", name)
	}

	if err := s.closeDecl(); err != nil {
		return dtdtoken.Token{}, err
	}
	return tok, nil
}
