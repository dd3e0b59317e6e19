package scanner

import (
	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
	"github.com/adobrowolski/dtdtok/internal/errs"
	"github.com/adobrowolski/dtdtok/internal/xmlchar"
)

// scanEntityDecl reads an EntityDecl, with "!ENTITY" and its mandatory
// separating whitespace already consumed (spec.md §4.3.4). The optional
// '%' flag marks a parameter-entity declaration; the value is either a
// quoted EntityValue or an external identifier (SYSTEM or PUBLIC), which
// may be followed by an NDATA notation that is attached only to a general,
// non-parameter entity.
func (s *Scanner) scanEntityDecl() (dtdtoken.Token, error) {
	isParam := false
	if s.st.Current() == '%' {
		// A lone "%" followed by whitespace is the parameter-entity flag.
		// A "%" immediately followed by more name characters (or another
		// "%pe;") is the start of an embedded parameter-entity reference
		// inside the entity's own Name (spec.md §4.3.4) and is left for
		// readNameExpandPE to resolve.
		s.st.Next()
		if xmlchar.IsSpace(s.st.Current()) {
			isParam = true
			s.skipJustSpace()
		} else {
			s.st.Previous()
		}
	}

	name, err := s.readNameExpandPE()
	if err != nil {
		return dtdtoken.Token{}, err
	}
	if !xmlchar.IsSpace(s.st.Current()) {
		return dtdtoken.Token{}, errs.New(errs.EntityInvalid, s.st.Pos(), "expected whitespace after entity name %q", name)
	}
	if err := s.skipSpaceAndPE(); err != nil {
		return dtdtoken.Token{}, err
	}

	tok := dtdtoken.Token{Kind: dtdtoken.KindEntityDecl, Name: name, IsParameter: isParam}

	switch {
	case s.st.Current() == '"' || s.st.Current() == '\'':
		val, err := s.readEntityValueLiteral()
		if err != nil {
			return dtdtoken.Token{}, err
		}
		tok.Value = &val
	case s.matchKeyword("SYSTEM"):
		tok.IsExtern = true
		sysID, err := s.readSystemLiteral()
		if err != nil {
			return dtdtoken.Token{}, err
		}
		tok.SystemID = &sysID
		if err := s.maybeReadNDATA(&tok, isParam); err != nil {
			return dtdtoken.Token{}, err
		}
	case s.matchKeyword("PUBLIC"):
		tok.IsExtern = true
		pubID, err := s.readPubidLiteral()
		if err != nil {
			return dtdtoken.Token{}, err
		}
		tok.PublicID = &pubID
		if err := s.skipSpaceAndPE(); err != nil {
			return dtdtoken.Token{}, err
		}
		sysID, err := s.readSystemLiteral()
		if err != nil {
			return dtdtoken.Token{}, err
		}
		tok.SystemID = &sysID
		if err := s.maybeReadNDATA(&tok, isParam); err != nil {
			return dtdtoken.Token{}, err
		}
	default:
		return dtdtoken.Token{}, errs.New(errs.EntityInvalid, s.st.Pos(), "expected a quoted value, SYSTEM, or PUBLIC in entity declaration %q", name)
	}

	if err := s.closeDecl(); err != nil {
		return dtdtoken.Token{}, err
	}
	return tok, nil
}

// maybeReadNDATA reads an optional "NDATA Name" suffix on an external
// entity declaration. NDATA names an unparsed entity's notation and is
// only meaningful on a general entity; on a parameter entity it is a
// well-formedness violation spec.md treats as recoverable, so the notation
// name is still consumed (to keep the stream in sync) but not attached.
func (s *Scanner) maybeReadNDATA(tok *dtdtoken.Token, isParam bool) error {
	if err := s.skipSpaceAndPE(); err != nil {
		return err
	}
	if !s.st.ContinuesWith("NDATA") {
		return nil
	}
	if isParam {
		s.emitRecoverable(errs.UndefinedMarkupDeclaration, "NDATA is not allowed on a parameter entity declaration")
	}
	s.st.Advance(len("NDATA"))
	if !xmlchar.IsSpace(s.st.Current()) {
		return errs.New(errs.EntityInvalid, s.st.Pos(), "expected whitespace after NDATA")
	}
	if err := s.skipSpaceAndPE(); err != nil {
		return err
	}
	notation, err := s.requireName("expected a notation name after NDATA")
	if err != nil {
		return err
	}
	if !isParam {
		tok.ExternNotation = &notation
	}
	return nil
}
