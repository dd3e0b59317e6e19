package scanner

import (
	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
	"github.com/adobrowolski/dtdtok/internal/errs"
	"github.com/adobrowolski/dtdtok/internal/source"
	"github.com/adobrowolski/dtdtok/internal/xname"
)

// scanAttListDecl reads an AttListDecl: an element name followed by zero or
// more attribute definitions, with "!ATTLIST" and its separator already
// consumed (spec.md §4.3.5).
func (s *Scanner) scanAttListDecl() (dtdtoken.Token, error) {
	name, err := s.requireName("expected an element name after ATTLIST")
	if err != nil {
		return dtdtoken.Token{}, err
	}
	tok := dtdtoken.Token{Kind: dtdtoken.KindAttListDecl, Name: name}

	for {
		if err := s.skipSpaceAndPE(); err != nil {
			return dtdtoken.Token{}, err
		}
		switch s.st.Current() {
		case '>':
			s.st.Next()
			return tok, nil
		case source.EOF:
			return dtdtoken.Token{}, errs.New(errs.UnexpectedEOF, s.st.Pos(), "unterminated ATTLIST declaration")
		}
		attr, err := s.scanAttrDef()
		if err != nil {
			return dtdtoken.Token{}, err
		}
		tok.Attributes = append(tok.Attributes, attr)
	}
}

// scanAttrDef reads one AttDef: Name, AttType, DefaultDecl.
func (s *Scanner) scanAttrDef() (dtdtoken.AttrDecl, error) {
	name, err := s.requireName("expected an attribute name")
	if err != nil {
		return dtdtoken.AttrDecl{}, err
	}
	if err := s.skipSpaceAndPE(); err != nil {
		return dtdtoken.AttrDecl{}, err
	}
	typ, err := s.scanAttrType()
	if err != nil {
		return dtdtoken.AttrDecl{}, err
	}
	if err := s.skipSpaceAndPE(); err != nil {
		return dtdtoken.AttrDecl{}, err
	}
	def, err := s.scanAttrDefault()
	if err != nil {
		return dtdtoken.AttrDecl{}, err
	}
	return dtdtoken.AttrDecl{Name: name, Type: typ, Default: def}, nil
}

// scanAttrType reads an AttType: a bare keyword (CDATA, ID, IDREF,
// IDREFS, ENTITY, ENTITIES, NMTOKEN, NMTOKENS), an enumeration
// "(a|b|c)", or "NOTATION (a|b|c)".
func (s *Scanner) scanAttrType() (dtdtoken.AttrType, error) {
	if s.st.Current() == '(' {
		s.st.Next()
		names, err := s.scanNameEnumeration()
		if err != nil {
			return dtdtoken.AttrType{}, err
		}
		return dtdtoken.AttrType{Kind: dtdtoken.Enumerated, Names: names}, nil
	}

	kw, ok := xname.ReadNmtoken(s.st)
	if !ok {
		return dtdtoken.AttrType{}, errs.New(errs.TypeInvalid, s.st.Pos(), "expected an attribute type")
	}
	switch kw {
	case "CDATA":
		return dtdtoken.AttrType{Kind: dtdtoken.StringType}, nil
	case "ID":
		return dtdtoken.AttrType{Kind: dtdtoken.Tokenized, Tokenized: dtdtoken.ID}, nil
	case "IDREF":
		return dtdtoken.AttrType{Kind: dtdtoken.Tokenized, Tokenized: dtdtoken.IDRef}, nil
	case "IDREFS":
		return dtdtoken.AttrType{Kind: dtdtoken.Tokenized, Tokenized: dtdtoken.IDRefs}, nil
	case "ENTITY":
		return dtdtoken.AttrType{Kind: dtdtoken.Tokenized, Tokenized: dtdtoken.EntityType}, nil
	case "ENTITIES":
		return dtdtoken.AttrType{Kind: dtdtoken.Tokenized, Tokenized: dtdtoken.Entities}, nil
	case "NMTOKEN":
		return dtdtoken.AttrType{Kind: dtdtoken.Tokenized, Tokenized: dtdtoken.NMToken}, nil
	case "NMTOKENS":
		return dtdtoken.AttrType{Kind: dtdtoken.Tokenized, Tokenized: dtdtoken.NMTokens}, nil
	case "NOTATION":
		if err := s.skipSpaceAndPE(); err != nil {
			return dtdtoken.AttrType{}, err
		}
		if s.st.Current() != '(' {
			return dtdtoken.AttrType{}, errs.New(errs.TypeInvalid, s.st.Pos(), "expected '(' after NOTATION")
		}
		s.st.Next()
		names, err := s.scanNameEnumeration()
		if err != nil {
			return dtdtoken.AttrType{}, err
		}
		return dtdtoken.AttrType{Kind: dtdtoken.Enumerated, IsNotation: true, Names: names}, nil
	default:
		return dtdtoken.AttrType{}, errs.New(errs.TypeInvalid, s.st.Pos(), "unknown attribute type %q", kw)
	}
}

// scanNameEnumeration reads the "Name (| Name)*)" tail of an enumeration or
// NOTATION type, with the opening '(' already consumed.
func (s *Scanner) scanNameEnumeration() ([]string, error) {
	var names []string
	for {
		if err := s.skipSpaceAndPE(); err != nil {
			return nil, err
		}
		n, ok := xname.ReadNmtoken(s.st)
		if !ok {
			return nil, errs.New(errs.TypeInvalid, s.st.Pos(), "expected a name in enumeration")
		}
		names = append(names, n)
		if err := s.skipSpaceAndPE(); err != nil {
			return nil, err
		}
		switch s.st.Current() {
		case '|':
			s.st.Next()
		case ')':
			s.st.Next()
			return names, nil
		default:
			return nil, errs.New(errs.TypeInvalid, s.st.Pos(), "expected '|' or ')' in enumeration")
		}
	}
}

// scanAttrDefault reads a DefaultDecl: #REQUIRED, #IMPLIED, #FIXED value,
// or a bare default value.
func (s *Scanner) scanAttrDefault() (dtdtoken.AttrDefault, error) {
	if s.st.Current() != '#' {
		val, err := s.readAttValueLiteral()
		if err != nil {
			return dtdtoken.AttrDefault{}, err
		}
		return dtdtoken.AttrDefault{Kind: dtdtoken.Custom, Value: val}, nil
	}

	s.st.Next()
	kw, ok := xname.ReadNmtoken(s.st)
	if !ok {
		return dtdtoken.AttrDefault{}, errs.New(errs.DeclInvalid, s.st.Pos(), "expected REQUIRED, IMPLIED, or FIXED after '#'")
	}
	switch kw {
	case "REQUIRED":
		return dtdtoken.AttrDefault{Kind: dtdtoken.Required}, nil
	case "IMPLIED":
		return dtdtoken.AttrDefault{Kind: dtdtoken.Implied}, nil
	case "FIXED":
		if err := s.skipSpaceAndPE(); err != nil {
			return dtdtoken.AttrDefault{}, err
		}
		val, err := s.readAttValueLiteral()
		if err != nil {
			return dtdtoken.AttrDefault{}, err
		}
		return dtdtoken.AttrDefault{Kind: dtdtoken.Custom, Value: val, IsFixed: true}, nil
	default:
		return dtdtoken.AttrDefault{}, errs.New(errs.DeclInvalid, s.st.Pos(), "unknown default-value keyword #%s", kw)
	}
}
