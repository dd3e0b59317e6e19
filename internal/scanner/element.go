package scanner

import (
	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
	"github.com/adobrowolski/dtdtok/internal/errs"
)

// scanElementDecl reads an ElementDecl: a name followed by a content-model
// specification, with "!ELEMENT" and its separator already consumed
// (spec.md §4.3.7).
func (s *Scanner) scanElementDecl() (dtdtoken.Token, error) {
	name, err := s.requireName("expected an element name")
	if err != nil {
		return dtdtoken.Token{}, err
	}
	if err := s.skipSpaceAndPE(); err != nil {
		return dtdtoken.Token{}, err
	}
	model, err := s.scanContentModel()
	if err != nil {
		return dtdtoken.Token{}, err
	}
	if err := s.closeDecl(); err != nil {
		return dtdtoken.Token{}, err
	}
	return dtdtoken.Token{Kind: dtdtoken.KindElementDecl, Name: name, Entry: model}, nil
}

// scanContentModel reads EMPTY, ANY, a Mixed ("(#PCDATA|...)*") model, or a
// children group.
func (s *Scanner) scanContentModel() (*dtdtoken.ContentModel, error) {
	switch {
	case s.st.ContinuesWith("EMPTY"):
		s.st.Advance(len("EMPTY"))
		return dtdtoken.NewEmpty(), nil
	case s.st.ContinuesWith("ANY"):
		s.st.Advance(len("ANY"))
		return dtdtoken.NewAny(), nil
	}
	if s.st.Current() != '(' {
		return nil, errs.New(errs.TypeContent, s.st.Pos(), "expected EMPTY, ANY, or a content-model group")
	}
	s.st.Next()
	if err := s.skipSpaceAndPE(); err != nil {
		return nil, err
	}
	if s.st.ContinuesWith("#PCDATA") {
		return s.scanMixedContent()
	}
	return s.scanChildrenGroup()
}

// scanMixedContent reads a Mixed model's tail, with its opening "(" already
// consumed and "#PCDATA" confirmed but not yet consumed. A mixed model
// naming any element types must close with ")*"; per spec.md §7 a missing
// '*' is recoverable (QuantifierMissing), not fatal, so parsing continues
// as if ZeroOrMore had been written.
func (s *Scanner) scanMixedContent() (*dtdtoken.ContentModel, error) {
	s.st.Advance(len("#PCDATA"))
	var names []string
	seen := map[string]bool{}

	for {
		if err := s.skipSpaceAndPE(); err != nil {
			return nil, err
		}
		if s.st.Current() == ')' {
			s.st.Next()
			if len(names) == 0 {
				return dtdtoken.NewMixed(nil, dtdtoken.One), nil
			}
			if s.st.Current() == '*' {
				s.st.Next()
			} else {
				s.emitRecoverable(errs.QuantifierMissing, "mixed-content model naming elements requires a trailing '*'")
			}
			return dtdtoken.NewMixed(names, dtdtoken.ZeroOrMore), nil
		}
		if s.st.Current() != '|' {
			return nil, errs.New(errs.TypeContent, s.st.Pos(), "expected '|' or ')' in mixed-content model")
		}
		s.st.Next()
		if err := s.skipSpaceAndPE(); err != nil {
			return nil, err
		}
		n, err := s.requireName("expected an element name in mixed-content model")
		if err != nil {
			return nil, err
		}
		if seen[n] {
			return nil, errs.New(errs.TypeContent, s.st.Pos(), "duplicate element name %q in mixed-content model", n)
		}
		seen[n] = true
		names = append(names, n)
	}
}

// scanChildrenGroup reads a children-content group's members and closing
// quantifier, with the opening "(" already consumed and the group already
// known not to be Mixed. Every connector at one nesting level must be the
// same character (all ',' or all '|'); mixing them is fatal, matching the
// XML 1.0 grammar's separate choice/seq productions.
func (s *Scanner) scanChildrenGroup() (*dtdtoken.ContentModel, error) {
	first, err := s.scanContentParticle()
	if err != nil {
		return nil, err
	}
	children := []*dtdtoken.ContentModel{first}

	if err := s.skipSpaceAndPE(); err != nil {
		return nil, err
	}
	var connector rune
	for {
		c := s.st.Current()
		if c == ')' {
			s.st.Next()
			break
		}
		if c != ',' && c != '|' {
			return nil, errs.New(errs.TypeContent, s.st.Pos(), "expected ',' or '|' in content-model group")
		}
		if connector == 0 {
			connector = c
		} else if c != connector {
			return nil, errs.New(errs.TypeContent, s.st.Pos(), "content-model group mixes ',' and '|' connectors")
		}
		s.st.Next()
		if err := s.skipSpaceAndPE(); err != nil {
			return nil, err
		}
		child, err := s.scanContentParticle()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		if err := s.skipSpaceAndPE(); err != nil {
			return nil, err
		}
	}

	q := s.scanOptionalQuantifier()
	if connector == '|' {
		return dtdtoken.NewChoice(children, q), nil
	}
	return dtdtoken.NewSequence(children, q), nil
}

// scanContentParticle reads one member of a children group: either a
// nested group or a single element Name, each with its own optional
// quantifier. "#PCDATA" is rejected here since it is only legal as a
// top-level content model.
func (s *Scanner) scanContentParticle() (*dtdtoken.ContentModel, error) {
	if s.st.Current() == '(' {
		s.st.Next()
		if err := s.skipSpaceAndPE(); err != nil {
			return nil, err
		}
		if s.st.ContinuesWith("#PCDATA") {
			return nil, errs.New(errs.TypeContent, s.st.Pos(), "#PCDATA is only allowed as the top-level content model")
		}
		return s.scanChildrenGroup()
	}
	name, err := s.requireName("expected an element name or '(' in content model")
	if err != nil {
		return nil, err
	}
	return dtdtoken.NewName(name, s.scanOptionalQuantifier()), nil
}

// scanOptionalQuantifier reads a trailing '?', '*', or '+', or returns One
// if none is present.
func (s *Scanner) scanOptionalQuantifier() dtdtoken.Quantifier {
	switch s.st.Current() {
	case '?':
		s.st.Next()
		return dtdtoken.ZeroOrOne
	case '*':
		s.st.Next()
		return dtdtoken.ZeroOrMore
	case '+':
		s.st.Next()
		return dtdtoken.OneOrMore
	default:
		return dtdtoken.One
	}
}
