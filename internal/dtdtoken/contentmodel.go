package dtdtoken

import "strings"

// ModelKind tags a ContentModel node. Adapted from the teacher's modelType
// (element.go): generalized from DTDX's 6-case model (which includes an
// "all" (&) connector XML DTD content models do not support) to spec.md's
// 5-case model, and added Mixed, which DTDX's grammar (no #PCDATA notion)
// has no equivalent for at all.
type ModelKind int

const (
	Any ModelKind = iota
	Empty
	Mixed
	Name
	Sequence
	Choice
)

// ContentModel is the recursive content-model tree for an ElementDecl
// (spec.md §3). Exactly one of the kind-specific fields is meaningful for a
// given Kind:
//
//   - Any, Empty: no payload.
//   - Mixed: Names (possibly empty), Quantifier.
//   - Name: NameValue, Quantifier.
//   - Sequence, Choice: Children, Quantifier.
type ContentModel struct {
	Kind       ModelKind
	Names      []string       // Mixed
	NameValue  string         // Name
	Children   []*ContentModel // Sequence, Choice
	Quantifier Quantifier
}

// NewAny returns the Any leaf.
func NewAny() *ContentModel { return &ContentModel{Kind: Any} }

// NewEmpty returns the Empty leaf.
func NewEmpty() *ContentModel { return &ContentModel{Kind: Empty} }

// NewMixed returns a Mixed node. q must be One when names is empty (bare
// "(#PCDATA)") and ZeroOrMore when names is non-empty, per spec.md's
// invariant that a Mixed model with names requires a trailing '*'.
func NewMixed(names []string, q Quantifier) *ContentModel {
	return &ContentModel{Kind: Mixed, Names: names, Quantifier: q}
}

// NewName returns a Name leaf referencing a child element type.
func NewName(name string, q Quantifier) *ContentModel {
	return &ContentModel{Kind: Name, NameValue: name, Quantifier: q}
}

// NewSequence returns a Sequence node (','-joined children).
func NewSequence(children []*ContentModel, q Quantifier) *ContentModel {
	return &ContentModel{Kind: Sequence, Children: children, Quantifier: q}
}

// NewChoice returns a Choice node ('|'-joined children).
func NewChoice(children []*ContentModel, q Quantifier) *ContentModel {
	return &ContentModel{Kind: Choice, Children: children, Quantifier: q}
}

// String renders the content model back to DTD syntax, adapted from the
// teacher's ContentModel.String()/baseString (element.go): generalized to
// the 5-case model and to render Mixed as "(#PCDATA|a|b)*".
func (c *ContentModel) String() string {
	if c == nil {
		return "EMPTY"
	}
	return c.base() + c.Quantifier.String()
}

func (c *ContentModel) base() string {
	switch c.Kind {
	case Any:
		return "ANY"
	case Empty:
		return "EMPTY"
	case Mixed:
		if len(c.Names) == 0 {
			return "(#PCDATA)"
		}
		var b strings.Builder
		b.WriteString("(#PCDATA")
		for _, n := range c.Names {
			b.WriteString("|")
			b.WriteString(n)
		}
		b.WriteString(")")
		return b.String()
	case Name:
		return c.NameValue
	case Sequence, Choice:
		sep := ","
		if c.Kind == Choice {
			sep = "|"
		}
		var b strings.Builder
		b.WriteString("(")
		for i, child := range c.Children {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(child.String())
		}
		b.WriteString(")")
		return b.String()
	}
	return "EMPTY"
}
