package dtdtoken

// Quantifier is the occurrence suffix attached to a content-model node:
// '?' ZeroOrOne, '*' ZeroOrMore, '+' OneOrMore, or One (no suffix).
// Adapted from the teacher's multiplicity string type (element.go), changed
// from a bare string ("", "?", "*", "+") to a proper enum so content-model
// code can switch on it instead of string-comparing.
type Quantifier int

const (
	One Quantifier = iota
	ZeroOrOne
	ZeroOrMore
	OneOrMore
)

// String renders the quantifier's XML suffix, "" for One.
func (q Quantifier) String() string {
	switch q {
	case ZeroOrOne:
		return "?"
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	default:
		return ""
	}
}
