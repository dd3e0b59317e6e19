package dtdtoken

// AttrTypeKind tags an AttrType. Adapted from the teacher's Attribute.Type
// (attribute.go), which is a bare string; spec.md needs a real sum type
// distinguishing CDATA, the tokenized types, and enumerations (which carry
// a name list and an is-notation flag the teacher's flat string cannot
// express at all).
type AttrTypeKind int

const (
	StringType AttrTypeKind = iota // CDATA
	Tokenized                      // ID, IDREF, IDREFS, ENTITY, ENTITIES, NMTOKEN, NMTOKENS
	Enumerated                     // (a|b|c) or NOTATION (a|b|c)
)

// TokenizedKind distinguishes the Tokenized AttrTypeKind's concrete keyword.
type TokenizedKind int

const (
	ID TokenizedKind = iota
	IDRef
	IDRefs
	EntityType
	Entities
	NMToken
	NMTokens
)

// AttrType is the type half of an AttrDecl.
type AttrType struct {
	Kind       AttrTypeKind
	Tokenized  TokenizedKind // meaningful when Kind == Tokenized
	IsNotation bool          // meaningful when Kind == Enumerated
	Names      []string      // meaningful when Kind == Enumerated
}

// DefaultKind tags an AttrDefault. Adapted from the teacher's Occur
// (attribute.go), which is a 3-value string enum with no payload; spec.md's
// Custom/#FIXED case needs to carry the literal default value too, which
// Occur has no field for.
type DefaultKind int

const (
	Required DefaultKind = iota
	Implied
	Custom
)

// AttrDefault is the default-value half of an AttrDecl.
type AttrDefault struct {
	Kind    DefaultKind
	Value   string // meaningful when Kind == Custom
	IsFixed bool   // meaningful when Kind == Custom: #FIXED vs. a bare default
}

// AttrDecl is one attribute definition inside an AttListDecl (spec.md §3).
// Adapted from the teacher's Attribute (attribute.go): same Name/Type/
// default shape, generalized as described above.
type AttrDecl struct {
	Name    string
	Type    AttrType
	Default AttrDefault
}
