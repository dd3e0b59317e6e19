// Package container defines the entity/parameter table collaborator (spec.md
// §6, "external interfaces / consumed") and ships Map, an in-memory
// reference implementation used by tests and the example CLI. The real
// container is an out-of-scope external collaborator (it is typically owned
// by the higher-level DTD builder), but the tokenizer needs something
// concrete to read %name;/&name; replacement text from.
//
// Grounded on moznion-helium's Document.GetEntity / GetParameterEntity pair
// (tree.go's TreeBuilder.GetEntity / GetParameterEntity callers), which
// resolve a general or parameter entity by name against a document-owned
// table the same way spec.md's Container does.
package container

// Entity exposes the replacement text the reference expander splices into
// the stream in place of a %name; or &name; reference.
type Entity interface {
	NodeValue() string
}

// Container is the read-only entity/parameter table the tokenizer consults.
// Concurrent mutation by another party while a Tokenizer is running is
// undefined, per spec.md §5.
type Container interface {
	GetParameter(name string) (Entity, bool)
	GetEntity(name string) (Entity, bool)
}

// Value is the simplest possible Entity: a literal replacement string.
type Value string

// NodeValue implements Entity.
func (v Value) NodeValue() string { return string(v) }

// Map is an in-memory Container backed by two name->Entity tables, one for
// parameter entities and one for general entities (the two namespaces are
// disjoint in XML: "%x;" and "&x;" may name unrelated entities).
type Map struct {
	Parameters map[string]Entity
	Entities   map[string]Entity
}

// NewMap returns an empty Map ready for use.
func NewMap() *Map {
	return &Map{
		Parameters: map[string]Entity{},
		Entities:   map[string]Entity{},
	}
}

// GetParameter implements Container.
func (m *Map) GetParameter(name string) (Entity, bool) {
	e, ok := m.Parameters[name]
	return e, ok
}

// GetEntity implements Container.
func (m *Map) GetEntity(name string) (Entity, bool) {
	e, ok := m.Entities[name]
	return e, ok
}

// SetParameter registers a parameter entity's replacement text, for tests
// and the example CLI that pre-seed a container before tokenizing.
func (m *Map) SetParameter(name, value string) {
	m.Parameters[name] = Value(value)
}

// SetEntity registers a general entity's replacement text.
func (m *Map) SetEntity(name, value string) {
	m.Entities[name] = Value(value)
}
