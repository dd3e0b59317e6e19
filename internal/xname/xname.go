// Package xname reads an XML Name token off an intermediate stream. It is
// shared by the reference expander (the Name in "%Name;"/"&Name;") and the
// declaration scanner (element, attribute, and notation names, enumeration
// members and keywords; entity names, which may embed "%pe;", are read by
// the scanner's own readNameExpandPE), so
// both components agree on exactly what counts as a Name without either
// importing the other.
package xname

import (
	"strings"

	"github.com/adobrowolski/dtdtok/internal/xmlchar"
	"github.com/adobrowolski/dtdtok/internal/xstream"
)

// Read consumes an XML Name from st starting at its current position and
// returns it. ok is false (and nothing is consumed) if the current
// character cannot start a Name.
func Read(st *xstream.Stream) (name string, ok bool) {
	if !xmlchar.IsNameStart(st.Current()) {
		return "", false
	}
	var b strings.Builder
	b.WriteRune(st.Current())
	for {
		r := st.Next()
		if !xmlchar.IsName(r) {
			break
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

// ReadNmtoken consumes an XML Nmtoken: unlike a Name, any Name-continuation
// character (including a leading digit or '-') may start it. Used for
// enumerated attribute values and NOTATION enumeration members, which the
// XML grammar defines as Nmtoken, not Name.
func ReadNmtoken(st *xstream.Stream) (token string, ok bool) {
	if !xmlchar.IsName(st.Current()) {
		return "", false
	}
	var b strings.Builder
	b.WriteRune(st.Current())
	for {
		r := st.Next()
		if !xmlchar.IsName(r) {
			break
		}
		b.WriteRune(r)
	}
	return b.String(), true
}
