// Package xref implements the Reference Expander (spec.md §4.2, Component
// B): resolving %name; parameter-entity references and &name;/&#N;/&#xH;
// general-entity references against the container, splicing their
// replacement text into the intermediate stream.
//
// The teacher (DTDX) has no entity-reference syntax at all, so there is no
// file to adapt here; this package is original to this repository. It is
// grounded on the teacher's AcceptRun-style name-scanning idiom (reused via
// internal/xname) for reading the Name in a reference, and on
// moznion-helium's esc_* literal tables (dump.go) for the numeric
// character reference validation range (delegated to xmlchar.IsValidCharRef,
// the Go-side equivalent of moznion-helium's isInCharacterRange).
package xref

import (
	"strconv"
	"strings"

	"github.com/adobrowolski/dtdtok/internal/container"
	"github.com/adobrowolski/dtdtok/internal/errs"
	"github.com/adobrowolski/dtdtok/internal/xmlchar"
	"github.com/adobrowolski/dtdtok/internal/xname"
	"github.com/adobrowolski/dtdtok/internal/xstream"
)

// ExpandParameter resolves a "%Name;" reference. st must be positioned at
// the character immediately after '%'. Reads the Name, requires a trailing
// ';'.
//
//   - If use is true and the name is registered, the matched "%Name;" span
//     is spliced out of the stream and replaced with the entity's
//     replacement text (stream.Push semantics).
//   - If use is true and the name is not registered, returns a fatal
//     errs.PEReferenceInvalid.
//   - If use is false, the reference is not expanded: the literal text
//     "%Name;" (exactly as consumed) is appended to acc instead. This
//     supports entity-declaration value literals in the internal subset,
//     where PE references are not expanded (spec.md §4.2/§4.3.4).
func ExpandParameter(st *xstream.Stream, c container.Container, use bool, acc *strings.Builder) error {
	name, ok := xname.Read(st)
	if !ok {
		return errs.New(errs.PEReferenceInvalid, 0, "malformed parameter-entity reference: expected a name")
	}
	if st.Current() != ';' {
		return errs.New(errs.PEReferenceInvalid, 0, "parameter-entity reference %%%s missing terminating ';'", name)
	}
	st.Next() // consume ';'

	if !use {
		if acc != nil {
			acc.WriteString("%")
			acc.WriteString(name)
			acc.WriteString(";")
		}
		return nil
	}

	ent, found := c.GetParameter(name)
	if !found {
		return errs.New(errs.PEReferenceInvalid, 0, "parameter entity %q is not declared", name)
	}
	nameLen := len([]rune(name))
	st.Push(nameLen+2, ent.NodeValue())
	return nil
}

// ExpandGeneral resolves a "&Name;", "&#digits;", or "&#xhex;" reference.
// st must be positioned at the character immediately after '&'. Named
// references splice the container's registered replacement text; numeric
// references splice the UTF-encoded character for the given code point
// after validating it is a legal XML character. A missing name, digits or
// terminator, or an unknown name, is reported as a fatal
// errs.CharRefNotTerminated; a code point that does not parse or is not a
// legal XML character is reported as a fatal errs.CharRefInvalidCode.
func ExpandGeneral(st *xstream.Stream, c container.Container) error {
	if st.Current() == '#' {
		return expandNumeric(st)
	}
	name, ok := xname.Read(st)
	if !ok {
		return errs.New(errs.CharRefNotTerminated, 0, "malformed general-entity reference: expected a name")
	}
	if st.Current() != ';' {
		return errs.New(errs.CharRefNotTerminated, 0, "general-entity reference &%s missing terminating ';'", name)
	}
	st.Next() // consume ';'

	ent, found := c.GetEntity(name)
	if !found {
		return errs.New(errs.CharRefNotTerminated, 0, "general entity %q is not declared", name)
	}
	nameLen := len([]rune(name))
	st.Push(nameLen+2, ent.NodeValue())
	return nil
}

// expandNumeric handles "#digits;" or "#xhex;", with st positioned at '#'.
func expandNumeric(st *xstream.Stream) error {
	st.Next() // consume '#'

	hex := false
	if st.Current() == 'x' || st.Current() == 'X' {
		hex = true
		st.Next()
	}

	var digits strings.Builder
	for {
		r := st.Current()
		if hex {
			if !xmlchar.IsHex(r) {
				break
			}
		} else if !xmlchar.IsDigit(r) {
			break
		}
		digits.WriteRune(r)
		st.Next()
	}
	if digits.Len() == 0 {
		return errs.New(errs.CharRefNotTerminated, 0, "numeric character reference has no digits")
	}
	if st.Current() != ';' {
		return errs.New(errs.CharRefNotTerminated, 0, "numeric character reference &#%s missing terminating ';'", digits.String())
	}
	st.Next() // consume ';'

	base := 10
	if hex {
		base = 16
	}
	val, err := strconv.ParseInt(digits.String(), base, 32)
	if err != nil {
		return errs.New(errs.CharRefInvalidCode, 0, "invalid numeric character reference %q", digits.String())
	}
	r := rune(val)
	if !xmlchar.IsValidCharRef(r) {
		return errs.New(errs.CharRefInvalidCode, 0, "code point U+%X is not a legal XML character", val)
	}

	prefix := 2 // '&' '#'
	if hex {
		prefix++ // 'x'
	}
	remove := prefix + digits.Len() + 1 // + ';'
	st.Push(remove, string(r))
	return nil
}
