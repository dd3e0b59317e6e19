// Package xmlchar implements the XML 1.0 character-class predicates the
// scanner and reference expander need: whitespace, Name production,
// pubid characters, and the Char production used to validate numeric
// character references.
package xmlchar

import "unicode"

// IsSpace reports whether r is XML whitespace (S production): space, tab,
// CR, or LF.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// IsNameStart reports whether r may begin an XML Name: a letter, '_', or
// ':'. Combining marks and extenders are legal continuations but never
// starts.
func IsNameStart(r rune) bool {
	return r == '_' || r == ':' || IsLetter(r)
}

// IsName reports whether r may continue (but not necessarily start) an XML
// Name: NameStartChar plus digits, '-', '.', and combining marks.
func IsName(r rune) bool {
	if IsNameStart(r) || r == '-' || r == '.' || IsDigit(r) {
		return true
	}
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Pc, r) || r == 0xB7
}

// IsLetter reports whether r is an XML BaseChar or Ideographic, approximated
// with Unicode's letter categories (the teacher and moznion-helium both take
// this shortcut rather than hand-copying the XML 1.0 BaseChar production).
func IsLetter(r rune) bool {
	return unicode.IsLetter(r)
}

// IsDigit reports whether r is an ASCII or Unicode decimal digit.
func IsDigit(r rune) bool {
	return unicode.IsDigit(r)
}

// IsHex reports whether r is a hexadecimal digit (0-9, a-f, A-F).
func IsHex(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

// IsAlphanumericASCII reports whether r is an ASCII letter or digit, used by
// the text-declaration encoding-name grammar (letter, then alphanumerics,
// '.', '_', '-').
func IsAlphanumericASCII(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return false
}

// IsUppercaseASCII reports whether r is an ASCII uppercase letter (A-Z).
func IsUppercaseASCII(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// pubidPunct holds the non-alphanumeric characters legal in a PubidChar,
// per the glossary: -'()+,./:=?;!*#@$_%
const pubidPunct = "-'()+,./:=?;!*#@$_%"

// IsPubidChar reports whether r is a legal PubidChar: space, CR, LF,
// letters, digits, or one of pubidPunct.
func IsPubidChar(r rune) bool {
	switch r {
	case ' ', '\r', '\n':
		return true
	}
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
		return true
	}
	for _, p := range pubidPunct {
		if r == p {
			return true
		}
	}
	return false
}

// IsChar reports whether r is a legal XML 1.0 character (Char production):
// #x9 | #xA | #xD | [#x20-#xD7FF] | [#xE000-#xFFFD] | [#x10000-#x10FFFF].
func IsChar(r rune) bool {
	switch {
	case r == 0x9 || r == 0xA || r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// IsValidCharRef is an alias for IsChar: a numeric character reference
// &#N; or &#xH; is legal exactly when its resolved code point satisfies the
// Char production.
func IsValidCharRef(r rune) bool {
	return IsChar(r)
}
