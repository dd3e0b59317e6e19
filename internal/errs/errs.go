// Package errs implements the tokenizer's two-tier error taxonomy: fatal
// errors that abort a parse and recoverable errors that are reported to a
// sink while scanning continues. Grounded on the teacher's Lex.Errorf,
// which also carries a formatted message back to its caller through the
// token channel, generalized here to a typed Code so callers can
// errors.Is/As instead of string-matching the message.
package errs

import "fmt"

// Code identifies an error kind from spec.md §7.
type Code int

const (
	// Fatal codes: surfaced as the error return of Tokenizer.Get.
	DTDInvalid Code = iota
	NameInvalid
	DeclInvalid
	TypeInvalid
	TypeContent
	EntityInvalid
	AttListInvalid
	PEReferenceInvalid
	InvalidPI
	LtInAttributeValue
	CommentEndedUnexpected
	CharRefNotTerminated
	CharRefInvalidCode
	UnexpectedEOF

	// Recoverable codes: delivered to the error sink, scanning continues.
	NullChar
	InvalidCharacter
	InputUnexpected
	TagClosedWrong
	UndefinedMarkupDeclaration
	NotationPublicInvalid
	NotationSystemInvalid
	QuantifierMissing
	RecoverableEOF
)

var names = map[Code]string{
	DTDInvalid:                 "DtdInvalid",
	NameInvalid:                "DtdNameInvalid",
	DeclInvalid:                "DtdDeclInvalid",
	TypeInvalid:                "DtdTypeInvalid",
	TypeContent:                "DtdTypeContent",
	EntityInvalid:              "DtdEntityInvalid",
	AttListInvalid:             "DtdAttListInvalid",
	PEReferenceInvalid:         "DtdPEReferenceInvalid",
	InvalidPI:                  "XmlInvalidPI",
	LtInAttributeValue:         "XmlLtInAttributeValue",
	CommentEndedUnexpected:     "CommentEndedUnexpected",
	CharRefNotTerminated:       "CharacterReferenceNotTerminated",
	CharRefInvalidCode:         "CharacterReferenceInvalidCode",
	UnexpectedEOF:              "EOF",
	NullChar:                   "NULL",
	InvalidCharacter:           "InvalidCharacter",
	InputUnexpected:            "InputUnexpected",
	TagClosedWrong:             "TagClosedWrong",
	UndefinedMarkupDeclaration: "UndefinedMarkupDeclaration",
	NotationPublicInvalid:      "NotationPublicInvalid",
	NotationSystemInvalid:      "NotationSystemInvalid",
	QuantifierMissing:          "QuantifierMissing",
	RecoverableEOF:             "EOF",
}

func (c Code) String() string {
	if s, ok := names[c]; ok {
		return s
	}
	return fmt.Sprintf("errs.Code(%d)", int(c))
}

// Fatal reports whether c belongs to the fatal tier (aborts the parse) as
// opposed to the recoverable tier (reported, parsing continues).
func (c Code) Fatal() bool {
	return c < NullChar
}

// Error is the concrete error value delivered for every fatal or
// recoverable condition. Pos is the diagnostic position (see
// xstream.Stream.Pos) at which the scanner detected the error, used by
// callers that want to report a line/column; errors raised inside the
// reference expander (internal/xref) carry Pos 0.
type Error struct {
	Code    Code
	Message string
	Pos     int
}

// New builds an Error with a formatted message.
func New(code Code, pos int, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d: %s", e.Code, e.Pos, e.Message)
}

// Is makes errors.Is match two *Error values by Code alone, letting callers
// write errors.Is(err, errs.Sentinel(errs.DTDInvalid)) style checks.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel builds a code-only Error usable as an errors.Is comparison
// target, e.g. errors.Is(err, errs.Sentinel(errs.DTDInvalid)).
func Sentinel(code Code) *Error {
	return &Error{Code: code}
}
