package dtdtoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
)

func TestKindStringNames(t *testing.T) {
	cases := map[dtdtoken.Kind]string{
		dtdtoken.KindEOF:                   "EOF",
		dtdtoken.KindProcessingInstruction: "ProcessingInstruction",
		dtdtoken.KindTextDecl:              "TextDecl",
		dtdtoken.KindComment:               "Comment",
		dtdtoken.KindEntityDecl:            "EntityDecl",
		dtdtoken.KindElementDecl:           "ElementDecl",
		dtdtoken.KindAttListDecl:           "AttListDecl",
		dtdtoken.KindNotationDecl:          "NotationDecl",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestEOFTokenIsZeroKindWithNoPayload(t *testing.T) {
	assert.Equal(t, dtdtoken.KindEOF, dtdtoken.EOFToken.Kind)
	assert.Empty(t, dtdtoken.EOFToken.Name)
	assert.Nil(t, dtdtoken.EOFToken.Entry)
}

func TestEntityDeclTokenShape(t *testing.T) {
	value := "abc"
	tok := dtdtoken.Token{
		Kind:        dtdtoken.KindEntityDecl,
		Name:        "x",
		IsParameter: true,
		Value:       &value,
	}
	assert.True(t, tok.IsParameter)
	assert.False(t, tok.IsExtern)
	if assert.NotNil(t, tok.Value) {
		assert.Equal(t, "abc", *tok.Value)
	}
}
