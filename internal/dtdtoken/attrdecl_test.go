package dtdtoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
)

func TestAttrTypeZeroValueIsStringType(t *testing.T) {
	var typ dtdtoken.AttrType
	assert.Equal(t, dtdtoken.StringType, typ.Kind)
}

func TestAttrTypeEnumeratedCarriesNames(t *testing.T) {
	typ := dtdtoken.AttrType{Kind: dtdtoken.Enumerated, Names: []string{"left", "right", "center"}}
	assert.Equal(t, []string{"left", "right", "center"}, typ.Names)
	assert.False(t, typ.IsNotation)
}

func TestAttrTypeNotationEnumeratedSetsFlag(t *testing.T) {
	typ := dtdtoken.AttrType{Kind: dtdtoken.Enumerated, IsNotation: true, Names: []string{"gif", "jpeg"}}
	assert.True(t, typ.IsNotation)
}

func TestAttrDefaultCustomCarriesFixedFlagAndValue(t *testing.T) {
	def := dtdtoken.AttrDefault{Kind: dtdtoken.Custom, Value: "0", IsFixed: true}
	assert.Equal(t, "0", def.Value)
	assert.True(t, def.IsFixed)
}

func TestAttrDeclShape(t *testing.T) {
	decl := dtdtoken.AttrDecl{
		Name:    "width",
		Type:    dtdtoken.AttrType{Kind: dtdtoken.StringType},
		Default: dtdtoken.AttrDefault{Kind: dtdtoken.Custom, Value: "0", IsFixed: true},
	}
	assert.Equal(t, "width", decl.Name)
	assert.Equal(t, dtdtoken.StringType, decl.Type.Kind)
	assert.Equal(t, dtdtoken.Custom, decl.Default.Kind)
}
