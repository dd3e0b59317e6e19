package xname_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adobrowolski/dtdtok/internal/source"
	"github.com/adobrowolski/dtdtok/internal/xname"
	"github.com/adobrowolski/dtdtok/internal/xstream"
)

func TestReadNameStopsAtNonNameChar(t *testing.T) {
	st := xstream.New(source.NewStringCursor("book;rest"))
	name, ok := xname.Read(st)
	assert.True(t, ok)
	assert.Equal(t, "book", name)
	assert.Equal(t, ';', st.Current())
}

func TestReadNameRejectsBadStart(t *testing.T) {
	st := xstream.New(source.NewStringCursor("123"))
	_, ok := xname.Read(st)
	assert.False(t, ok)
	assert.Equal(t, '1', st.Current(), "a rejected read must not consume")
}

func TestReadNameAllowsNameStartPunct(t *testing.T) {
	st := xstream.New(source.NewStringCursor("_x:y-1.2 "))
	name, ok := xname.Read(st)
	assert.True(t, ok)
	assert.Equal(t, "_x:y-1.2", name)
}
