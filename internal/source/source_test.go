package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adobrowolski/dtdtok/internal/source"
)

func TestStringCursorBasics(t *testing.T) {
	c := source.NewStringCursor("ab")
	require.Equal(t, 'a', c.Current())
	assert.Equal(t, 0, c.InsertionPoint())

	r := c.Next()
	assert.Equal(t, 'b', r)
	assert.Equal(t, 1, c.InsertionPoint())

	r = c.Next()
	assert.Equal(t, source.EOF, r)
	assert.Equal(t, 2, c.InsertionPoint())

	// Next past EOF does not advance further or panic.
	r = c.Next()
	assert.Equal(t, source.EOF, r)
}

func TestStringCursorContinuesWith(t *testing.T) {
	c := source.NewStringCursor("<?xml version")
	assert.True(t, c.ContinuesWith("<?xml", false))
	assert.True(t, c.ContinuesWith("<?XML", true))
	assert.False(t, c.ContinuesWith("<?XML", false))
	assert.Equal(t, 0, c.InsertionPoint(), "ContinuesWith must not consume")
}

func TestStringCursorAdvanceAndCopy(t *testing.T) {
	c := source.NewStringCursor("hello world")
	c.Advance(5)
	assert.Equal(t, ' ', c.Current())
	assert.Equal(t, "hello", c.Copy(0, 5))
	assert.Equal(t, "hello world", c.Copy(0, 100))
	assert.Equal(t, "", c.Copy(9, 3))
}

func TestStringCursorAdvancePastEOF(t *testing.T) {
	c := source.NewStringCursor("ab")
	c.Advance(10)
	assert.Equal(t, source.EOF, c.Current())
	assert.Equal(t, 2, c.InsertionPoint())
}
