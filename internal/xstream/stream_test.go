package xstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adobrowolski/dtdtok/internal/source"
	"github.com/adobrowolski/dtdtok/internal/xstream"
)

func TestCurrentAndNext(t *testing.T) {
	st := xstream.New(source.NewStringCursor("abc"))
	require.Equal(t, 'a', st.Current())
	assert.Equal(t, 'b', st.Next())
	assert.Equal(t, 'c', st.Next())
	assert.Equal(t, source.EOF, st.Next())
}

func TestNextThenPreviousIsIdentity(t *testing.T) {
	st := xstream.New(source.NewStringCursor("abcdef"))
	st.Advance(3) // head now at 'd'
	before := st.Current()
	st.Next()
	st.Previous()
	assert.Equal(t, before, st.Current())
}

func TestContinuesWithDoesNotConsume(t *testing.T) {
	st := xstream.New(source.NewStringCursor("<!ENTITY x"))
	assert.True(t, st.ContinuesWith("<!ENTITY"))
	assert.Equal(t, '<', st.Current(), "ContinuesWith must not leave head advanced")
	st.Advance(1)
	assert.False(t, st.ContinuesWith("<!ENTITY"))
}

func TestContentReturnsOriginalSpan(t *testing.T) {
	st := xstream.New(source.NewStringCursor(`<!ENTITY x "y">`))
	for i := 0; i < len(`<!ENTITY x "y">`); i++ {
		st.Next()
	}
	assert.Equal(t, `<!ENTITY x "y">`, st.Content())
}

func TestPushSplicesAndResumesAfterRemovedSpan(t *testing.T) {
	// "%x;-tail" : splice out "%x;" (3 runes ending at head) with "abc",
	// then reading should yield "abc" followed by "-tail".
	st := xstream.New(source.NewStringCursor("%x;-tail"))
	st.Advance(3) // head now just past "%x;"
	st.Push(3, "abc")

	var got []rune
	for i := 0; i < len("abc-tail"); i++ {
		got = append(got, st.Current())
		st.Next()
	}
	assert.Equal(t, "abc-tail", string(got))
}

func TestPushPrefixMatchLaw(t *testing.T) {
	// After push(k, s), the next k' characters read equal the first k'
	// characters of s (for k' <= len(s)).
	st := xstream.New(source.NewStringCursor("%pe;REST"))
	st.Advance(4) // past "%pe;"
	st.Push(4, "short")

	for i, want := range "sho" {
		got := st.Current()
		require.Equal(t, want, got, "mismatch at index %d", i)
		st.Next()
	}
}

func TestContentUnaffectedBySplice(t *testing.T) {
	src := "%x;TAIL"
	st := xstream.New(source.NewStringCursor(src))
	st.Advance(3)
	st.Push(3, "replacement-text-longer-than-original")
	for i := 0; i < 50 && st.Current() != source.EOF; i++ {
		st.Next()
	}
	// Content must still reflect the original source, not the splice.
	assert.Equal(t, src, st.Content())
}
