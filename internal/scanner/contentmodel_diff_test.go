package scanner_test

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/adobrowolski/dtdtok/internal/dtdtoken"
)

// TestScanDeeplyNestedContentModel exercises a content model too deep to
// eyeball-diff on failure, so mismatches are reported via kr/pretty.Diff
// (the same diffing style used elsewhere in the pack for recursive AST
// comparisons) instead of Go's default %+v dump.
func TestScanDeeplyNestedContentModel(t *testing.T) {
	sc, _, _ := newScanner(`<!ELEMENT form (((a,b)?,(c|d)+)*,e)>`, true)
	tok, err := sc.Get()
	require.NoError(t, err)

	want := dtdtoken.NewSequence([]*dtdtoken.ContentModel{
		dtdtoken.NewSequence([]*dtdtoken.ContentModel{
			dtdtoken.NewSequence([]*dtdtoken.ContentModel{
				dtdtoken.NewName("a", dtdtoken.One),
				dtdtoken.NewName("b", dtdtoken.One),
			}, dtdtoken.ZeroOrOne),
			dtdtoken.NewChoice([]*dtdtoken.ContentModel{
				dtdtoken.NewName("c", dtdtoken.One),
				dtdtoken.NewName("d", dtdtoken.One),
			}, dtdtoken.OneOrMore),
		}, dtdtoken.ZeroOrMore),
		dtdtoken.NewName("e", dtdtoken.One),
	}, dtdtoken.One)

	if diff := pretty.Diff(want, tok.Entry); len(diff) > 0 {
		t.Fatalf("content model mismatch:\n%s", pretty.Sprint(diff))
	}
}
