package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEntityPublicBranchKeepsSeparatePublicAndSystemFields resolves the
// Open Question in spec.md §9: PUBLIC must populate PublicID and SystemID
// as two distinct fields rather than reusing one field for both, so a
// reader of the token never has to know which literal was read last to
// tell the public identifier from the system identifier.
func TestEntityPublicBranchKeepsSeparatePublicAndSystemFields(t *testing.T) {
	sc, _, _ := newScanner(`<!ENTITY chap2 PUBLIC "-//Example//TEXT chapter two//EN" "chap2.xml">`, true)

	tok, err := sc.Get()
	require.NoError(t, err)
	require.NotNil(t, tok.PublicID)
	require.NotNil(t, tok.SystemID)
	assert.Equal(t, "-//Example//TEXT chapter two//EN", *tok.PublicID)
	assert.Equal(t, "chap2.xml", *tok.SystemID)
	assert.NotEqual(t, *tok.PublicID, *tok.SystemID)
}

func TestEntityNameExpandsEmbeddedParameterReference(t *testing.T) {
	sc, c, _ := newScanner(`<!ENTITY %name; "value">`, true)
	c.SetParameter("name", "chap")

	tok, err := sc.Get()
	require.NoError(t, err)
	assert.Equal(t, "chap", tok.Name)
}

func TestEntityNDATAIsRecoverableOnParameterEntity(t *testing.T) {
	sc, _, recovered := newScanner(`<!ENTITY % bad SYSTEM "x.ent" NDATA gif>`, true)
	tok, err := sc.Get()
	require.NoError(t, err)
	assert.Nil(t, tok.ExternNotation)
	assert.NotEmpty(t, *recovered)
}
