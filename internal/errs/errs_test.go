package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adobrowolski/dtdtok/internal/errs"
)

func TestFatalVsRecoverable(t *testing.T) {
	assert.True(t, errs.DTDInvalid.Fatal())
	assert.True(t, errs.CharRefInvalidCode.Fatal())
	assert.False(t, errs.NullChar.Fatal())
	assert.False(t, errs.QuantifierMissing.Fatal())
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := errs.New(errs.PEReferenceInvalid, 12, "unknown parameter entity %q", "x")
	assert.True(t, errors.Is(err, errs.Sentinel(errs.PEReferenceInvalid)))
	assert.False(t, errors.Is(err, errs.Sentinel(errs.DTDInvalid)))
	assert.Contains(t, err.Error(), "DtdPEReferenceInvalid")
	assert.Contains(t, err.Error(), `unknown parameter entity "x"`)
}
