package gstin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbillpro/gstbill-api/pkg/gstin"
)

const validGSTIN = "24AADPP6173E1ZT" // Gujarat (state code 24)

func TestValidate_ValidGSTIN(t *testing.T) {
	assert.NoError(t, gstin.Validate(validGSTIN))
}

func TestValidate_NormalizesBeforeChecking(t *testing.T) {
	assert.NoError(t, gstin.Validate("  24aadpp6173e1zt "),
		"lowercase input with surrounding spaces must validate after normalization")
}

func TestValidate_Empty(t *testing.T) {
	assert.Error(t, gstin.Validate(""), "empty GSTIN must be rejected")
}

func TestValidate_WrongLength(t *testing.T) {
	assert.Error(t, gstin.Validate("24AADPP6173E1Z"), "14 characters must be rejected")
	assert.Error(t, gstin.Validate("24AADPP6173E1ZTX"), "16 characters must be rejected")
}

func TestValidate_BadFormat(t *testing.T) {
	// 13th position must be the literal 'Z'.
	assert.Error(t, gstin.Validate("24AADPP6173E1AT"))
	// PAN block must be 5 letters.
	assert.Error(t, gstin.Validate("24AAD1P6173E1ZT"))
}

func TestValidate_BadStateCode(t *testing.T) {
	assert.Error(t, gstin.Validate("00AADPP6173E1ZT"), "state code 00 is invalid")
	assert.Error(t, gstin.Validate("39AADPP6173E1ZT"), "state code 39 is unassigned")
}

func TestStateFromGSTIN(t *testing.T) {
	state, ok := gstin.StateFromGSTIN(validGSTIN)
	require.True(t, ok)
	assert.Equal(t, "Gujarat", state)
}

func TestStateFromGSTIN_UnknownCode(t *testing.T) {
	// 25 was withdrawn when Daman and Diu merged into code 26.
	_, ok := gstin.StateFromGSTIN("25AADPP6173E1ZT")
	assert.False(t, ok)
}

func TestStateCode(t *testing.T) {
	code, ok := gstin.StateCode("27AAACB1234F1Z5")
	require.True(t, ok)
	assert.Equal(t, "27", code)

	_, ok = gstin.StateCode("2")
	assert.False(t, ok, "input shorter than two characters has no state code")
}
