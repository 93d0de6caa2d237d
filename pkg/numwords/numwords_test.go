package numwords_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gstbillpro/gstbill-api/pkg/numwords"
)

func TestWords_Zero(t *testing.T) {
	assert.Equal(t, "Zero", numwords.Words(0), "zero must render as the bare word Zero")
}

func TestWords_IndianGrouping(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "One"},
		{19, "Nineteen"},
		{21, "Twenty One"},
		{100, "One Hundred"},
		{105, "One Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{3900, "Three Thousand Nine Hundred"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numwords.Words(tc.n), "Words(%d)", tc.n)
	}
}

func TestWords_Negative(t *testing.T) {
	assert.Equal(t, "Minus Five", numwords.Words(-5))
}

func TestRupees_WholeAmount(t *testing.T) {
	got := numwords.Rupees(decimal.NewFromInt(3900))
	assert.Equal(t, "Three Thousand Nine Hundred Rupees Only", got)
}

func TestRupees_Zero(t *testing.T) {
	assert.Equal(t, "Zero Only", numwords.Rupees(decimal.Zero))
}

func TestRupees_SingularForms(t *testing.T) {
	assert.Equal(t, "One Rupee Only", numwords.Rupees(decimal.NewFromInt(1)))
	assert.Equal(t, "One Rupee and Fifty Paise Only",
		numwords.Rupees(decimal.RequireFromString("1.50")))
	assert.Equal(t, "One Paisa Only",
		numwords.Rupees(decimal.RequireFromString("0.01")))
}

// Sub-paisa fractions are normalized to 2 decimals before the split, so an
// amount like 1.999 carries into the rupee part rather than printing as a
// hundred paise.
func TestRupees_SubPaisaCarriesIntoRupees(t *testing.T) {
	assert.Equal(t, "Two Rupees Only", numwords.Rupees(decimal.RequireFromString("1.999")))
	assert.Equal(t, "One Rupee Only", numwords.Rupees(decimal.RequireFromString("0.995")))
	assert.Equal(t, "Zero Only", numwords.Rupees(decimal.RequireFromString("0.004")))
}

func TestRupees_RupeesAndPaise(t *testing.T) {
	got := numwords.Rupees(decimal.RequireFromString("236.25"))
	assert.Equal(t, "Two Hundred Thirty Six Rupees and Twenty Five Paise Only", got)
}
