package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbillpro/gstbill-api/internal/domain/tax"
)

func hsnLine(hsn, qty, rate, taxRate string) tax.LineItem {
	l := line(qty, rate, "0", taxRate)
	l.HSNCode = hsn
	return l
}

func TestHSNSummary_GroupsByCodeAndRate(t *testing.T) {
	calc := tax.NewCalculator()
	mode := tax.Mode{GST: true}
	results := []tax.LineItemResult{
		calc.Compute(hsnLine("3926", "2", "100", "18"), mode),
		calc.Compute(hsnLine("8471", "1", "50", "18"), mode),
		calc.Compute(hsnLine("3926", "3", "75", "18"), mode),
	}

	rows := tax.HSNSummary(results)
	require.Len(t, rows, 2, "two distinct HSN codes at the same rate")

	assert.Equal(t, "3926", rows[0].HSNCode, "first-seen code comes first")
	assertDec(t, "5", rows[0].Quantity, "3926 quantity")
	assertDec(t, "425.00", rows[0].TaxableAmount, "3926 taxable")
	assertDec(t, "76.50", rows[0].TaxAmount, "3926 tax")

	assert.Equal(t, "8471", rows[1].HSNCode)
	assertDec(t, "50.00", rows[1].TaxableAmount, "8471 taxable")
}

// The same code at different rates is two separate rows.
func TestHSNSummary_SplitsByRate(t *testing.T) {
	calc := tax.NewCalculator()
	mode := tax.Mode{GST: true}
	results := []tax.LineItemResult{
		calc.Compute(hsnLine("3926", "1", "100", "18"), mode),
		calc.Compute(hsnLine("3926", "1", "100", "5"), mode),
	}

	rows := tax.HSNSummary(results)
	require.Len(t, rows, 2)
	assertDec(t, "18", rows[0].RatePercent, "first row rate")
	assertDec(t, "5", rows[1].RatePercent, "second row rate")
}

func TestHSNSummary_MissingCodeFallsBackToNA(t *testing.T) {
	calc := tax.NewCalculator()
	results := []tax.LineItemResult{
		calc.Compute(hsnLine("", "1", "100", "18"), tax.Mode{GST: true}),
	}

	rows := tax.HSNSummary(results)
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0].HSNCode)
}

func TestHSNSummary_Empty(t *testing.T) {
	assert.Empty(t, tax.HSNSummary(nil))
}
