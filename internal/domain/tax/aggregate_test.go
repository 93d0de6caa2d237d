package tax_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbillpro/gstbill-api/internal/domain/tax"
)

// Non-GST document with a single discounted line: the total carries through
// untaxed and the net amount rounds up to the next rupee.
func TestAggregate_NonGSTRoundsToRupee(t *testing.T) {
	agg := tax.NewAggregator().Aggregate(
		[]tax.LineItem{line("3", "99.99", "10", "0")},
		tax.Mode{GST: false},
	)

	assertDec(t, "269.97", agg.Totals.Subtotal, "subtotal")
	assertDec(t, "30.00", agg.Totals.TotalDiscount, "total discount")
	assertDec(t, "0", agg.Totals.TotalTaxAmount, "total tax")
	assertDec(t, "269.97", agg.Totals.TotalBeforeRoundOff, "total before round off")
	assertDec(t, "270", agg.Totals.NetAmount, "net amount")
	assertDec(t, "0.03", agg.Totals.RoundOff, "round off")
	assert.Nil(t, agg.GSTSummary, "non-GST documents carry no rate summary")
}

func TestAggregate_EmptyInvoice(t *testing.T) {
	agg := tax.NewAggregator().Aggregate(nil, tax.Mode{GST: true})

	assert.Empty(t, agg.Lines)
	assert.Nil(t, agg.GSTSummary)
	assertDec(t, "0", agg.Totals.TotalQuantity, "total quantity")
	assertDec(t, "0", agg.Totals.Subtotal, "subtotal")
	assertDec(t, "0", agg.Totals.TotalTaxAmount, "total tax")
	assertDec(t, "0", agg.Totals.NetAmount, "net amount")
	assertDec(t, "0", agg.Totals.RoundOff, "round off")
}

// Document totals are exactly the sums of the per-line results.
func TestAggregate_TotalsAreLineSums(t *testing.T) {
	items := []tax.LineItem{
		line("2", "100", "0", "18"),
		line("1", "10.10", "0", "5"),
		line("4", "250.50", "5", "12"),
	}
	agg := tax.NewAggregator().Aggregate(items, tax.Mode{GST: true})
	require.Len(t, agg.Lines, 3)

	var taxable, cgst, sgst, igst decimal.Decimal
	for _, l := range agg.Lines {
		taxable = taxable.Add(l.TaxableAmount)
		cgst = cgst.Add(l.CGSTAmount)
		sgst = sgst.Add(l.SGSTAmount)
		igst = igst.Add(l.IGSTAmount)
	}
	assert.True(t, agg.Totals.Subtotal.Equal(taxable), "subtotal must equal the sum of line taxable amounts")
	assert.True(t, agg.Totals.TotalCGST.Equal(cgst), "CGST total must equal the sum of line CGST")
	assert.True(t, agg.Totals.TotalSGST.Equal(sgst), "SGST total must equal the sum of line SGST")
	assert.True(t, agg.Totals.TotalIGST.Equal(igst), "IGST total must equal the sum of line IGST")
	assert.True(t, agg.Totals.TotalTaxAmount.Equal(cgst.Add(sgst).Add(igst)))

	var lineTotals decimal.Decimal
	for _, l := range agg.Lines {
		lineTotals = lineTotals.Add(l.LineTotal)
	}
	assert.True(t, agg.Totals.TotalBeforeRoundOff.Equal(lineTotals),
		"line totals must sum to the pre-round-off total")
}

// Rate buckets appear in first-seen order, one per distinct rate, and each
// bucket is the exact sum of its lines.
func TestAggregate_GSTSummaryBuckets(t *testing.T) {
	items := []tax.LineItem{
		line("2", "100", "0", "18"),
		line("1", "50", "0", "5"),
		line("3", "75", "0", "18"),
	}
	agg := tax.NewAggregator().Aggregate(items, tax.Mode{GST: true})
	require.Len(t, agg.GSTSummary, 2)

	assertDec(t, "18", agg.GSTSummary[0].RatePercent, "first bucket rate")
	assertDec(t, "5", agg.GSTSummary[1].RatePercent, "second bucket rate")

	// 18% bucket: 200.00 + 225.00 taxable; tax 36.00 + 40.50.
	b18 := agg.GSTSummary[0]
	assertDec(t, "425.00", b18.TaxableAmount, "18% taxable")
	assertDec(t, "76.50", b18.TaxAmount, "18% tax")
	assert.True(t, b18.TaxAmount.Equal(b18.CGSTAmount.Add(b18.SGSTAmount).Add(b18.IGSTAmount)),
		"bucket tax must reconcile with its components")

	b5 := agg.GSTSummary[1]
	assertDec(t, "50.00", b5.TaxableAmount, "5% taxable")
	assertDec(t, "2.50", b5.TaxAmount, "5% tax")
}

// Inter-state mode pushes all tax into IGST at both line and document level.
func TestAggregate_InterState(t *testing.T) {
	items := []tax.LineItem{
		line("2", "100", "0", "18"),
		line("1", "50", "0", "12"),
	}
	agg := tax.NewAggregator().Aggregate(items, tax.Mode{GST: true, InterState: true})

	assertDec(t, "0", agg.Totals.TotalCGST, "CGST total")
	assertDec(t, "0", agg.Totals.TotalSGST, "SGST total")
	assertDec(t, "42.00", agg.Totals.TotalIGST, "IGST total")
	assert.True(t, agg.Totals.TotalTaxAmount.Equal(agg.Totals.TotalIGST))
}

// Aggregation is pure: running it twice over the same input yields the same
// result and never mutates the input slice.
func TestAggregate_Idempotent(t *testing.T) {
	items := []tax.LineItem{
		line("2", "100", "0", "18"),
		line("3", "99.99", "10", "5"),
	}
	a := tax.NewAggregator()
	r1 := a.Aggregate(items, tax.Mode{GST: true})
	r2 := a.Aggregate(items, tax.Mode{GST: true})

	assert.Equal(t, r1, r2)
	assertDec(t, "2", items[0].Quantity, "input line must be untouched")
}
