package tax

import "github.com/shopspring/decimal"

// TaxRateBucket aggregates every line sharing one GST rate, for the invoice's
// tax summary table. Produced only in GST mode.
type TaxRateBucket struct {
	RatePercent   decimal.Decimal
	TaxableAmount decimal.Decimal
	CGSTAmount    decimal.Decimal
	SGSTAmount    decimal.Decimal
	IGSTAmount    decimal.Decimal
	TaxAmount     decimal.Decimal
}

// InvoiceTotals are the document-level sums. Subtotal is the taxable subtotal
// in GST mode and the discounted amount subtotal otherwise. NetAmount is
// integral; RoundOff = NetAmount - TotalBeforeRoundOff with |RoundOff| < 1.
type InvoiceTotals struct {
	TotalQuantity       decimal.Decimal
	TotalDiscount       decimal.Decimal
	Subtotal            decimal.Decimal
	TotalCGST           decimal.Decimal
	TotalSGST           decimal.Decimal
	TotalIGST           decimal.Decimal
	TotalTaxAmount      decimal.Decimal
	TotalBeforeRoundOff decimal.Decimal
	RoundOff            decimal.Decimal
	NetAmount           decimal.Decimal
}

// Aggregation is the full result of computing one invoice: per-line results in
// input order, document totals and (GST mode) the rate-bucketed summary.
// Freshly allocated per call; holds no references back to caller state.
type Aggregation struct {
	Mode       Mode
	Lines      []LineItemResult
	Totals     InvoiceTotals
	GSTSummary []TaxRateBucket // nil in non-GST mode
}

// Aggregator runs the line calculator over an invoice and folds the results.
type Aggregator struct {
	calc *Calculator
}

// NewAggregator builds the aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{calc: NewCalculator()}
}

// Aggregate computes every line in order, accumulates the document totals and
// groups GST lines into rate buckets (first-seen rate order, unique keys).
// An empty line slice is valid and yields all-zero totals.
func (a *Aggregator) Aggregate(items []LineItem, mode Mode) Aggregation {
	agg := Aggregation{
		Mode:  mode,
		Lines: make([]LineItemResult, 0, len(items)),
	}

	bucketIdx := make(map[string]int)

	for _, item := range items {
		res := a.calc.Compute(item, mode)
		agg.Lines = append(agg.Lines, res)

		t := &agg.Totals
		t.TotalQuantity = t.TotalQuantity.Add(item.Quantity)
		t.TotalDiscount = t.TotalDiscount.Add(res.DiscountAmount)
		t.Subtotal = t.Subtotal.Add(res.TaxableAmount)
		t.TotalCGST = t.TotalCGST.Add(res.CGSTAmount)
		t.TotalSGST = t.TotalSGST.Add(res.SGSTAmount)
		t.TotalIGST = t.TotalIGST.Add(res.IGSTAmount)

		if mode.GST {
			key := item.TaxRatePercent.String()
			i, ok := bucketIdx[key]
			if !ok {
				i = len(agg.GSTSummary)
				bucketIdx[key] = i
				agg.GSTSummary = append(agg.GSTSummary, TaxRateBucket{RatePercent: item.TaxRatePercent})
			}
			b := &agg.GSTSummary[i]
			b.TaxableAmount = b.TaxableAmount.Add(res.TaxableAmount)
			b.CGSTAmount = b.CGSTAmount.Add(res.CGSTAmount)
			b.SGSTAmount = b.SGSTAmount.Add(res.SGSTAmount)
			b.IGSTAmount = b.IGSTAmount.Add(res.IGSTAmount)
			b.TaxAmount = b.TaxAmount.Add(res.TaxAmount)
		}
	}

	t := &agg.Totals
	t.TotalTaxAmount = t.TotalCGST.Add(t.TotalSGST).Add(t.TotalIGST)
	t.TotalBeforeRoundOff = t.Subtotal.Add(t.TotalTaxAmount)
	t.NetAmount, t.RoundOff = RoundOffToInteger(t.TotalBeforeRoundOff)
	return agg
}
