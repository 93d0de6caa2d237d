package tax

import "github.com/shopspring/decimal"

// Mode is the document-level tax context: whether the invoice is under the GST
// regime and, if so, whether the sale crosses state lines (IGST instead of the
// CGST/SGST split).
type Mode struct {
	GST        bool
	InterState bool
}

// LineItem is one raw invoice line as entered. Immutable input to the engine.
type LineItem struct {
	Description     string
	HSNCode         string
	Quantity        decimal.Decimal
	Rate            decimal.Decimal // unit price
	MRP             decimal.Decimal // optional, GST invoices only
	DiscountPercent decimal.Decimal // 0..100
	TaxRatePercent  decimal.Decimal // full GST rate (0/5/12/18/28); ignored in non-GST mode
}

// LineItemResult carries the computed amounts for one line. All monetary fields
// are rounded to 2 decimals at the point of computation; only TotalValue stays
// unrounded, as the intermediate the discount is taken from.
type LineItemResult struct {
	Item           LineItem
	TotalValue     decimal.Decimal // quantity * rate, unrounded
	DiscountAmount decimal.Decimal
	TaxableAmount  decimal.Decimal
	CGSTAmount     decimal.Decimal
	SGSTAmount     decimal.Decimal
	IGSTAmount     decimal.Decimal
	TaxAmount      decimal.Decimal // CGST + SGST + IGST
	LineTotal      decimal.Decimal
}

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// Calculator computes one line. Stateless; safe for concurrent use.
type Calculator struct{}

// NewCalculator builds the line calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute derives discount, taxable value and the tax split for a single line.
// Zero quantity or rate yields an all-zero result line which is retained, so
// the invoice still shows the item. Pure function, no side effects.
//
// Intra-state GST splits the tax 50/50: each half is rounded independently
// (Round2(tax/2)), so CGST+SGST can differ from the line tax by one paisa when
// the tax is odd at 2-decimal granularity. Accepted tolerance; SGST is not
// re-derived from the remainder.
func (c *Calculator) Compute(item LineItem, mode Mode) LineItemResult {
	totalValue := item.Quantity.Mul(item.Rate)
	discountAmount := Round2(totalValue.Mul(item.DiscountPercent).Div(hundred))
	taxableAmount := Round2(totalValue.Sub(discountAmount))

	res := LineItemResult{
		Item:           item,
		TotalValue:     totalValue,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxableAmount,
	}

	if !mode.GST {
		res.LineTotal = taxableAmount
		return res
	}

	taxAmount := Round2(taxableAmount.Mul(item.TaxRatePercent).Div(hundred))
	if mode.InterState {
		res.IGSTAmount = taxAmount
	} else {
		half := Round2(taxAmount.Div(two))
		res.CGSTAmount = half
		res.SGSTAmount = half
	}
	res.TaxAmount = res.CGSTAmount.Add(res.SGSTAmount).Add(res.IGSTAmount)
	res.LineTotal = taxableAmount.Add(res.TaxAmount)
	return res
}
