package tax

import "github.com/shopspring/decimal"

// HSNSummaryRow is the HSN-wise breakdown used for GSTR filings: every line
// sharing an HSN code and rate folded together.
type HSNSummaryRow struct {
	HSNCode       string
	RatePercent   decimal.Decimal
	Quantity      decimal.Decimal
	TaxableAmount decimal.Decimal
	CGSTAmount    decimal.Decimal
	SGSTAmount    decimal.Decimal
	IGSTAmount    decimal.Decimal
	TaxAmount     decimal.Decimal
}

// HSNSummary groups computed lines by HSN code + rate, in first-seen order.
// Lines without an HSN code fall under "N/A".
func HSNSummary(lines []LineItemResult) []HSNSummaryRow {
	var rows []HSNSummaryRow
	idx := make(map[string]int)

	for _, l := range lines {
		hsn := l.Item.HSNCode
		if hsn == "" {
			hsn = "N/A"
		}
		key := hsn + "|" + l.Item.TaxRatePercent.String()
		i, ok := idx[key]
		if !ok {
			i = len(rows)
			idx[key] = i
			rows = append(rows, HSNSummaryRow{HSNCode: hsn, RatePercent: l.Item.TaxRatePercent})
		}
		r := &rows[i]
		r.Quantity = r.Quantity.Add(l.Item.Quantity)
		r.TaxableAmount = r.TaxableAmount.Add(l.TaxableAmount)
		r.CGSTAmount = r.CGSTAmount.Add(l.CGSTAmount)
		r.SGSTAmount = r.SGSTAmount.Add(l.SGSTAmount)
		r.IGSTAmount = r.IGSTAmount.Add(l.IGSTAmount)
		r.TaxAmount = r.TaxAmount.Add(l.TaxAmount)
	}
	return rows
}
