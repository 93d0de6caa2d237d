// Package tax computes GST line amounts, invoice totals and tax-rate summaries
// for sales invoices. Everything in this package is a pure function over its
// inputs; callers fetch records and pass plain values in, so the engine is
// testable without a database.
package tax

import "github.com/shopspring/decimal"

// Round2 rounds a monetary value to 2 fractional digits, half-up (commercial
// rounding, not banker's). Every monetary value that is persisted or displayed
// goes through this so sums of rounded parts reproduce across platforms.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundOffToInteger rounds an invoice total to the nearest whole rupee, half-up.
// delta is the signed "Round Off" line shown on the invoice: net - total, with
// |delta| < 1.00. A negative total still produces a value; validation rejects
// negative invoices before totals are computed.
func RoundOffToInteger(total decimal.Decimal) (net, delta decimal.Decimal) {
	net = total.Round(0)
	delta = net.Sub(total)
	return net, delta
}
