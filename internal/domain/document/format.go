package document

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// en-IN applies the Indian digit grouping (##,##,###) per CLDR.
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount for display with the rupee sign and Indian
// grouping, always two decimals: 123456 -> "₹1,23,456.00".
func FormatINR(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return inr.Sprintf("₹%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
