// Package numwords renders amounts as English words using the Indian numbering
// system (thousand, lakh, crore instead of million/billion).
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Words converts a non-negative integer to its Indian-grouping phrase,
// e.g. 123456 -> "One Lakh Twenty Three Thousand Four Hundred Fifty Six".
// Zero yields "Zero".
func Words(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + Words(-n)
	}

	crores := n / 10_000_000
	n %= 10_000_000
	lakhs := n / 100_000
	n %= 100_000
	thousands := n / 1000
	hundreds := n % 1000

	var parts []string
	if crores > 0 {
		parts = append(parts, Words(crores)+" Crore")
	}
	if lakhs > 0 {
		parts = append(parts, belowThousand(int(lakhs))+" Lakh")
	}
	if thousands > 0 {
		parts = append(parts, belowThousand(int(thousands))+" Thousand")
	}
	if hundreds > 0 {
		parts = append(parts, belowThousand(int(hundreds)))
	}
	return strings.Join(parts, " ")
}

// belowThousand converts 1..999.
func belowThousand(n int) string {
	var b strings.Builder
	if n >= 100 {
		b.WriteString(ones[n/100])
		b.WriteString(" Hundred")
		n %= 100
		if n > 0 {
			b.WriteByte(' ')
		}
	}
	switch {
	case n >= 20:
		b.WriteString(tens[n/10])
		if n%10 > 0 {
			b.WriteByte(' ')
			b.WriteString(ones[n%10])
		}
	case n > 0:
		b.WriteString(ones[n])
	}
	return b.String()
}

// Rupees renders a currency amount as the invoice phrase: rupees part, paise
// part when the amount has a fractional component, terminated with "Only".
// The amount is normalized to 2 decimals first, so sub-paisa fractions carry
// into the rupee part instead of printing as a hundred paise.
// Examples: 3900 -> "Three Thousand Nine Hundred Rupees Only";
// 1.50 -> "One Rupee and Fifty Paise Only"; 0 -> "Zero Only".
func Rupees(d decimal.Decimal) string {
	d = d.Round(2)
	if d.IsZero() {
		return "Zero Only"
	}
	if d.IsNegative() {
		return "Minus " + Rupees(d.Neg())
	}

	rupees := d.IntPart()
	paise := d.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	var b strings.Builder
	if rupees > 0 {
		b.WriteString(Words(rupees))
		if rupees == 1 {
			b.WriteString(" Rupee")
		} else {
			b.WriteString(" Rupees")
		}
	}
	if paise > 0 {
		if b.Len() > 0 {
			b.WriteString(" and ")
		}
		b.WriteString(Words(paise))
		if paise == 1 {
			b.WriteString(" Paisa")
		} else {
			b.WriteString(" Paise")
		}
	}
	b.WriteString(" Only")
	return b.String()
}
