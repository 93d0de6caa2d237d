package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable item. HSNCode and TaxRatePercent are the
// defaults copied onto invoice lines when the caller does not override them.
type Product struct {
	ID             string
	CompanyID      string
	Name           string
	HSNCode        string
	Unit           string // Piece, Kg, Box, ...
	SalePrice      decimal.Decimal
	MRP            decimal.Decimal
	TaxRatePercent decimal.Decimal // full GST rate, e.g. 0/5/12/18/28
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
