package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice payment states.
const (
	InvoiceStatusUnpaid  = "Unpaid"
	InvoiceStatusPartial = "Partial"
	InvoiceStatusPaid    = "Paid"
)

// Bill types shown in the "Terms" box of the printed invoice.
const (
	BillTypeCash   = "CASH"
	BillTypeCredit = "CREDIT"
)

// Invoice is the persisted header of a sales invoice. All monetary fields are
// stored already rounded to 2 decimals; GrandTotal is integral after round-off.
type Invoice struct {
	ID            string
	CompanyID     string
	PartyID       string
	InvoiceNo     string
	Date          time.Time
	TaxType       string // TaxTypeGST or TaxTypeNonGST
	BillType      string // BillTypeCash or BillTypeCredit
	IsInterState  bool   // IGST applies instead of CGST/SGST
	RefNo         string
	VehicleNo     string
	Transport     string
	TotalQuantity decimal.Decimal
	Subtotal      decimal.Decimal // taxable subtotal (GST) or discounted subtotal (non-GST)
	TotalDiscount decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
	RoundOff      decimal.Decimal
	GrandTotal    decimal.Decimal
	BalanceDue    decimal.Decimal
	Status        string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceItem is a persisted invoice line. The derived fields (DiscountAmount
// through LineTotal) are stored exactly as the tax engine computed them so the
// printed document can be rebuilt byte-identically.
type InvoiceItem struct {
	ID              string
	InvoiceID       string
	ProductID       string // empty for free-text lines
	Description     string
	HSNCode         string
	Unit            string
	Quantity        decimal.Decimal
	Rate            decimal.Decimal
	MRP             decimal.Decimal
	DiscountPercent decimal.Decimal
	TaxRatePercent  decimal.Decimal
	DiscountAmount  decimal.Decimal
	TaxableAmount   decimal.Decimal
	CGSTAmount      decimal.Decimal
	SGSTAmount      decimal.Decimal
	IGSTAmount      decimal.Decimal
	LineTotal       decimal.Decimal
}
