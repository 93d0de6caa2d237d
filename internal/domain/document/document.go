// Package document assembles the render-ready data for a printable invoice.
// It merges invoice metadata, company and party records and the tax engine's
// aggregation into one flat, string-projected structure the renderer consumes
// without further computation. Two variants exist (GST and non-GST) behind
// the Document interface; Assemble is the single factory that picks one.
package document

import (
	"time"

	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
	"github.com/gstbillpro/gstbill-api/internal/domain/tax"
	"github.com/gstbillpro/gstbill-api/pkg/numwords"
	"github.com/shopspring/decimal"
)

// Fallbacks applied when the company record has no bank details or terms.
// Exposed as constants so tests (and installers) can assert on them.
const (
	DefaultBankName    = "BANK OF INDIA"
	DefaultBankAccount = "A/C NO:00-250271000001287"
	DefaultBankIFSC    = "IFSC CODE: BKID0002503"
	DefaultTerms       = "Subject to Vadodara - 390001 jurisdiction E.& O.E"
)

const dateLayout = "02-01-2006"

// Meta is the invoice header data the assembler needs.
type Meta struct {
	InvoiceNo string
	Date      time.Time
	BillType  string // printed in the Terms box: CASH / CREDIT
	RefNo     string
	VehicleNo string
	Transport string
}

// Common holds the sections shared by both variants, all pre-formatted. The
// renderer can lay out one page and toggle the tax sections on IsGST.
type Common struct {
	CompanyName    string
	CompanyAddress string
	CompanyContact string

	InvoiceNo   string
	InvoiceDate string
	Terms       string
	RefNo       string
	VehicleNo   string
	Transport   string

	BuyerName     string
	BuyerAddress  string
	BuyerLocation string
	BuyerContact  string

	TotalQuantity string
	TotalDiscount string
	RoundOff      string
	NetAmount     string
	NetAmountINR  string // en-IN grouped display form, e.g. ₹1,23,456.00
	AmountInWords string

	BankName    string
	BankAccount string
	BankIFSC    string

	TermsConditions string
}

// Document is what the renderer receives. Constructed once per render request,
// immutable after assembly, safe to pass across process boundaries.
type Document interface {
	CommonData() Common
	IsGST() bool
}

// GSTItemRow is the 17-column line projection of a GST invoice.
type GSTItemRow struct {
	Sr              int
	Description     string
	HSNCode         string
	MRP             string
	Quantity        string
	Rate            string
	TotalValue      string
	DiscountPercent string
	DiscountAmount  string
	TaxableAmount   string
	CGSTPercent     string
	CGSTAmount      string
	SGSTPercent     string
	SGSTAmount      string
	IGSTPercent     string
	IGSTAmount      string
	Total           string
}

// SummaryRow is one row of the printed GST summary table.
type SummaryRow struct {
	Rate          string
	TaxableAmount string
	CGSTAmount    string
	SGSTAmount    string
	IGSTAmount    string
	TaxAmount     string
}

// HSNRow is one row of the HSN-wise breakdown printed for GSTR filings.
type HSNRow struct {
	HSNCode       string
	Rate          string
	Quantity      string
	TaxableAmount string
	CGSTAmount    string
	SGSTAmount    string
	IGSTAmount    string
	TaxAmount     string
}

// TaxData is the GST-only section of the document.
type TaxData struct {
	CompanyGSTIN    string
	BuyerGSTIN      string
	SubtotalTaxable string
	TotalCGST       string
	TotalSGST       string
	TotalIGST       string
	TotalTaxAmount  string
	TotalAfterTax   string
	GSTSummary      []SummaryRow
	HSNSummary      []HSNRow
}

// GSTDocument is the GST variant.
type GSTDocument struct {
	Common
	Tax   TaxData
	Items []GSTItemRow
}

func (d *GSTDocument) CommonData() Common { return d.Common }
func (d *GSTDocument) IsGST() bool        { return true }

// ItemRow is the reduced 9-column line projection of a non-GST invoice.
type ItemRow struct {
	Sr              int
	Description     string
	HSNCode         string
	MRP             string
	Quantity        string
	Rate            string
	TotalValue      string
	DiscountPercent string
	DiscountAmount  string
	Amount          string
}

// NonGSTDocument is the non-GST variant: no GSTIN, no tax amounts, no summary.
type NonGSTDocument struct {
	Common
	SubtotalAmount string
	Items          []ItemRow
}

func (d *NonGSTDocument) CommonData() Common { return d.Common }
func (d *NonGSTDocument) IsGST() bool        { return false }

// Assemble builds the render-ready document for one invoice. Beyond field
// selection, formatting, default substitution and the HSN-wise grouping of the
// computed lines it performs no computation, and mutates none of its inputs.
func Assemble(meta Meta, company *entity.Company, party *entity.Party, agg tax.Aggregation) Document {
	common := assembleCommon(meta, company, party, agg.Totals)

	if !agg.Mode.GST {
		doc := &NonGSTDocument{
			Common:         common,
			SubtotalAmount: agg.Totals.Subtotal.StringFixed(2),
			Items:          make([]ItemRow, 0, len(agg.Lines)),
		}
		for i, l := range agg.Lines {
			doc.Items = append(doc.Items, ItemRow{
				Sr:              i + 1,
				Description:     l.Item.Description,
				HSNCode:         l.Item.HSNCode,
				MRP:             mrpString(l.Item),
				Quantity:        l.Item.Quantity.StringFixed(0),
				Rate:            l.Item.Rate.StringFixed(2),
				TotalValue:      tax.Round2(l.TotalValue).StringFixed(2),
				DiscountPercent: l.Item.DiscountPercent.StringFixed(2),
				DiscountAmount:  l.DiscountAmount.StringFixed(2),
				Amount:          l.LineTotal.StringFixed(2),
			})
		}
		return doc
	}

	doc := &GSTDocument{
		Common: common,
		Tax: TaxData{
			CompanyGSTIN:    company.GSTIN,
			BuyerGSTIN:      party.GSTIN,
			SubtotalTaxable: agg.Totals.Subtotal.StringFixed(2),
			TotalCGST:       agg.Totals.TotalCGST.StringFixed(2),
			TotalSGST:       agg.Totals.TotalSGST.StringFixed(2),
			TotalIGST:       agg.Totals.TotalIGST.StringFixed(2),
			TotalTaxAmount:  agg.Totals.TotalTaxAmount.StringFixed(2),
			TotalAfterTax:   agg.Totals.TotalBeforeRoundOff.StringFixed(2),
			GSTSummary:      make([]SummaryRow, 0, len(agg.GSTSummary)),
		},
		Items: make([]GSTItemRow, 0, len(agg.Lines)),
	}

	for i, l := range agg.Lines {
		halfRate := l.Item.TaxRatePercent.Div(decimal.NewFromInt(2))
		row := GSTItemRow{
			Sr:              i + 1,
			Description:     l.Item.Description,
			HSNCode:         l.Item.HSNCode,
			MRP:             mrpString(l.Item),
			Quantity:        l.Item.Quantity.StringFixed(0),
			Rate:            l.Item.Rate.StringFixed(2),
			TotalValue:      tax.Round2(l.TotalValue).StringFixed(2),
			DiscountPercent: l.Item.DiscountPercent.StringFixed(2),
			DiscountAmount:  l.DiscountAmount.StringFixed(2),
			TaxableAmount:   l.TaxableAmount.StringFixed(2),
			CGSTAmount:      l.CGSTAmount.StringFixed(2),
			SGSTAmount:      l.SGSTAmount.StringFixed(2),
			IGSTAmount:      l.IGSTAmount.StringFixed(2),
			Total:           l.LineTotal.StringFixed(2),
		}
		if agg.Mode.InterState {
			row.CGSTPercent = "0"
			row.SGSTPercent = "0"
			row.IGSTPercent = percentString(l.Item.TaxRatePercent)
		} else {
			row.CGSTPercent = percentString(halfRate)
			row.SGSTPercent = percentString(halfRate)
			row.IGSTPercent = "0"
		}
		doc.Items = append(doc.Items, row)
	}

	for _, b := range agg.GSTSummary {
		doc.Tax.GSTSummary = append(doc.Tax.GSTSummary, SummaryRow{
			Rate:          b.RatePercent.StringFixed(0) + "%",
			TaxableAmount: b.TaxableAmount.StringFixed(2),
			CGSTAmount:    b.CGSTAmount.StringFixed(2),
			SGSTAmount:    b.SGSTAmount.StringFixed(2),
			IGSTAmount:    b.IGSTAmount.StringFixed(2),
			TaxAmount:     b.TaxAmount.StringFixed(2),
		})
	}

	for _, r := range tax.HSNSummary(agg.Lines) {
		doc.Tax.HSNSummary = append(doc.Tax.HSNSummary, HSNRow{
			HSNCode:       r.HSNCode,
			Rate:          r.RatePercent.StringFixed(0) + "%",
			Quantity:      r.Quantity.StringFixed(0),
			TaxableAmount: r.TaxableAmount.StringFixed(2),
			CGSTAmount:    r.CGSTAmount.StringFixed(2),
			SGSTAmount:    r.SGSTAmount.StringFixed(2),
			IGSTAmount:    r.IGSTAmount.StringFixed(2),
			TaxAmount:     r.TaxAmount.StringFixed(2),
		})
	}
	return doc
}

func assembleCommon(meta Meta, company *entity.Company, party *entity.Party, totals tax.InvoiceTotals) Common {
	c := Common{
		CompanyName:    company.Name,
		CompanyAddress: company.Address,
		CompanyContact: "Ph. : " + company.Mobile + " E mail : " + company.Email,

		InvoiceNo:   meta.InvoiceNo,
		InvoiceDate: meta.Date.Format(dateLayout),
		Terms:       meta.BillType,
		RefNo:       meta.RefNo,
		VehicleNo:   meta.VehicleNo,
		Transport:   meta.Transport,

		BuyerName:     party.Name,
		BuyerAddress:  party.Address,
		BuyerLocation: joinNonEmpty(party.City, party.State),
		BuyerContact:  party.Mobile,

		TotalQuantity: totals.TotalQuantity.StringFixed(0),
		TotalDiscount: totals.TotalDiscount.StringFixed(2),
		RoundOff:      totals.RoundOff.StringFixed(2),
		NetAmount:     totals.NetAmount.StringFixed(2),
		NetAmountINR:  FormatINR(totals.NetAmount),
		AmountInWords: numwords.Rupees(totals.NetAmount),

		BankName:        company.BankName,
		BankAccount:     company.BankAccount,
		BankIFSC:        company.BankIFSC,
		TermsConditions: company.Terms,
	}

	if c.BankName == "" {
		c.BankName = DefaultBankName
	}
	if c.BankAccount == "" {
		c.BankAccount = DefaultBankAccount
	}
	if c.BankIFSC == "" {
		c.BankIFSC = DefaultBankIFSC
	}
	if c.TermsConditions == "" {
		c.TermsConditions = DefaultTerms
	}
	return c
}

// percentString matches the printed form: one decimal when non-zero, bare "0"
// otherwise (e.g. "9.0", "2.5", "0").
func percentString(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	return d.StringFixed(1)
}

// mrpString prints the line MRP, falling back to the rate as the desktop
// edition's templates did.
func mrpString(item tax.LineItem) string {
	if item.MRP.IsPositive() {
		return item.MRP.StringFixed(0)
	}
	if item.Rate.IsPositive() {
		return item.Rate.StringFixed(0)
	}
	return "0"
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
