// Package pdf renders the printable invoice with Maroto v2.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: TAX INVOICE / INVOICE  │  No + Date + Terms        │
//	│  SELLER: name, address, GSTIN, contact                      │
//	│  BUYER:  name, address, GSTIN, contact                      │
//	│  TABLE: Sr | Description | HSN | Qty | Rate | ... | Total   │
//	│  GST SUMMARY (GST only)  │  TOTALS + round off + net        │
//	│  AMOUNT IN WORDS                                            │
//	│  FOOTER: bank details + terms + signatory                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gstbillpro/gstbill-api/internal/application/billing"
	"github.com/gstbillpro/gstbill-api/internal/domain/document"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 40, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implements billing.InvoicePDFGenerator with Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the assembled document and returns the bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, doc document.Document) ([]byte, error) {
	common := doc.CommonData()

	title := "INVOICE"
	if doc.IsGST() {
		title = "TAX INVOICE"
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title+" "+common.InvoiceNo, true).
		WithAuthor(common.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, common))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sellerRow(doc, common))
	m.AddRows(buyerRow(doc, common))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if gst, ok := doc.(*document.GSTDocument); ok {
		m.AddRows(gstTableHeaderRow())
		for _, r := range gstItemRows(gst.Items) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		for _, r := range gstSummaryRows(gst.Tax) {
			m.AddRows(r)
		}
		for _, r := range hsnSummaryRows(gst.Tax) {
			m.AddRows(r)
		}
		m.AddRows(gstTotalsRow(gst.Tax, common))
	} else if plain, ok := doc.(*document.NonGSTDocument); ok {
		m.AddRows(plainTableHeaderRow())
		for _, r := range plainItemRows(plain.Items) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(plainTotalsRow(plain.SubtotalAmount, common))
	} else {
		return nil, fmt.Errorf("pdf: unsupported document type %T", doc)
	}

	m.AddRows(wordsRow(common))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(common)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: document title + company name (left), invoice no/date/terms (right).
func headerRow(title string, common document.Common) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorGray, Top: 1,
			}),
			text.New(common.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 5,
			}),
			text.New(common.CompanyAddress, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
			text.New(common.CompanyContact, props.Text{
				Size: 7.5, Top: 16, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Invoice No: "+common.InvoiceNo, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Date: "+common.InvoiceDate, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Terms: "+common.Terms, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// sellerRow: GSTIN (GST only) and transport references.
func sellerRow(doc document.Document, common document.Common) core.Row {
	refLine := joinRefs(common)
	gstinLine := ""
	if gst, ok := doc.(*document.GSTDocument); ok {
		gstinLine = "GSTIN: " + gst.Tax.CompanyGSTIN
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(gstinLine, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(refLine, props.Text{Size: 7.5, Top: 6, Color: colorGray}),
		),
	)
}

// buyerRow: buyer block with location and (GST only) the buyer GSTIN.
func buyerRow(doc document.Document, common document.Common) core.Row {
	details := common.BuyerAddress
	if common.BuyerLocation != "" {
		if details != "" {
			details += ", "
		}
		details += common.BuyerLocation
	}
	contact := common.BuyerContact
	if gst, ok := doc.(*document.GSTDocument); ok && gst.Tax.BuyerGSTIN != "" {
		if contact != "" {
			contact += "   |   "
		}
		contact += "GSTIN: " + gst.Tax.BuyerGSTIN
	}
	return row.New(15).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(common.BuyerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(details, props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(contact, props.Text{Size: 7.5, Top: 15, Color: colorGray}),
		),
	)
}

// gstTableHeaderRow: the GST item table condensed to the 12-column grid. The
// tax head cells carry "percent / amount" pairs to keep the full projection.
func gstTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 6.5, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Sr", 1, align.Center),
		h("Description", 2, align.Left),
		h("HSN", 1, align.Center),
		h("Qty", 1, align.Center),
		h("Rate", 1, align.Right),
		h("Disc", 1, align.Right),
		h("Taxable", 1, align.Right),
		h("CGST", 1, align.Right),
		h("SGST", 1, align.Right),
		h("IGST", 1, align.Right),
		h("Total", 1, align.Right),
	)
}

// gstItemRows: one row per line; tax heads print percent over amount.
func gstItemRows(items []document.GSTItemRow) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 6.5, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	taxCell := func(percent, amount string) core.Col {
		return col.New(1).Add(
			text.New(percent+"%", props.Text{
				Size: 5.5, Align: align.Right, Top: 0.5, Right: 1, Color: colorGray,
			}),
			text.New(amount, props.Text{
				Size: 6.5, Align: align.Right, Top: 3.5, Right: 1,
			}),
		)
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			cell(fmt.Sprintf("%d", it.Sr), 1, align.Center),
			cell(it.Description, 2, align.Left),
			cell(it.HSNCode, 1, align.Center),
			cell(it.Quantity, 1, align.Center),
			cell(it.Rate, 1, align.Right),
			cell(it.DiscountAmount, 1, align.Right),
			cell(it.TaxableAmount, 1, align.Right),
			taxCell(it.CGSTPercent, it.CGSTAmount),
			taxCell(it.SGSTPercent, it.SGSTAmount),
			taxCell(it.IGSTPercent, it.IGSTAmount),
			cell(it.Total, 1, align.Right),
		))
	}
	return result
}

// gstSummaryRows: the rate-wise tax summary table.
func gstSummaryRows(tax document.TaxData) []core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	rows := []core.Row{
		row.New(6).Add(
			h("GST Rate", 2, align.Left),
			h("Taxable", 2, align.Right),
			h("CGST", 2, align.Right),
			h("SGST", 2, align.Right),
			h("IGST", 2, align.Right),
			h("Total Tax", 2, align.Right),
		),
	}
	cell := func(s string, a align.Type) core.Col {
		return col.New(2).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1}))
	}
	for _, s := range tax.GSTSummary {
		rows = append(rows, row.New(5).Add(
			cell(s.Rate, align.Left),
			cell(s.TaxableAmount, align.Right),
			cell(s.CGSTAmount, align.Right),
			cell(s.SGSTAmount, align.Right),
			cell(s.IGSTAmount, align.Right),
			cell(s.TaxAmount, align.Right),
		))
	}
	return rows
}

// hsnSummaryRows: the HSN-wise breakdown used for GSTR filings.
func hsnSummaryRows(tax document.TaxData) []core.Row {
	if len(tax.HSNSummary) == 0 {
		return nil
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	rows := []core.Row{
		row.New(6).Add(
			h("HSN/SAC", 2, align.Left),
			h("Rate", 1, align.Center),
			h("Qty", 1, align.Center),
			h("Taxable", 2, align.Right),
			h("CGST", 2, align.Right),
			h("SGST", 2, align.Right),
			h("IGST", 2, align.Right),
		),
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1}))
	}
	for _, r := range tax.HSNSummary {
		rows = append(rows, row.New(5).Add(
			cell(r.HSNCode, 2, align.Left),
			cell(r.Rate, 1, align.Center),
			cell(r.Quantity, 1, align.Center),
			cell(r.TaxableAmount, 2, align.Right),
			cell(r.CGSTAmount, 2, align.Right),
			cell(r.SGSTAmount, 2, align.Right),
			cell(r.IGSTAmount, 2, align.Right),
		))
	}
	return rows
}

// gstTotalsRow: taxable subtotal, tax heads, round off and net amount.
func gstTotalsRow(tax document.TaxData, common document.Common) core.Row {
	return totalsBlock([][2]string{
		{"Total Quantity:", common.TotalQuantity},
		{"Total Discount:", common.TotalDiscount},
		{"Taxable Amount:", tax.SubtotalTaxable},
		{"CGST:", tax.TotalCGST},
		{"SGST:", tax.TotalSGST},
		{"IGST:", tax.TotalIGST},
		{"Round Off:", common.RoundOff},
	}, common.NetAmountINR)
}

// plainTableHeaderRow: the non-GST item table.
func plainTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Sr", 1, align.Center),
		h("Description", 3, align.Left),
		h("HSN", 1, align.Center),
		h("MRP", 1, align.Right),
		h("Qty", 1, align.Center),
		h("Rate", 1, align.Right),
		h("Value", 1, align.Right),
		h("Disc", 1, align.Right),
		h("Amount", 2, align.Right),
	)
}

func plainItemRows(items []document.ItemRow) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			cell(fmt.Sprintf("%d", it.Sr), 1, align.Center),
			cell(it.Description, 3, align.Left),
			cell(it.HSNCode, 1, align.Center),
			cell(it.MRP, 1, align.Right),
			cell(it.Quantity, 1, align.Center),
			cell(it.Rate, 1, align.Right),
			cell(it.TotalValue, 1, align.Right),
			cell(it.DiscountAmount, 1, align.Right),
			cell(it.Amount, 2, align.Right),
		))
	}
	return result
}

func plainTotalsRow(subtotal string, common document.Common) core.Row {
	return totalsBlock([][2]string{
		{"Total Quantity:", common.TotalQuantity},
		{"Total Discount:", common.TotalDiscount},
		{"Subtotal:", subtotal},
		{"Round Off:", common.RoundOff},
	}, common.NetAmountINR)
}

// totalsBlock: right-aligned label/value pairs ending in the net amount.
func totalsBlock(pairs [][2]string, netAmount string) core.Row {
	labels := make([]core.Component, 0, len(pairs)+1)
	values := make([]core.Component, 0, len(pairs)+1)
	top := 1.0
	for _, p := range pairs {
		labels = append(labels, text.New(p[0], props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2, Top: top,
		}))
		values = append(values, text.New(p[1], props.Text{
			Size: 8, Align: align.Right, Right: 1, Top: top,
		}))
		top += 4.5
	}
	labels = append(labels, text.New("NET AMOUNT:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2, Top: top + 1,
	}))
	values = append(values, text.New(netAmount, props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1, Top: top + 1,
	}))

	height := top + 9
	return row.New(height).Add(
		col.New(5),
		col.New(4).Add(labels...),
		col.New(3).Add(values...),
	)
}

// wordsRow: the net amount spelled out in Indian numbering.
func wordsRow(common document.Common) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Amount in Words:", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(common.AmountInWords, props.Text{Size: 8, Top: 6}),
		),
	)
}

// footerRows: bank details, terms line and the signatory box.
func footerRows(common document.Common) []core.Row {
	return []core.Row{
		row.New(18).Add(
			col.New(7).Add(
				text.New("Bank Details", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(common.BankName, props.Text{Size: 8, Top: 6}),
				text.New(common.BankAccount, props.Text{Size: 8, Top: 10}),
				text.New(common.BankIFSC, props.Text{Size: 8, Top: 14}),
			),
			col.New(5).Add(
				text.New("For "+common.CompanyName, props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 6,
				}),
				text.New("Authorised Signatory", props.Text{
					Size: 7.5, Align: align.Right, Top: 15, Color: colorGray,
				}),
			),
		),
		row.New(6).Add(col.New(12).Add(
			text.New(common.TermsConditions, props.Text{
				Size: 6.5, Color: colorGray, Top: 2,
			}),
		)),
	}
}

func joinRefs(common document.Common) string {
	out := ""
	add := func(label, v string) {
		if v == "" {
			return
		}
		if out != "" {
			out += "   |   "
		}
		out += label + ": " + v
	}
	add("Ref No", common.RefNo)
	add("Vehicle No", common.VehicleNo)
	add("Transport", common.Transport)
	return out
}
