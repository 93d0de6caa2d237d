package document_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbillpro/gstbill-api/internal/domain/document"
	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
	"github.com/gstbillpro/gstbill-api/internal/domain/tax"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCompany() *entity.Company {
	return &entity.Company{
		Name:    "Shree Traders",
		GSTIN:   "24AADPP6173E1ZT",
		Mobile:  "9876543210",
		Email:   "sales@shreetraders.in",
		Address: "12 Market Road, Vadodara",
		State:   "Gujarat",
		TaxType: entity.TaxTypeGST,
	}
}

func testParty() *entity.Party {
	return &entity.Party{
		Name:    "Patel Enterprises",
		Mobile:  "9123456780",
		GSTIN:   "24AAACB1234F1Z5",
		Address: "5 Station Road",
		City:    "Surat",
		State:   "Gujarat",
	}
}

func testMeta() document.Meta {
	return document.Meta{
		InvoiceNo: "INV-42",
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		BillType:  "CASH",
	}
}

func gstAggregation() tax.Aggregation {
	return tax.NewAggregator().Aggregate([]tax.LineItem{
		{Description: "Widget", HSNCode: "3926", Quantity: dec("2"), Rate: dec("100"), TaxRatePercent: dec("18")},
	}, tax.Mode{GST: true})
}

func TestAssemble_GSTVariant(t *testing.T) {
	doc := document.Assemble(testMeta(), testCompany(), testParty(), gstAggregation())

	gst, ok := doc.(*document.GSTDocument)
	require.True(t, ok, "GST mode must assemble the GST variant")
	assert.True(t, doc.IsGST())

	assert.Equal(t, "24AADPP6173E1ZT", gst.Tax.CompanyGSTIN)
	assert.Equal(t, "24AAACB1234F1Z5", gst.Tax.BuyerGSTIN)
	assert.Equal(t, "200.00", gst.Tax.SubtotalTaxable)
	assert.Equal(t, "18.00", gst.Tax.TotalCGST)
	assert.Equal(t, "18.00", gst.Tax.TotalSGST)
	assert.Equal(t, "0.00", gst.Tax.TotalIGST)
	assert.Equal(t, "236.00", gst.Tax.TotalAfterTax)

	require.Len(t, gst.Items, 1)
	row := gst.Items[0]
	assert.Equal(t, 1, row.Sr)
	assert.Equal(t, "9.0", row.CGSTPercent, "intra-state line shows the half rate")
	assert.Equal(t, "9.0", row.SGSTPercent)
	assert.Equal(t, "0", row.IGSTPercent)
	assert.Equal(t, "236.00", row.Total)

	require.Len(t, gst.Tax.GSTSummary, 1)
	assert.Equal(t, "18%", gst.Tax.GSTSummary[0].Rate)
	assert.Equal(t, "36.00", gst.Tax.GSTSummary[0].TaxAmount)
}

// The GST document carries the HSN-wise breakdown, grouped by code and rate.
func TestAssemble_HSNSummary(t *testing.T) {
	agg := tax.NewAggregator().Aggregate([]tax.LineItem{
		{Description: "Pipe", HSNCode: "3917", Quantity: dec("2"), Rate: dec("100"), TaxRatePercent: dec("18")},
		{Description: "Elbow", HSNCode: "3917", Quantity: dec("4"), Rate: dec("25"), TaxRatePercent: dec("18")},
		{Description: "Tape", HSNCode: "3919", Quantity: dec("1"), Rate: dec("50"), TaxRatePercent: dec("18")},
	}, tax.Mode{GST: true})

	gst := document.Assemble(testMeta(), testCompany(), testParty(), agg).(*document.GSTDocument)
	require.Len(t, gst.Tax.HSNSummary, 2, "two distinct HSN codes")

	first := gst.Tax.HSNSummary[0]
	assert.Equal(t, "3917", first.HSNCode)
	assert.Equal(t, "18%", first.Rate)
	assert.Equal(t, "6", first.Quantity)
	assert.Equal(t, "300.00", first.TaxableAmount)
	assert.Equal(t, "27.00", first.CGSTAmount)
	assert.Equal(t, "27.00", first.SGSTAmount)

	assert.Equal(t, "3919", gst.Tax.HSNSummary[1].HSNCode)
	assert.Equal(t, "50.00", gst.Tax.HSNSummary[1].TaxableAmount)
}

func TestAssemble_GSTInterStatePercents(t *testing.T) {
	agg := tax.NewAggregator().Aggregate([]tax.LineItem{
		{Description: "Widget", Quantity: dec("2"), Rate: dec("100"), TaxRatePercent: dec("18")},
	}, tax.Mode{GST: true, InterState: true})

	doc := document.Assemble(testMeta(), testCompany(), testParty(), agg)
	gst := doc.(*document.GSTDocument)
	require.Len(t, gst.Items, 1)

	assert.Equal(t, "0", gst.Items[0].CGSTPercent)
	assert.Equal(t, "0", gst.Items[0].SGSTPercent)
	assert.Equal(t, "18.0", gst.Items[0].IGSTPercent)
	assert.Equal(t, "36.00", gst.Items[0].IGSTAmount)
}

func TestAssemble_NonGSTVariant(t *testing.T) {
	agg := tax.NewAggregator().Aggregate([]tax.LineItem{
		{Description: "Widget", Quantity: dec("3"), Rate: dec("99.99"), DiscountPercent: dec("10")},
	}, tax.Mode{GST: false})

	doc := document.Assemble(testMeta(), testCompany(), testParty(), agg)
	plain, ok := doc.(*document.NonGSTDocument)
	require.True(t, ok, "non-GST mode must assemble the plain variant")
	assert.False(t, doc.IsGST())

	assert.Equal(t, "269.97", plain.SubtotalAmount)
	require.Len(t, plain.Items, 1)
	assert.Equal(t, "299.97", plain.Items[0].TotalValue)
	assert.Equal(t, "30.00", plain.Items[0].DiscountAmount)
	assert.Equal(t, "269.97", plain.Items[0].Amount)

	c := plain.CommonData()
	assert.Equal(t, "270.00", c.NetAmount)
	assert.Equal(t, "0.03", c.RoundOff)
}

func TestAssemble_CommonFields(t *testing.T) {
	doc := document.Assemble(testMeta(), testCompany(), testParty(), gstAggregation())
	c := doc.CommonData()

	assert.Equal(t, "Shree Traders", c.CompanyName)
	assert.Equal(t, "Ph. : 9876543210 E mail : sales@shreetraders.in", c.CompanyContact)
	assert.Equal(t, "INV-42", c.InvoiceNo)
	assert.Equal(t, "15-03-2024", c.InvoiceDate, "dates print as DD-MM-YYYY")
	assert.Equal(t, "CASH", c.Terms)
	assert.Equal(t, "Patel Enterprises", c.BuyerName)
	assert.Equal(t, "Surat Gujarat", c.BuyerLocation)
	assert.Equal(t, "236.00", c.NetAmount)
	assert.Equal(t, "Two Hundred Thirty Six Rupees Only", c.AmountInWords)
}

// Empty bank details and terms fall back to the configured defaults.
func TestAssemble_BankDefaults(t *testing.T) {
	doc := document.Assemble(testMeta(), testCompany(), testParty(), gstAggregation())
	c := doc.CommonData()

	assert.Equal(t, document.DefaultBankName, c.BankName)
	assert.Equal(t, document.DefaultBankAccount, c.BankAccount)
	assert.Equal(t, document.DefaultBankIFSC, c.BankIFSC)
	assert.Equal(t, document.DefaultTerms, c.TermsConditions)
}

func TestAssemble_CompanyBankOverridesDefaults(t *testing.T) {
	company := testCompany()
	company.BankName = "STATE BANK OF INDIA"
	company.BankAccount = "A/C NO:1234567890"
	company.BankIFSC = "IFSC CODE: SBIN0000001"
	company.Terms = "Goods once sold will not be taken back"

	c := document.Assemble(testMeta(), company, testParty(), gstAggregation()).CommonData()
	assert.Equal(t, "STATE BANK OF INDIA", c.BankName)
	assert.Equal(t, "A/C NO:1234567890", c.BankAccount)
	assert.Equal(t, "IFSC CODE: SBIN0000001", c.BankIFSC)
	assert.Equal(t, "Goods once sold will not be taken back", c.TermsConditions)
}

// Assembly is a pure projection: the same inputs yield the same document.
func TestAssemble_Idempotent(t *testing.T) {
	meta, company, party := testMeta(), testCompany(), testParty()
	agg := gstAggregation()

	d1 := document.Assemble(meta, company, party, agg)
	d2 := document.Assemble(meta, company, party, agg)
	assert.Equal(t, d1, d2)
}

func TestAssemble_EmptyInvoice(t *testing.T) {
	agg := tax.NewAggregator().Aggregate(nil, tax.Mode{GST: true})
	doc := document.Assemble(testMeta(), testCompany(), testParty(), agg)
	c := doc.CommonData()

	assert.Equal(t, "0.00", c.NetAmount)
	assert.Equal(t, "Zero Only", c.AmountInWords)
	assert.Empty(t, doc.(*document.GSTDocument).Items)
}

func TestFormatINR_IndianGrouping(t *testing.T) {
	assert.Equal(t, "₹1,23,456.00", document.FormatINR(dec("123456")))
	assert.Equal(t, "₹236.00", document.FormatINR(dec("236")))
	assert.Equal(t, "₹1,00,00,000.00", document.FormatINR(dec("10000000")))
}
