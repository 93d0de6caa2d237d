package dto

import "github.com/shopspring/decimal"

// CreatePartyRequest body for POST /api/parties.
type CreatePartyRequest struct {
	Name      string `json:"name"`
	Mobile    string `json:"mobile,omitempty"`
	Email     string `json:"email,omitempty"`
	PartyType string `json:"party_type,omitempty"` // Customer (default) or Supplier
	GSTIN     string `json:"gstin,omitempty"`
	PAN       string `json:"pan,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Pincode   string `json:"pincode,omitempty"`
}

// PartyResponse party in responses.
type PartyResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Mobile    string `json:"mobile,omitempty"`
	Email     string `json:"email,omitempty"`
	PartyType string `json:"party_type"`
	GSTIN     string `json:"gstin,omitempty"`
	PAN       string `json:"pan,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Pincode   string `json:"pincode,omitempty"`
}

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	HSNCode        string          `json:"hsn_code,omitempty"`
	Unit           string          `json:"unit,omitempty"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	MRP            decimal.Decimal `json:"mrp,omitempty"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
}

// ProductResponse product in responses.
type ProductResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	Name           string          `json:"name"`
	HSNCode        string          `json:"hsn_code,omitempty"`
	Unit           string          `json:"unit"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	MRP            decimal.Decimal `json:"mrp"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
}

// CreateInvoiceRequest body for POST /api/invoices.
// TaxType defaults to the company's regime; Date defaults to today.
type CreateInvoiceRequest struct {
	PartyID   string               `json:"party_id"`
	InvoiceNo string               `json:"invoice_no,omitempty"` // generated when empty
	Date      string               `json:"date,omitempty"`       // YYYY-MM-DD
	TaxType   string               `json:"tax_type,omitempty"`   // GST or NON-GST
	BillType  string               `json:"bill_type,omitempty"`  // CASH or CREDIT
	RefNo     string               `json:"ref_no,omitempty"`
	VehicleNo string               `json:"vehicle_no,omitempty"`
	Transport string               `json:"transport,omitempty"`
	Notes     string               `json:"notes,omitempty"`
	Items     []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest one invoice line. When ProductID is set, description,
// HSN code, rate and tax rate default from the product unless overridden.
type InvoiceItemRequest struct {
	ProductID       string          `json:"product_id,omitempty"`
	Description     string          `json:"description,omitempty"`
	HSNCode         string          `json:"hsn_code,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate,omitempty"`
	MRP             decimal.Decimal `json:"mrp,omitempty"`
	DiscountPercent decimal.Decimal `json:"discount_percent,omitempty"`
	TaxRatePercent  decimal.Decimal `json:"tax_rate_percent,omitempty"`
}

// InvoiceResponse invoice with lines for GET /api/invoices/:id.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	CompanyID     string                `json:"company_id"`
	PartyID       string                `json:"party_id"`
	PartyName     string                `json:"party_name,omitempty"`
	InvoiceNo     string                `json:"invoice_no"`
	Date          string                `json:"date"`
	TaxType       string                `json:"tax_type"`
	BillType      string                `json:"bill_type"`
	IsInterState  bool                  `json:"is_inter_state"`
	TotalQuantity decimal.Decimal       `json:"total_quantity"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TotalDiscount decimal.Decimal       `json:"total_discount"`
	CGST          decimal.Decimal       `json:"cgst"`
	SGST          decimal.Decimal       `json:"sgst"`
	IGST          decimal.Decimal       `json:"igst"`
	RoundOff      decimal.Decimal       `json:"round_off"`
	GrandTotal    decimal.Decimal       `json:"grand_total"`
	Status        string                `json:"status"`
	Items         []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse one computed line in the response.
type InvoiceItemResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id,omitempty"`
	Description     string          `json:"description"`
	HSNCode         string          `json:"hsn_code,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TaxableAmount   decimal.Decimal `json:"taxable_amount"`
	TaxRatePercent  decimal.Decimal `json:"tax_rate_percent"`
	CGSTAmount      decimal.Decimal `json:"cgst_amount"`
	SGSTAmount      decimal.Decimal `json:"sgst_amount"`
	IGSTAmount      decimal.Decimal `json:"igst_amount"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// GSTReportResponse period report: output tax from sales, input tax from
// purchases (zero until purchase capture lands), and the net payable.
type GSTReportResponse struct {
	From       string        `json:"from"`
	To         string        `json:"to"`
	OutputGST  GSTBreakdown  `json:"output_gst"`
	InputGST   GSTBreakdown  `json:"input_gst"`
	NetPayable GSTBreakdown  `json:"net_payable"`
	SalesCount int           `json:"sales_count"`
}

// GSTBreakdown CGST/SGST/IGST triple with its total.
type GSTBreakdown struct {
	CGST  decimal.Decimal `json:"cgst"`
	SGST  decimal.Decimal `json:"sgst"`
	IGST  decimal.Decimal `json:"igst"`
	Total decimal.Decimal `json:"total"`
}
