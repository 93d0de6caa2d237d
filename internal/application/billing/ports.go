package billing

import (
	"context"

	"github.com/gstbillpro/gstbill-api/internal/domain/document"
	"github.com/gstbillpro/gstbill-api/internal/domain/repository"
)

// BillingTxRunner runs a function inside one transaction holding the invoice
// repository, so the header and its lines commit or roll back together.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator renders an assembled document into PDF bytes.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc document.Document) ([]byte, error)
}
