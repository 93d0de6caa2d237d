package repository

import (
	"time"

	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
)

// InvoiceRepository persistence port for invoice headers and lines.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetByCompanyAndNumber(companyID, invoiceNo string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)
	// ListByPeriod returns GST invoices dated within [from, to] for reporting.
	ListByPeriod(companyID string, from, to time.Time) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
}
