package billing

import (
	"context"
	"fmt"

	"github.com/gstbillpro/gstbill-api/internal/domain"
	"github.com/gstbillpro/gstbill-api/internal/domain/document"
	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
	"github.com/gstbillpro/gstbill-api/internal/domain/repository"
	"github.com/gstbillpro/gstbill-api/internal/domain/tax"
)

// DocumentUseCase rebuilds the printable document for a stored invoice and,
// on request, renders it to PDF. The lines are re-run through the tax engine
// from their stored inputs; because the engine is deterministic the amounts
// match the ones persisted at creation time.
type DocumentUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	partyRepo   repository.PartyRepository
	aggregator  *tax.Aggregator
	generator   InvoicePDFGenerator
}

// NewDocumentUseCase builds the use case.
func NewDocumentUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	partyRepo repository.PartyRepository,
	generator InvoicePDFGenerator,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		partyRepo:   partyRepo,
		aggregator:  tax.NewAggregator(),
		generator:   generator,
	}
}

// BuildDocument loads the invoice, re-aggregates its lines and assembles the
// render-ready document.
func (uc *DocumentUseCase) BuildDocument(ctx context.Context, companyID, invoiceID string) (document.Document, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, fmt.Errorf("document: load company: %w", domain.ErrNotFound)
	}
	party, err := uc.partyRepo.GetByID(inv.PartyID)
	if err != nil || party == nil {
		return nil, fmt.Errorf("document: load party: %w", domain.ErrNotFound)
	}

	stored, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("document: load items: %w", err)
	}

	lines := make([]tax.LineItem, 0, len(stored))
	for _, it := range stored {
		lines = append(lines, tax.LineItem{
			Description:     it.Description,
			HSNCode:         it.HSNCode,
			Quantity:        it.Quantity,
			Rate:            it.Rate,
			MRP:             it.MRP,
			DiscountPercent: it.DiscountPercent,
			TaxRatePercent:  it.TaxRatePercent,
		})
	}

	mode := tax.Mode{GST: inv.TaxType == entity.TaxTypeGST, InterState: inv.IsInterState}
	agg := uc.aggregator.Aggregate(lines, mode)

	meta := document.Meta{
		InvoiceNo: inv.InvoiceNo,
		Date:      inv.Date,
		BillType:  inv.BillType,
		RefNo:     inv.RefNo,
		VehicleNo: inv.VehicleNo,
		Transport: inv.Transport,
	}
	return document.Assemble(meta, company, party, agg), nil
}

// DownloadInvoicePDF builds the document and renders it, returning the bytes
// and a suggested filename.
func (uc *DocumentUseCase) DownloadInvoicePDF(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	doc, err := uc.BuildDocument(ctx, companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render failed: %w", err)
	}
	filename := fmt.Sprintf("invoice_%s.pdf", doc.CommonData().InvoiceNo)
	return pdfBytes, filename, nil
}
