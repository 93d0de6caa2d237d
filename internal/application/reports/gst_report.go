// Package reports computes period summaries over stored invoices.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/gstbillpro/gstbill-api/internal/application/dto"
	"github.com/gstbillpro/gstbill-api/internal/domain"
	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
	"github.com/gstbillpro/gstbill-api/internal/domain/repository"
)

const reportDateLayout = "2006-01-02"

// GSTReportExporter writes a computed report into a downloadable workbook.
type GSTReportExporter interface {
	ExportGSTReport(ctx context.Context, report *dto.GSTReportResponse) ([]byte, error)
}

// GSTReportUseCase sums output GST over the sales of a period. Input GST stays
// zero until purchase invoices are captured, so net payable equals output.
type GSTReportUseCase struct {
	invoiceRepo repository.InvoiceRepository
	exporter    GSTReportExporter
}

// NewGSTReportUseCase builds the use case.
func NewGSTReportUseCase(invoiceRepo repository.InvoiceRepository, exporter GSTReportExporter) *GSTReportUseCase {
	return &GSTReportUseCase{invoiceRepo: invoiceRepo, exporter: exporter}
}

// Compute builds the report for [from, to], both YYYY-MM-DD inclusive.
func (uc *GSTReportUseCase) Compute(ctx context.Context, companyID, fromStr, toStr string) (*dto.GSTReportResponse, error) {
	from, err := time.Parse(reportDateLayout, fromStr)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := time.Parse(reportDateLayout, toStr)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}

	invoices, err := uc.invoiceRepo.ListByPeriod(companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("gst report: list invoices: %w", err)
	}

	report := &dto.GSTReportResponse{From: fromStr, To: toStr}
	out := &report.OutputGST
	for _, inv := range invoices {
		if inv.TaxType != entity.TaxTypeGST {
			continue
		}
		out.CGST = out.CGST.Add(inv.CGST)
		out.SGST = out.SGST.Add(inv.SGST)
		out.IGST = out.IGST.Add(inv.IGST)
		report.SalesCount++
	}
	out.Total = out.CGST.Add(out.SGST).Add(out.IGST)

	report.NetPayable = dto.GSTBreakdown{
		CGST: out.CGST.Sub(report.InputGST.CGST),
		SGST: out.SGST.Sub(report.InputGST.SGST),
		IGST: out.IGST.Sub(report.InputGST.IGST),
	}
	report.NetPayable.Total = report.NetPayable.CGST.Add(report.NetPayable.SGST).Add(report.NetPayable.IGST)
	return report, nil
}

// Export computes the report and renders it as an xlsx workbook.
func (uc *GSTReportUseCase) Export(ctx context.Context, companyID, fromStr, toStr string) ([]byte, string, error) {
	report, err := uc.Compute(ctx, companyID, fromStr, toStr)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportGSTReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("gst report: export: %w", err)
	}
	filename := fmt.Sprintf("gst_report_%s_%s.xlsx", fromStr, toStr)
	return data, filename, nil
}
