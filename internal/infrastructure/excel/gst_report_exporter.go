// Package excel writes downloadable xlsx workbooks with excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gstbillpro/gstbill-api/internal/application/dto"
	"github.com/gstbillpro/gstbill-api/internal/application/reports"
)

var _ reports.GSTReportExporter = (*GSTReportExporter)(nil)

// GSTReportExporter renders a period GST report as a single-sheet workbook.
type GSTReportExporter struct{}

// NewGSTReportExporter builds the exporter.
func NewGSTReportExporter() *GSTReportExporter { return &GSTReportExporter{} }

// ExportGSTReport writes the report and returns the xlsx bytes.
func (e *GSTReportExporter) ExportGSTReport(_ context.Context, report *dto.GSTReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "GST Report"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: drop default sheet: %w", err)
	}

	set := func(cell string, value any) {
		_ = f.SetCellValue(sheet, cell, value)
	}

	set("A1", "GST Report")
	set("A2", "Period")
	set("B2", report.From+" to "+report.To)
	set("A3", "GST Sales")
	set("B3", report.SalesCount)

	set("A5", "")
	set("B5", "CGST")
	set("C5", "SGST")
	set("D5", "IGST")
	set("E5", "Total")

	writeBreakdown := func(rowIdx int, label string, b dto.GSTBreakdown) {
		set(fmt.Sprintf("A%d", rowIdx), label)
		set(fmt.Sprintf("B%d", rowIdx), b.CGST.InexactFloat64())
		set(fmt.Sprintf("C%d", rowIdx), b.SGST.InexactFloat64())
		set(fmt.Sprintf("D%d", rowIdx), b.IGST.InexactFloat64())
		set(fmt.Sprintf("E%d", rowIdx), b.Total.InexactFloat64())
	}
	writeBreakdown(6, "Output GST (Sales)", report.OutputGST)
	writeBreakdown(7, "Input GST (Purchases)", report.InputGST)
	writeBreakdown(8, "Net GST Payable", report.NetPayable)

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "E", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
