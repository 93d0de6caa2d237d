package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gstbillpro/gstbill-api/internal/application/dto"
	"github.com/gstbillpro/gstbill-api/internal/application/reports"
)

// ReportHandler period report endpoints (protected).
type ReportHandler struct {
	uc *reports.GSTReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reports.GSTReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GSTReport computes the period report.
// GET /api/reports/gst?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) GSTReport(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	report, err := h.uc.Compute(c.Context(), companyID, c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// GSTReportExcel streams the period report as an xlsx workbook.
// GET /api/reports/gst/excel?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) GSTReportExcel(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	data, filename, err := h.uc.Export(c.Context(), companyID, c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
