package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/seedhouse/farmops-api/internal/application/dto"
	"github.com/seedhouse/farmops-api/internal/application/report"
	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

// ReportHandler completed-job reports viewer and exports (protected).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// List godoc
// @Summary      List job reports
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        process_type  query  string  false  "Filter by job type"
// @Param        from_date     query  string  false  "YYYY-MM-DD, inclusive"
// @Param        to_date       query  string  false  "YYYY-MM-DD, inclusive"
// @Param        limit         query  int     false  "Limit"   default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	var in dto.ReportListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	in.DefaultPage()
	list, total, err := h.uc.List(repository.ReportFilter{
		ProcessType: in.ProcessType,
		FromDate:    in.FromDate,
		ToDate:      in.ToDate,
		Limit:       in.Limit,
		Offset:      in.Offset,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.ToReportResponse(r, false))
	}
	return c.JSON(fiber.Map{
		"reports": out,
		"page":    dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	})
}

// Get godoc
// @Summary      Get one job report with line items
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Report ID"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	r, err := h.uc.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return reportNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToReportResponse(r, true))
}

// Delete godoc
// @Summary      Delete one job report
// @Tags         reports
// @Security     Bearer
// @Param        id  path  string  true  "Report ID"
// @Success      200  {object}  map[string]string
// @Router       /api/reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "report deleted"})
}

// DeleteBulk godoc
// @Summary      Delete a selection of job reports
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkDeleteRequest  true  "Report IDs"
// @Success      200   {object}  map[string]int64
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/bulk-delete [post]
func (h *ReportHandler) DeleteBulk(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	deleted, err := h.uc.DeleteBulk(in.IDs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ids must not be empty"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// DeleteYearRange godoc
// @Summary      Delete job reports by calendar-year range
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.YearRangeDeleteRequest  true  "from_year, to_year (inclusive)"
// @Success      200   {object}  map[string]int64
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/delete-year-range [post]
func (h *ReportHandler) DeleteYearRange(c *fiber.Ctx) error {
	var in dto.YearRangeDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	deleted, err := h.uc.DeleteYearRange(in.FromYear, in.ToYear)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid year range"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// ExportPDF godoc
// @Summary      Download one job report as PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Report ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.uc.ExportPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return reportNotFound(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="report-%s.pdf"`, id))
	return c.Send(data)
}

// ExportXLSX godoc
// @Summary      Download filtered job reports as an XLSX workbook
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        process_type  query  string  false  "Filter by job type"
// @Param        from_date     query  string  false  "YYYY-MM-DD, inclusive"
// @Param        to_date       query  string  false  "YYYY-MM-DD, inclusive"
// @Success      200  {file}  binary
// @Router       /api/reports/export.xlsx [get]
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	var in dto.ReportListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	data, err := h.uc.ExportXLSX(repository.ReportFilter{
		ProcessType: in.ProcessType,
		FromDate:    in.FromDate,
		ToDate:      in.ToDate,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reports-%s.xlsx"`, time.Now().Format("2006-01-02")))
	return c.Send(data)
}

func reportNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "report not found"})
}
