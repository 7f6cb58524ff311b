// Package report is the read side of completed jobs: listing, deletion
// (single, bulk, year range) and PDF/XLSX export of the denormalized report
// rows written by the completion commit.
package report

import (
	"context"

	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
)

// UseCase report listing, deletion and export.
type UseCase struct {
	reports repository.ReportRepository
	pdf     PDFGenerator
	excel   ExcelExporter
}

// NewUseCase builds the use case.
func NewUseCase(reports repository.ReportRepository, pdf PDFGenerator, excel ExcelExporter) *UseCase {
	return &UseCase{reports: reports, pdf: pdf, excel: excel}
}

// List returns reports matching the filter plus the total match count.
func (uc *UseCase) List(filter repository.ReportFilter) ([]*entity.Report, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.reports.List(filter)
}

// Get returns one report with its full line-item detail.
func (uc *UseCase) Get(id string) (*entity.Report, error) {
	r, err := uc.reports.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Delete removes one report.
func (uc *UseCase) Delete(id string) error {
	return uc.reports.Delete(id)
}

// DeleteBulk removes a selection of reports and returns how many went away.
func (uc *UseCase) DeleteBulk(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.reports.DeleteByIDs(ids)
}

// DeleteYearRange removes every report whose job date falls within the
// calendar-year range, as one server-side statement.
func (uc *UseCase) DeleteYearRange(fromYear, toYear int) (int64, error) {
	if fromYear < 2000 || toYear < fromYear {
		return 0, domain.ErrInvalidInput
	}
	return uc.reports.DeleteYearRange(fromYear, toYear)
}

// ExportPDF renders one report as a PDF.
func (uc *UseCase) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	r, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateReportPDF(ctx, r)
}

// ExportXLSX renders the reports matching the filter as an XLSX workbook.
func (uc *UseCase) ExportXLSX(filter repository.ReportFilter) ([]byte, error) {
	if filter.Limit <= 0 {
		filter.Limit = 1000
	}
	reports, _, err := uc.reports.List(filter)
	if err != nil {
		return nil, err
	}
	return uc.excel.ExportReports(reports)
}
