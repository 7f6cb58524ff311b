package report

import (
	"context"

	"github.com/seedhouse/farmops-api/internal/domain/entity"
)

// PDFGenerator renders one job report as a PDF document.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *entity.Report) ([]byte, error)
}

// ExcelExporter renders a report listing as an XLSX workbook.
type ExcelExporter interface {
	ExportReports(reports []*entity.Report) ([]byte, error)
}
