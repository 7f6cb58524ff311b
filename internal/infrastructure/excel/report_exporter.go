// Package excel exports report listings as XLSX workbooks.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	appreport "github.com/seedhouse/farmops-api/internal/application/report"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
)

var _ appreport.ExcelExporter = (*ReportExporter)(nil)

// ReportExporter implements report.ExcelExporter using excelize.
type ReportExporter struct{}

// NewReportExporter builds the exporter.
func NewReportExporter() *ReportExporter { return &ReportExporter{} }

var headers = []string{
	"Process ID", "Type", "Date", "Employee", "Supplier",
	"Lot Numbers", "Products", "Input (lbs)", "Output (lbs)", "Balance (lbs)", "Notes",
}

// ExportReports writes one row per report under a header row and returns the
// workbook bytes.
func (e *ReportExporter) ExportReports(reports []*entity.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Reports"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, r := range reports {
		inputTotal, _ := r.InputTotal.Float64()
		outputTotal, _ := r.OutputTotal.Float64()
		balance, _ := r.Balance.Float64()
		values := []any{
			r.ProcessID, r.ProcessType, r.JobDate, r.Employee, r.Supplier,
			r.LotNumbers, r.Products, inputTotal, outputTotal, balance, r.Notes,
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
